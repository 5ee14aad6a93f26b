package resource

import (
	"context"
	"fmt"

	"github.com/jhoicas/fakemart-api/internal/domain"
)

// Ciclo de vida de un registro:
//
//	activo --SoftDelete--> papelera --Restore--> activo
//	                       papelera --ForceDelete--> fila eliminada
//
// No existe transición directa de activo a eliminado definitivo: ForceDelete
// sobre un registro activo (o inexistente) reporta ErrNotFoundInTrash y deja
// la fila intacta. SoftDelete exige un registro activo: repetirlo sobre uno
// ya en papelera no refresca el timestamp, reporta ErrNotFound.

// Get busca un registro activo; los de papelera quedan fuera.
func (uc *UseCase[T]) Get(ctx context.Context, id int64) (*T, error) {
	rec, err := uc.repo.Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar %s: %w", uc.def.Label, err)
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

// SoftDelete marca deleted_at de un registro activo y devuelve el registro
// ya marcado.
func (uc *UseCase[T]) SoftDelete(ctx context.Context, id int64) (*T, error) {
	rec, err := uc.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("soft delete %s: %w", uc.def.Label, err)
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

// Restore limpia deleted_at de un registro en papelera y lo devuelve activo.
func (uc *UseCase[T]) Restore(ctx context.Context, id int64) (*T, error) {
	rec, err := uc.repo.Restore(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("restore %s: %w", uc.def.Label, err)
	}
	if rec == nil {
		return nil, domain.ErrNotFoundInTrash
	}
	return rec, nil
}

// ForceDelete elimina definitivamente un registro que ya está en papelera.
func (uc *UseCase[T]) ForceDelete(ctx context.Context, id int64) error {
	ok, err := uc.repo.ForceDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("force delete %s: %w", uc.def.Label, err)
	}
	if !ok {
		return domain.ErrNotFoundInTrash
	}
	return nil
}
