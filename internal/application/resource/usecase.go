package resource

import (
	"context"
	"fmt"

	"github.com/jhoicas/fakemart-api/internal/domain"
	"github.com/jhoicas/fakemart-api/internal/domain/repository"
	"github.com/jhoicas/fakemart-api/pkg/validate"
)

// Definition esquema declarativo de un recurso: etiqueta para mensajes,
// clave del payload de creación, reglas y mensajes de validación, y las dos
// funciones que traducen la entrada ya validada a la entidad.
//
// Todo el comportamiento por recurso vive en estos datos; el motor de CRUD y
// ciclo de vida es uno solo para los ocho recursos.
type Definition[T any] struct {
	Label      string
	Plural     string // segmento de ruta del listado ("branches", "staffs", ...)
	Singular   string // segmento de ruta del resto de operaciones
	CreatedKey string // clave del registro creado en la respuesta ("new_branch", ...)
	Rules      validate.RuleSet
	Messages   validate.Messages
	// Apply vuelca la entrada ya validada sobre la entidad. Create la usa
	// sobre un valor cero; Update sobre el registro cargado.
	Apply func(rec *T, in validate.Input) error
}

// UseCase CRUD genérico con validación previa a toda escritura. Las
// operaciones del ciclo de vida (soft delete, restore, force delete) están
// en lifecycle.go.
type UseCase[T any] struct {
	def  Definition[T]
	repo repository.Repository[T]
	db   validate.ExistsChecker
}

// New construye el caso de uso de un recurso a partir de su definición.
func New[T any](def Definition[T], repo repository.Repository[T], db validate.ExistsChecker) *UseCase[T] {
	return &UseCase[T]{def: def, repo: repo, db: db}
}

// Def definición del recurso (la usa el handler para rutas y claves de payload).
func (uc *UseCase[T]) Def() Definition[T] { return uc.def }

// Create valida la entrada completa y, solo si pasa, inserta el registro.
// Un resultado inválido no toca la base: nunca hay escrituras parciales.
func (uc *UseCase[T]) Create(ctx context.Context, in validate.Input) (*T, validate.Result, error) {
	res, err := validate.Validate(ctx, in, uc.def.Rules, uc.def.Messages, uc.db)
	if err != nil {
		return nil, validate.Valid(), fmt.Errorf("crear %s: %w", uc.def.Label, err)
	}
	if !res.OK() {
		return nil, res, nil
	}
	rec := new(T)
	if err := uc.def.Apply(rec, in); err != nil {
		return nil, validate.Valid(), fmt.Errorf("crear %s: %w", uc.def.Label, err)
	}
	created, err := uc.repo.Create(ctx, rec)
	if err != nil {
		return nil, validate.Valid(), fmt.Errorf("crear %s: %w", uc.def.Label, err)
	}
	return created, res, nil
}

// Update carga el registro activo, revalida el juego de campos completo
// (no un diff) y reescribe. Registro inexistente o en papelera: ErrNotFound.
func (uc *UseCase[T]) Update(ctx context.Context, id int64, in validate.Input) (*T, validate.Result, error) {
	rec, err := uc.repo.Find(ctx, id)
	if err != nil {
		return nil, validate.Valid(), fmt.Errorf("actualizar %s: %w", uc.def.Label, err)
	}
	if rec == nil {
		return nil, validate.Valid(), domain.ErrNotFound
	}
	res, err := validate.Validate(ctx, in, uc.def.Rules, uc.def.Messages, uc.db)
	if err != nil {
		return nil, validate.Valid(), fmt.Errorf("actualizar %s: %w", uc.def.Label, err)
	}
	if !res.OK() {
		return nil, res, nil
	}
	if err := uc.def.Apply(rec, in); err != nil {
		return nil, validate.Valid(), fmt.Errorf("actualizar %s: %w", uc.def.Label, err)
	}
	updated, err := uc.repo.Update(ctx, rec)
	if err != nil {
		return nil, validate.Valid(), fmt.Errorf("actualizar %s: %w", uc.def.Label, err)
	}
	if updated == nil {
		return nil, validate.Valid(), domain.ErrNotFound
	}
	return updated, res, nil
}

// Page resultado paginado con la aritmética que espera el cliente.
type Page[T any] struct {
	Items       []*T
	CurrentPage int
	TotalPages  int
	TotalItems  int64
	PerPage     int
}

// List pagina registros activos. page y limit fuera de rango caen a 1 y 10.
func (uc *UseCase[T]) List(ctx context.Context, limit, page int) (*Page[T], error) {
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar %s: %w", uc.def.Label, err)
	}
	items, err := uc.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("listar %s: %w", uc.def.Label, err)
	}
	if items == nil {
		items = []*T{}
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}
	return &Page[T]{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		PerPage:     limit,
	}, nil
}
