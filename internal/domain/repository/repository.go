package repository

import (
	"context"

	"github.com/jhoicas/fakemart-api/internal/domain/entity"
)

// Repository puerto de persistencia común a todos los recursos del mart.
// Cada transición del ciclo de vida es una sola sentencia atómica sobre un
// registro: no existe ventana de fallo parcial.
//
// Semántica de estados según deleted_at:
//   - activo:   deleted_at IS NULL
//   - papelera: deleted_at IS NOT NULL (soft delete)
//   - borrado definitivo: la fila ya no existe
type Repository[T any] interface {
	// Create inserta y devuelve el registro persistido (con ID y timestamps).
	Create(ctx context.Context, rec *T) (*T, error)
	// Update reescribe las columnas de datos de un registro activo.
	// Devuelve nil si el registro no existe o está en papelera.
	Update(ctx context.Context, rec *T) (*T, error)
	// Find busca solo entre registros activos. Devuelve nil si no hay fila.
	Find(ctx context.Context, id int64) (*T, error)
	// FindTrashed busca solo entre registros en papelera.
	FindTrashed(ctx context.Context, id int64) (*T, error)
	// SoftDelete marca deleted_at de un registro activo y lo devuelve.
	// Devuelve nil si no hay registro activo con ese ID.
	SoftDelete(ctx context.Context, id int64) (*T, error)
	// Restore limpia deleted_at de un registro en papelera y lo devuelve.
	// Devuelve nil si el registro no está en papelera.
	Restore(ctx context.Context, id int64) (*T, error)
	// ForceDelete elimina definitivamente un registro en papelera.
	// Devuelve false si el registro no estaba en papelera.
	ForceDelete(ctx context.Context, id int64) (bool, error)
	// List pagina registros activos ordenados por ID.
	List(ctx context.Context, limit, offset int) ([]*T, error)
	// Count total de registros activos.
	Count(ctx context.Context) (int64, error)
}

// UserRepository puerto de usuarios: CRUD común más búsqueda por nombre
// para el login.
type UserRepository interface {
	Repository[entity.User]
	FindByName(ctx context.Context, name string) (*entity.User, error)
}
