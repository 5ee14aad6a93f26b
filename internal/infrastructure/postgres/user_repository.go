package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fakemart-api/internal/domain/entity"
	"github.com/jhoicas/fakemart-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

var userTable = Table[entity.User]{
	Name: "users",
	Cols: []string{"name", "password", "staff_id"},
	Scan: func(row pgx.Row) (*entity.User, error) {
		var u entity.User
		if err := row.Scan(&u.ID, &u.Name, &u.PasswordHash, &u.StaffID,
			&u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
			return nil, err
		}
		return &u, nil
	},
	Values: func(u *entity.User) []any {
		return []any{u.Name, u.PasswordHash, u.StaffID}
	},
	ID: func(u *entity.User) int64 { return u.ID },
}

// UserRepo CRUD común de usuarios más la búsqueda por nombre para el login.
type UserRepo struct {
	*Store[entity.User]
	q Querier
}

// NewUserRepository construye el adaptador de persistencia de usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{Store: NewStore(q, userTable), q: q}
}

// FindByName busca un usuario activo por nombre exacto. Nil si no existe.
func (r *UserRepo) FindByName(ctx context.Context, name string) (*entity.User, error) {
	query := `
		SELECT id, name, password, staff_id, created_at, updated_at, deleted_at
		FROM users WHERE name = $1 AND deleted_at IS NULL`
	u, err := userTable.Scan(r.q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by name: %w", err)
	}
	return u, nil
}
