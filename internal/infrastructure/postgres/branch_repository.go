package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fakemart-api/internal/domain/entity"
	"github.com/jhoicas/fakemart-api/internal/domain/repository"
)

var _ repository.Repository[entity.Branch] = (*Store[entity.Branch])(nil)

var branchTable = Table[entity.Branch]{
	Name: "branches",
	Cols: []string{"name", "location", "contact_number"},
	Scan: func(row pgx.Row) (*entity.Branch, error) {
		var b entity.Branch
		if err := row.Scan(&b.ID, &b.Name, &b.Location, &b.ContactNumber,
			&b.CreatedAt, &b.UpdatedAt, &b.DeletedAt); err != nil {
			return nil, err
		}
		return &b, nil
	},
	Values: func(b *entity.Branch) []any {
		return []any{b.Name, b.Location, b.ContactNumber}
	},
	ID: func(b *entity.Branch) int64 { return b.ID },
}

// NewBranchRepository construye el adaptador de persistencia de sucursales.
func NewBranchRepository(q Querier) *Store[entity.Branch] {
	return NewStore(q, branchTable)
}
