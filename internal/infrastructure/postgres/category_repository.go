package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fakemart-api/internal/domain/entity"
)

var categoryTable = Table[entity.Category]{
	Name: "categories",
	Cols: []string{"name", "description"},
	Scan: func(row pgx.Row) (*entity.Category, error) {
		var c entity.Category
		if err := row.Scan(&c.ID, &c.Name, &c.Description,
			&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
			return nil, err
		}
		return &c, nil
	},
	Values: func(c *entity.Category) []any {
		return []any{c.Name, c.Description}
	},
	ID: func(c *entity.Category) int64 { return c.ID },
}

// NewCategoryRepository construye el adaptador de persistencia de categorías.
func NewCategoryRepository(q Querier) *Store[entity.Category] {
	return NewStore(q, categoryTable)
}
