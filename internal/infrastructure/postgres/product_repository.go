package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fakemart-api/internal/domain/entity"
)

var productTable = Table[entity.Product]{
	Name: "products",
	Cols: []string{"product_name", "price", "cost", "category_id"},
	Scan: func(row pgx.Row) (*entity.Product, error) {
		var p entity.Product
		if err := row.Scan(&p.ID, &p.ProductName, &p.Price, &p.Cost, &p.CategoryID,
			&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, err
		}
		return &p, nil
	},
	Values: func(p *entity.Product) []any {
		return []any{p.ProductName, p.Price, p.Cost, p.CategoryID}
	},
	ID: func(p *entity.Product) int64 { return p.ID },
}

// NewProductRepository construye el adaptador de persistencia de productos.
func NewProductRepository(q Querier) *Store[entity.Product] {
	return NewStore(q, productTable)
}
