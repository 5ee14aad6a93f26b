package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fakemart-api/internal/domain/entity"
)

var invoiceTable = Table[entity.Invoice]{
	Name: "invoices",
	Cols: []string{"user_id", "total"},
	Scan: func(row pgx.Row) (*entity.Invoice, error) {
		var i entity.Invoice
		if err := row.Scan(&i.ID, &i.UserID, &i.Total,
			&i.CreatedAt, &i.UpdatedAt, &i.DeletedAt); err != nil {
			return nil, err
		}
		return &i, nil
	},
	Values: func(i *entity.Invoice) []any {
		return []any{i.UserID, i.Total}
	},
	ID: func(i *entity.Invoice) int64 { return i.ID },
}

// NewInvoiceRepository construye el adaptador de persistencia de facturas.
func NewInvoiceRepository(q Querier) *Store[entity.Invoice] {
	return NewStore(q, invoiceTable)
}
