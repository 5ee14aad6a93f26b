package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fakemart-api/internal/domain/entity"
)

// total es columna generada (qty * price): va en Extra para leerse en cada
// SELECT/RETURNING sin aparecer nunca en INSERT ni UPDATE.
var invoiceItemTable = Table[entity.InvoiceItem]{
	Name:  "invoice_items",
	Cols:  []string{"invoice_id", "product_id", "qty", "price"},
	Extra: []string{"total"},
	Scan: func(row pgx.Row) (*entity.InvoiceItem, error) {
		var it entity.InvoiceItem
		if err := row.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.Qty, &it.Price, &it.Total,
			&it.CreatedAt, &it.UpdatedAt, &it.DeletedAt); err != nil {
			return nil, err
		}
		return &it, nil
	},
	Values: func(it *entity.InvoiceItem) []any {
		return []any{it.InvoiceID, it.ProductID, it.Qty, it.Price}
	},
	ID: func(it *entity.InvoiceItem) int64 { return it.ID },
}

// NewInvoiceItemRepository construye el adaptador de persistencia de líneas de factura.
func NewInvoiceItemRepository(q Querier) *Store[entity.InvoiceItem] {
	return NewStore(q, invoiceItemTable)
}
