package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem línea de factura. Total es una columna generada en la base
// (qty * price): se lee pero nunca se escribe desde la aplicación.
type InvoiceItem struct {
	ID        int64           `json:"id"`
	InvoiceID int64           `json:"invoice_id"`
	ProductID int64           `json:"product_id"`
	Qty       decimal.Decimal `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at"`
}
