package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product artículo a la venta. Price y Cost son NUMERIC en la base y se
// manejan como decimal para no perder precisión monetaria.
type Product struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	CategoryID  int64           `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   *time.Time      `json:"deleted_at"`
}
