package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice factura emitida por un usuario. Total no se calcula aquí: es una
// columna que mantienen los procesos de carga de datos.
type Invoice struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at"`
}
