package entity

import "time"

// Position cargo dentro de una sucursal (Admin, Sale, ...).
type Position struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	BranchID  int64      `json:"branch_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}
