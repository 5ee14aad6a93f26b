package entity

import "time"

// Branch sucursal física del mart.
type Branch struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Location      string     `json:"location"`
	ContactNumber string     `json:"contact_number"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at"`
}
