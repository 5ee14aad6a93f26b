package entity

import "time"

// User cuenta de acceso ligada a un empleado. PasswordHash se genera con
// bcrypt y nunca se serializa en las respuestas.
type User struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	StaffID      int64      `json:"staff_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at"`
}
