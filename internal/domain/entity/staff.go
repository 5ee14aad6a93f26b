package entity

import "time"

// Staff empleado asignado a un cargo. Gender es opcional; DOB se valida y
// persiste como texto (así llega del cliente, sin formato de fecha impuesto).
type Staff struct {
	ID           int64      `json:"id"`
	PositionID   int64      `json:"position_id"`
	Name         string     `json:"name"`
	Gender       *string    `json:"gender"`
	DOB          string     `json:"dob"`
	POB          string     `json:"pob"`
	Address      string     `json:"address"`
	Phone        string     `json:"phone"`
	NationIDCard string     `json:"nation_id_card"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at"`
}
