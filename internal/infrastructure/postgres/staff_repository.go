package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fakemart-api/internal/domain/entity"
)

// La tabla staff conserva su nombre singular (así se referencia desde la
// regla exists:staff,id de los usuarios).
var staffTable = Table[entity.Staff]{
	Name: "staff",
	Cols: []string{"position_id", "name", "gender", "dob", "pob", "address", "phone", "nation_id_card"},
	Scan: func(row pgx.Row) (*entity.Staff, error) {
		var s entity.Staff
		if err := row.Scan(&s.ID, &s.PositionID, &s.Name, &s.Gender, &s.DOB, &s.POB,
			&s.Address, &s.Phone, &s.NationIDCard,
			&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, err
		}
		return &s, nil
	},
	Values: func(s *entity.Staff) []any {
		return []any{s.PositionID, s.Name, s.Gender, s.DOB, s.POB, s.Address, s.Phone, s.NationIDCard}
	},
	ID: func(s *entity.Staff) int64 { return s.ID },
}

// NewStaffRepository construye el adaptador de persistencia de empleados.
func NewStaffRepository(q Querier) *Store[entity.Staff] {
	return NewStore(q, staffTable)
}
