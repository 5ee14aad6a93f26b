package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fakemart-api/internal/domain/entity"
)

var positionTable = Table[entity.Position]{
	Name: "positions",
	Cols: []string{"name", "branch_id"},
	Scan: func(row pgx.Row) (*entity.Position, error) {
		var p entity.Position
		if err := row.Scan(&p.ID, &p.Name, &p.BranchID,
			&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, err
		}
		return &p, nil
	},
	Values: func(p *entity.Position) []any {
		return []any{p.Name, p.BranchID}
	},
	ID: func(p *entity.Position) int64 { return p.ID },
}

// NewPositionRepository construye el adaptador de persistencia de cargos.
func NewPositionRepository(q Querier) *Store[entity.Position] {
	return NewStore(q, positionTable)
}
