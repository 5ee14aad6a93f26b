package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/fakemart-api/pkg/validate"
)

var _ validate.ExistsChecker = (*ExistsChecker)(nil)

// allowedExists identificadores admitidos por la restricción exists. Las
// reglas se declaran en código, pero tabla y columna se interpolan en el SQL,
// así que se contrastan contra esta lista en lugar de confiar en la cadena.
var allowedExists = map[string]map[string]bool{
	"branches":      {"id": true},
	"categories":    {"id": true},
	"products":      {"id": true},
	"positions":     {"id": true},
	"staff":         {"id": true},
	"users":         {"id": true},
	"invoices":      {"id": true},
	"invoice_items": {"id": true},
}

// ExistsChecker resuelve la restricción exists:tabla,columna contra la base.
// Solo cuentan los registros activos: una referencia a un registro en
// papelera es tan inválida como una inexistente.
type ExistsChecker struct {
	q Querier
}

// NewExistsChecker construye el colaborador de existencia para el motor de
// validación.
func NewExistsChecker(q Querier) *ExistsChecker {
	return &ExistsChecker{q: q}
}

// ExistsByKey true si existe un registro activo con ese valor en la columna.
func (c *ExistsChecker) ExistsByKey(ctx context.Context, table, column string, value any) (bool, error) {
	if !allowedExists[table][column] {
		return false, fmt.Errorf("exists: tabla o columna no registrada: %s.%s", table, column)
	}
	query := fmt.Sprintf(
		"SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND deleted_at IS NULL)",
		table, column,
	)
	var found bool
	if err := c.q.QueryRow(ctx, query, value).Scan(&found); err != nil {
		return false, fmt.Errorf("exists %s.%s: %w", table, column, err)
	}
	return found, nil
}
