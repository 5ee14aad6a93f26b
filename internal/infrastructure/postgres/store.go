package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Table describe la tabla de un recurso: columnas de datos escribibles,
// columnas generadas de solo lectura y las funciones de mapeo fila<->entidad.
// Toda fila lleva además id, created_at, updated_at y deleted_at.
type Table[T any] struct {
	Name   string
	Cols   []string // columnas escritas en INSERT/UPDATE
	Extra  []string // columnas generadas, solo en SELECT/RETURNING
	Scan   func(row pgx.Row) (*T, error)
	Values func(rec *T) []any // valores en el orden de Cols
	ID     func(rec *T) int64
}

// Store implementación genérica del puerto Repository sobre PostgreSQL.
// Cada transición del ciclo de vida es una sola sentencia con su predicado
// de estado (deleted_at IS NULL / IS NOT NULL), así la comprobación y la
// escritura son atómicas.
type Store[T any] struct {
	q   Querier
	tbl Table[T]

	selectList string
	insertSQL  string
	updateSQL  string
}

// NewStore construye el adaptador de persistencia para una tabla.
// Pasar pool o tx (Querier).
func NewStore[T any](q Querier, tbl Table[T]) *Store[T] {
	cols := append([]string{"id"}, tbl.Cols...)
	cols = append(cols, tbl.Extra...)
	cols = append(cols, "created_at", "updated_at", "deleted_at")
	selectList := strings.Join(cols, ", ")

	placeholders := make([]string, len(tbl.Cols))
	sets := make([]string, len(tbl.Cols))
	for i := range tbl.Cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		sets[i] = fmt.Sprintf("%s = $%d", tbl.Cols[i], i+2)
	}

	return &Store[T]{
		q:          q,
		tbl:        tbl,
		selectList: selectList,
		insertSQL: fmt.Sprintf(
			"INSERT INTO %s (%s, created_at, updated_at) VALUES (%s, now(), now()) RETURNING %s",
			tbl.Name, strings.Join(tbl.Cols, ", "), strings.Join(placeholders, ", "), selectList,
		),
		updateSQL: fmt.Sprintf(
			"UPDATE %s SET %s, updated_at = now() WHERE id = $1 AND deleted_at IS NULL RETURNING %s",
			tbl.Name, strings.Join(sets, ", "), selectList,
		),
	}
}

// Create inserta y devuelve la fila persistida (con ID y timestamps).
func (s *Store[T]) Create(ctx context.Context, rec *T) (*T, error) {
	row := s.q.QueryRow(ctx, s.insertSQL, s.tbl.Values(rec)...)
	created, err := s.tbl.Scan(row)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", s.tbl.Name, err)
	}
	return created, nil
}

// Update reescribe las columnas de datos de una fila activa. Nil si la fila
// no existe o está en papelera.
func (s *Store[T]) Update(ctx context.Context, rec *T) (*T, error) {
	args := append([]any{s.tbl.ID(rec)}, s.tbl.Values(rec)...)
	row := s.q.QueryRow(ctx, s.updateSQL, args...)
	updated, err := s.tbl.Scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update %s: %w", s.tbl.Name, err)
	}
	return updated, nil
}

// Find busca una fila activa por ID. Nil si no existe.
func (s *Store[T]) Find(ctx context.Context, id int64) (*T, error) {
	return s.findWhere(ctx, id, "deleted_at IS NULL", "find")
}

// FindTrashed busca una fila en papelera por ID. Nil si no existe.
func (s *Store[T]) FindTrashed(ctx context.Context, id int64) (*T, error) {
	return s.findWhere(ctx, id, "deleted_at IS NOT NULL", "find trashed")
}

func (s *Store[T]) findWhere(ctx context.Context, id int64, state, op string) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 AND %s", s.selectList, s.tbl.Name, state)
	rec, err := s.tbl.Scan(s.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s %s: %w", op, s.tbl.Name, err)
	}
	return rec, nil
}

// SoftDelete marca deleted_at de una fila activa y la devuelve. Nil si no
// había fila activa con ese ID.
func (s *Store[T]) SoftDelete(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(
		"UPDATE %s SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL RETURNING %s",
		s.tbl.Name, s.selectList,
	)
	rec, err := s.tbl.Scan(s.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("soft delete %s: %w", s.tbl.Name, err)
	}
	return rec, nil
}

// Restore limpia deleted_at de una fila en papelera y la devuelve. Nil si la
// fila no estaba en papelera.
func (s *Store[T]) Restore(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(
		"UPDATE %s SET deleted_at = NULL, updated_at = now() WHERE id = $1 AND deleted_at IS NOT NULL RETURNING %s",
		s.tbl.Name, s.selectList,
	)
	rec, err := s.tbl.Scan(s.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("restore %s: %w", s.tbl.Name, err)
	}
	return rec, nil
}

// ForceDelete elimina definitivamente una fila en papelera. False si la fila
// no estaba en papelera (las activas quedan intactas).
func (s *Store[T]) ForceDelete(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND deleted_at IS NOT NULL", s.tbl.Name)
	cmd, err := s.q.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("force delete %s: %w", s.tbl.Name, err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List pagina filas activas ordenadas por ID.
func (s *Store[T]) List(ctx context.Context, limit, offset int) ([]*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE deleted_at IS NULL ORDER BY id LIMIT $1 OFFSET $2",
		s.selectList, s.tbl.Name,
	)
	rows, err := s.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.tbl.Name, err)
	}
	defer rows.Close()
	var list []*T
	for rows.Next() {
		rec, err := s.tbl.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.tbl.Name, err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// Count total de filas activas.
func (s *Store[T]) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf("SELECT count(*) FROM %s WHERE deleted_at IS NULL", s.tbl.Name)
	var n int64
	if err := s.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.tbl.Name, err)
	}
	return n, nil
}
