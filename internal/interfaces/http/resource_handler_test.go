package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fakemart-api/internal/application/resource"
	"github.com/jhoicas/fakemart-api/internal/domain/entity"
	apphttp "github.com/jhoicas/fakemart-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del puerto de persistencia
// ──────────────────────────────────────────────────────────────────────────────

// memRepo implementa repository.Repository[T] sobre un mapa. meta entrega
// punteros al ID y al deleted_at de un registro para que el fake discrimine
// estados igual que la capa Postgres.
type memRepo[T any] struct {
	seq  int64
	rows map[int64]*T
	meta func(rec *T) (id *int64, deletedAt **time.Time)
}

func newMemRepo[T any](meta func(rec *T) (*int64, **time.Time)) *memRepo[T] {
	return &memRepo[T]{rows: make(map[int64]*T), meta: meta}
}

func (m *memRepo[T]) Create(_ context.Context, rec *T) (*T, error) {
	m.seq++
	cp := *rec
	id, _ := m.meta(&cp)
	*id = m.seq
	m.rows[m.seq] = &cp
	out := cp
	return &out, nil
}

func (m *memRepo[T]) Update(_ context.Context, rec *T) (*T, error) {
	id, _ := m.meta(rec)
	cur, ok := m.rows[*id]
	if !ok {
		return nil, nil
	}
	if _, del := m.meta(cur); *del != nil {
		return nil, nil
	}
	cp := *rec
	m.rows[*id] = &cp
	out := cp
	return &out, nil
}

func (m *memRepo[T]) Find(_ context.Context, id int64) (*T, error) {
	rec, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	if _, del := m.meta(rec); *del != nil {
		return nil, nil
	}
	out := *rec
	return &out, nil
}

func (m *memRepo[T]) FindTrashed(_ context.Context, id int64) (*T, error) {
	rec, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	if _, del := m.meta(rec); *del == nil {
		return nil, nil
	}
	out := *rec
	return &out, nil
}

func (m *memRepo[T]) SoftDelete(_ context.Context, id int64) (*T, error) {
	rec, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	_, del := m.meta(rec)
	if *del != nil {
		return nil, nil
	}
	now := time.Now()
	*del = &now
	out := *rec
	return &out, nil
}

func (m *memRepo[T]) Restore(_ context.Context, id int64) (*T, error) {
	rec, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	_, del := m.meta(rec)
	if *del == nil {
		return nil, nil
	}
	*del = nil
	out := *rec
	return &out, nil
}

func (m *memRepo[T]) ForceDelete(_ context.Context, id int64) (bool, error) {
	rec, ok := m.rows[id]
	if !ok {
		return false, nil
	}
	if _, del := m.meta(rec); *del == nil {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func (m *memRepo[T]) List(_ context.Context, limit, offset int) ([]*T, error) {
	var out []*T
	for id := int64(1); id <= m.seq; id++ {
		rec, ok := m.rows[id]
		if !ok {
			continue
		}
		if _, del := m.meta(rec); *del != nil {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRepo[T]) Count(_ context.Context) (int64, error) {
	var n int64
	for _, rec := range m.rows {
		if _, del := m.meta(rec); *del == nil {
			n++
		}
	}
	return n, nil
}

// stubExists da por existentes las claves "tabla.columna:valor" registradas.
type stubExists struct {
	found map[string]bool
}

func (s *stubExists) ExistsByKey(_ context.Context, table, column string, value any) (bool, error) {
	return s.found[fmt.Sprintf("%s.%s:%v", table, column, value)], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func branchMeta(rec *entity.Branch) (*int64, **time.Time) { return &rec.ID, &rec.DeletedAt }
func productMeta(rec *entity.Product) (*int64, **time.Time) { return &rec.ID, &rec.DeletedAt }

// buildTestApp monta una app Fiber con los recursos branch y product sobre
// repos en memoria. Las categorías 1 y 2 existen para la regla exists.
func buildTestApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api")

	db := &stubExists{found: map[string]bool{
		"categories.id:1": true,
		"categories.id:2": true,
	}}

	branchUC := resource.New(resource.BranchDefinition(), newMemRepo(branchMeta), db)
	productUC := resource.New(resource.ProductDefinition(), newMemRepo(productMeta), db)

	apphttp.NewResourceHandler(branchUC).Register(api)
	apphttp.NewResourceHandler(productUC).Register(api)
	return app
}

// doJSON lanza una petición con cuerpo JSON y decodifica la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func createBranch(t *testing.T, app *fiber.App) map[string]any {
	t.Helper()
	code, body := doJSON(t, app, http.MethodPost, "/api/branch/create", map[string]any{
		"name":           "FakeMart",
		"location":       "PhnomPenh",
		"contact_number": "0987654321",
	})
	require.Equal(t, http.StatusOK, code)
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestBranchCreate_Exitoso(t *testing.T) {
	app := buildTestApp()
	body := createBranch(t, app)

	assert.Equal(t, "success", body["status"])
	assert.EqualValues(t, 200, body["status_code"])

	nuevo, ok := body["new_branch"].(map[string]any)
	require.True(t, ok, "la respuesta debe incluir el registro bajo new_branch")
	assert.Equal(t, "FakeMart", nuevo["name"])
	assert.Equal(t, "PhnomPenh", nuevo["location"])
	assert.Equal(t, "0987654321", nuevo["contact_number"])
	assert.EqualValues(t, 1, nuevo["id"])
	assert.Nil(t, nuevo["deleted_at"])
}

func TestBranchCreate_SinNombre_422(t *testing.T) {
	app := buildTestApp()
	code, body := doJSON(t, app, http.MethodPost, "/api/branch/create", map[string]any{
		"location":       "PhnomPenh",
		"contact_number": "0987654321",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "error", body["status"])
	assert.EqualValues(t, 422, body["status_code"])

	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Branch name is not allowed to be null.", errs["name"])
}

func TestProductCreate_Exitoso(t *testing.T) {
	app := buildTestApp()
	code, body := doJSON(t, app, http.MethodPost, "/api/product/create", map[string]any{
		"product_name": "Coca Cola",
		"price":        0.5,
		"cost":         0.25,
		"category_id":  1,
	})

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body["status"])
	nuevo, ok := body["new_product"].(map[string]any)
	require.True(t, ok, "la respuesta debe incluir el registro bajo new_product")
	assert.Equal(t, "Coca Cola", nuevo["product_name"])
}

// category_id que no referencia una categoría activa falla la regla exists.
func TestProductCreate_CategoriaInexistente_422(t *testing.T) {
	app := buildTestApp()
	code, body := doJSON(t, app, http.MethodPost, "/api/product/create", map[string]any{
		"product_name": "Coca Cola",
		"price":        0.5,
		"cost":         0.25,
		"category_id":  99,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "The selected category ID does not exist.", errs["category_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List / GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestBranchList_Paginacion(t *testing.T) {
	app := buildTestApp()
	for i := 0; i < 3; i++ {
		createBranch(t, app)
	}

	code, body := doJSON(t, app, http.MethodGet, "/api/branches?_pageLimit=2&_pageSize=2", nil)
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "success", body["status"])
	assert.EqualValues(t, 2, body["current_page"])
	assert.EqualValues(t, 2, body["total_pages"])
	assert.EqualValues(t, 3, body["total_items"])
	assert.EqualValues(t, 2, body["per_page"])

	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 1, "la segunda página de 3 registros con límite 2 tiene 1 elemento")
}

func TestBranchList_Vacio(t *testing.T) {
	app := buildTestApp()
	code, body := doJSON(t, app, http.MethodGet, "/api/branches", nil)
	require.Equal(t, http.StatusOK, code)

	data, ok := body["data"].([]any)
	require.True(t, ok, "data debe ser un arreglo, nunca null")
	assert.Empty(t, data)
	assert.EqualValues(t, 1, body["total_pages"])
}

func TestBranchGet_Exitoso(t *testing.T) {
	app := buildTestApp()
	createBranch(t, app)

	code, body := doJSON(t, app, http.MethodGet, "/api/branch/1", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body["status"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "FakeMart", data["name"])
}

func TestBranchGet_Inexistente_404(t *testing.T) {
	app := buildTestApp()
	code, body := doJSON(t, app, http.MethodGet, "/api/branch/99", nil)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Branch with ID 99 not found", body["status"])
	assert.EqualValues(t, 404, body["status_code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update
// ──────────────────────────────────────────────────────────────────────────────

func TestBranchUpdate_Exitoso(t *testing.T) {
	app := buildTestApp()
	createBranch(t, app)

	code, body := doJSON(t, app, http.MethodPost, "/api/branch/update", map[string]any{
		"id":             1,
		"name":           "FakeMart 2",
		"location":       "SiemReap",
		"contact_number": "0111222333",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body["status"])

	updated, ok := body["updated_data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "FakeMart 2", updated["name"])
}

func TestBranchUpdate_Inexistente_404(t *testing.T) {
	app := buildTestApp()
	code, body := doJSON(t, app, http.MethodPost, "/api/branch/update", map[string]any{
		"id":             42,
		"name":           "X",
		"location":       "Y",
		"contact_number": "Z",
	})

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Branch with ID 42 not found", body["status"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ciclo de vida vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestBranchSoftDelete_Exitoso(t *testing.T) {
	app := buildTestApp()
	createBranch(t, app)

	code, body := doJSON(t, app, http.MethodPost, "/api/branch/delete/soft", map[string]any{"id": 1})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body["status"])

	deleted, ok := body["deleted_data"].(map[string]any)
	require.True(t, ok)
	assert.NotNil(t, deleted["deleted_at"], "el registro devuelto ya debe traer deleted_at")

	// En papelera el registro desaparece del GET por ID.
	code, _ = doJSON(t, app, http.MethodGet, "/api/branch/1", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestBranchSoftDelete_Repetido_404(t *testing.T) {
	app := buildTestApp()
	createBranch(t, app)

	code, _ := doJSON(t, app, http.MethodPost, "/api/branch/delete/soft", map[string]any{"id": 1})
	require.Equal(t, http.StatusOK, code)

	code, body := doJSON(t, app, http.MethodPost, "/api/branch/delete/soft", map[string]any{"id": 1})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Branch with ID 1 not found or already deleted!", body["status"])
}

// Force delete sobre un registro activo no elimina nada: el registro no está
// en la papelera.
func TestBranchForceDelete_SobreActivo_404(t *testing.T) {
	app := buildTestApp()
	for i := 0; i < 5; i++ {
		createBranch(t, app)
	}

	code, body := doJSON(t, app, http.MethodPost, "/api/branch/delete/force", map[string]any{"id": 5})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Branch with ID 5 not found in trash.", body["status"])

	// El registro sigue activo.
	code, _ = doJSON(t, app, http.MethodGet, "/api/branch/5", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestBranchForceDelete_DesdePapelera(t *testing.T) {
	app := buildTestApp()
	createBranch(t, app)

	code, _ := doJSON(t, app, http.MethodPost, "/api/branch/delete/soft", map[string]any{"id": 1})
	require.Equal(t, http.StatusOK, code)

	code, body := doJSON(t, app, http.MethodPost, "/api/branch/delete/force", map[string]any{"id": 1})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Branch with ID 1 permanently deleted.", body["message"])
}

func TestBranchRestore_Exitoso(t *testing.T) {
	app := buildTestApp()
	createBranch(t, app)

	code, _ := doJSON(t, app, http.MethodPost, "/api/branch/delete/soft", map[string]any{"id": 1})
	require.Equal(t, http.StatusOK, code)

	code, body := doJSON(t, app, http.MethodPost, "/api/branch/restore/1", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body["status"])

	restored, ok := body["restored_data"].(map[string]any)
	require.True(t, ok)
	assert.Nil(t, restored["deleted_at"], "el registro restaurado vuelve activo")

	code, _ = doJSON(t, app, http.MethodGet, "/api/branch/1", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestBranchRestore_Inexistente_404(t *testing.T) {
	app := buildTestApp()
	code, body := doJSON(t, app, http.MethodPost, "/api/branch/restore/7", nil)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Branch with ID 7 not found in trash.", body["status"])
	assert.EqualValues(t, 404, body["status_code"])
}
