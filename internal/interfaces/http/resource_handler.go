package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fakemart-api/internal/application/resource"
	"github.com/jhoicas/fakemart-api/internal/domain"
	"github.com/jhoicas/fakemart-api/pkg/validate"
)

// ResourceHandler expone el CRUD y el ciclo de vida de un recurso con el
// sobre JSON uniforme de la API:
//
//	éxito:      {"status":"success", <clave>: ..., "status_code":200}
//	validación: {"status":"error", "errors":{campo: mensaje}, "status_code":422}
//	no existe:  {"status":"<mensaje descriptivo>", "status_code":404}
//
// El código HTTP siempre coincide con status_code.
type ResourceHandler[T any] struct {
	uc *resource.UseCase[T]
}

// NewResourceHandler construye el handler de un recurso.
func NewResourceHandler[T any](uc *resource.UseCase[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{uc: uc}
}

// Register monta las siete rutas del recurso sobre el grupo dado.
func (h *ResourceHandler[T]) Register(r fiber.Router) {
	def := h.uc.Def()
	r.Get("/"+def.Plural, h.List)
	r.Get("/"+def.Singular+"/:id", h.GetByID)
	r.Post("/"+def.Singular+"/create", h.Create)
	r.Post("/"+def.Singular+"/update", h.Update)
	r.Post("/"+def.Singular+"/delete/soft", h.SoftDelete)
	r.Post("/"+def.Singular+"/delete/force", h.ForceDelete)
	r.Post("/"+def.Singular+"/restore/:id", h.Restore)
}

// List listado paginado de registros activos.
// Query: _pageLimit (tamaño de página, def. 10) y _pageSize (número de página, def. 1).
func (h *ResourceHandler[T]) List(c *fiber.Ctx) error {
	limit := c.QueryInt("_pageLimit", 10)
	page := c.QueryInt("_pageSize", 1)
	out, err := h.uc.List(c.UserContext(), limit, page)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{
		"status":       "success",
		"current_page": out.CurrentPage,
		"total_pages":  out.TotalPages,
		"total_items":  out.TotalItems,
		"per_page":     out.PerPage,
		"data":         out.Items,
		"status_code":  fiber.StatusOK,
	})
}

// GetByID registro activo por ID; los de papelera responden 404.
func (h *ResourceHandler[T]) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.ParseInt(c.Params("id"), 10, 64)
	rec, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, fmt.Sprintf("%s with ID %s not found", h.uc.Def().Label, c.Params("id")))
		}
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{
		"status":      "success",
		"data":        rec,
		"status_code": fiber.StatusOK,
	})
}

// Create valida el cuerpo completo y crea el registro.
func (h *ResourceHandler[T]) Create(c *fiber.Ctx) error {
	in, ok := parseBody(c)
	if !ok {
		return invalidBody(c)
	}
	rec, res, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return internalError(c, err)
	}
	if !res.OK() {
		return validationError(c, res)
	}
	body := fiber.Map{
		"status":      "success",
		"status_code": fiber.StatusOK,
	}
	body[h.uc.Def().CreatedKey] = rec
	return c.JSON(body)
}

// Update carga el registro activo por el id del cuerpo, revalida el juego
// completo de campos y reescribe.
func (h *ResourceHandler[T]) Update(c *fiber.Ctx) error {
	in, ok := parseBody(c)
	if !ok {
		return invalidBody(c)
	}
	id := bodyID(in)
	rec, res, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, fmt.Sprintf("%s with ID %d not found", h.uc.Def().Label, id))
		}
		return internalError(c, err)
	}
	if !res.OK() {
		return validationError(c, res)
	}
	return c.JSON(fiber.Map{
		"status":       "success",
		"updated_data": rec,
		"status_code":  fiber.StatusOK,
	})
}

// SoftDelete marca el registro como borrado (pasa a papelera).
func (h *ResourceHandler[T]) SoftDelete(c *fiber.Ctx) error {
	in, ok := parseBody(c)
	if !ok {
		return invalidBody(c)
	}
	id := bodyID(in)
	rec, err := h.uc.SoftDelete(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, fmt.Sprintf("%s with ID %d not found or already deleted!", h.uc.Def().Label, id))
		}
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{
		"status":       "success",
		"deleted_data": rec,
		"status_code":  fiber.StatusOK,
	})
}

// ForceDelete elimina definitivamente un registro que ya está en papelera.
// Sobre un registro activo no hace nada: 404 "not found in trash".
func (h *ResourceHandler[T]) ForceDelete(c *fiber.Ctx) error {
	in, ok := parseBody(c)
	if !ok {
		return invalidBody(c)
	}
	id := bodyID(in)
	if err := h.uc.ForceDelete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFoundInTrash) {
			return notFound(c, fmt.Sprintf("%s with ID %d not found in trash.", h.uc.Def().Label, id))
		}
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{
		"status":      "success",
		"message":     fmt.Sprintf("%s with ID %d permanently deleted.", h.uc.Def().Label, id),
		"status_code": fiber.StatusOK,
	})
}

// Restore devuelve a activo un registro en papelera.
func (h *ResourceHandler[T]) Restore(c *fiber.Ctx) error {
	id, _ := strconv.ParseInt(c.Params("id"), 10, 64)
	rec, err := h.uc.Restore(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFoundInTrash) {
			return notFound(c, fmt.Sprintf("%s with ID %s not found in trash.", h.uc.Def().Label, c.Params("id")))
		}
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{
		"status":        "success",
		"restored_data": rec,
		"status_code":   fiber.StatusOK,
	})
}

// parseBody cuerpo JSON como mapa crudo para el motor de validación.
func parseBody(c *fiber.Ctx) (validate.Input, bool) {
	var in validate.Input
	if err := c.BodyParser(&in); err != nil {
		return nil, false
	}
	return in, true
}

// bodyID extrae el campo id del cuerpo (number o string). 0 si falta.
func bodyID(in validate.Input) int64 {
	switch v := in["id"].(type) {
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}

func validationError(c *fiber.Ctx, res validate.Result) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status":      "error",
		"errors":      res.Errors(),
		"status_code": fiber.StatusUnprocessableEntity,
	})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":      msg,
		"status_code": fiber.StatusNotFound,
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":      "error",
		"message":     "invalid request body",
		"status_code": fiber.StatusBadRequest,
	})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":      "error",
		"message":     err.Error(),
		"status_code": fiber.StatusInternalServerError,
	})
}
