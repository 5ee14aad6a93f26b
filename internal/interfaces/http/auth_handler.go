package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fakemart-api/internal/application/auth"
	"github.com/jhoicas/fakemart-api/internal/application/dto"
	"github.com/jhoicas/fakemart-api/internal/domain"
)

// AuthHandler login de la API administrativa.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler de autenticación.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login verifica nombre/contraseña y devuelve un token Bearer.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":      "error",
				"message":     "invalid name or password",
				"status_code": fiber.StatusUnauthorized,
			})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}
