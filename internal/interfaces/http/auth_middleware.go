package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	pkgjwt "github.com/jhoicas/fakemart-api/pkg/jwt"
)

const (
	localUserID   = "user_id"
	localUserName = "user_name"
)

// AuthMiddleware exige un Bearer token válido y deja el usuario en locals.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, "missing Authorization header")
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(c, "malformed Authorization header")
		}
		userID, name, err := pkgjwt.Parse(secret, token)
		if err != nil {
			return unauthorized(c, "invalid or expired token")
		}
		c.Locals(localUserID, userID)
		c.Locals(localUserName, name)
		return c.Next()
	}
}

// GetUserID ID del usuario autenticado, 0 si la ruta no pasó por el middleware.
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(localUserID).(int64)
	return id
}

// GetUserName nombre del usuario autenticado.
func GetUserName(c *fiber.Ctx) string {
	name, _ := c.Locals(localUserName).(string)
	return name
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status":      "error",
		"message":     msg,
		"status_code": fiber.StatusUnauthorized,
	})
}
