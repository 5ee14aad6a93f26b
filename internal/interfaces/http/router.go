package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fakemart-api/internal/application/auth"
	"github.com/jhoicas/fakemart-api/internal/application/resource"
	"github.com/jhoicas/fakemart-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BranchUC      *resource.UseCase[entity.Branch]
	CategoryUC    *resource.UseCase[entity.Category]
	ProductUC     *resource.UseCase[entity.Product]
	PositionUC    *resource.UseCase[entity.Position]
	StaffUC       *resource.UseCase[entity.Staff]
	UserUC        *resource.UseCase[entity.User]
	InvoiceUC     *resource.UseCase[entity.Invoice]
	InvoiceItemUC *resource.UseCase[entity.InvoiceItem]
	AuthUC        *auth.UseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Con JWTSecret definido las rutas
// administrativas exigen Bearer token; sin secret la API queda abierta.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	if deps.AuthUC != nil {
		authHandler := NewAuthHandler(deps.AuthUC)
		api.Post("/auth/login", authHandler.Login)
	}

	admin := api.Group("/")
	if deps.JWTSecret != "" {
		admin = api.Group("/", AuthMiddleware(deps.JWTSecret))
	}

	NewResourceHandler(deps.BranchUC).Register(admin)
	NewResourceHandler(deps.CategoryUC).Register(admin)
	NewResourceHandler(deps.ProductUC).Register(admin)
	NewResourceHandler(deps.PositionUC).Register(admin)
	NewResourceHandler(deps.StaffUC).Register(admin)
	NewResourceHandler(deps.UserUC).Register(admin)
	NewResourceHandler(deps.InvoiceUC).Register(admin)
	NewResourceHandler(deps.InvoiceItemUC).Register(admin)
}
