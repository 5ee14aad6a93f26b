package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/fakemart-api/internal/application/auth"
	"github.com/jhoicas/fakemart-api/internal/application/resource"
	"github.com/jhoicas/fakemart-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/fakemart-api/internal/interfaces/http"
	"github.com/jhoicas/fakemart-api/pkg/config"
	"github.com/jhoicas/fakemart-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	exists := postgres.NewExistsChecker(pool)
	userRepo := postgres.NewUserRepository(pool)

	branchUC := resource.New(resource.BranchDefinition(), postgres.NewBranchRepository(pool), exists)
	categoryUC := resource.New(resource.CategoryDefinition(), postgres.NewCategoryRepository(pool), exists)
	productUC := resource.New(resource.ProductDefinition(), postgres.NewProductRepository(pool), exists)
	positionUC := resource.New(resource.PositionDefinition(), postgres.NewPositionRepository(pool), exists)
	staffUC := resource.New(resource.StaffDefinition(), postgres.NewStaffRepository(pool), exists)
	userUC := resource.New(resource.UserDefinition(), userRepo, exists)
	invoiceUC := resource.New(resource.InvoiceDefinition(), postgres.NewInvoiceRepository(pool), exists)
	invoiceItemUC := resource.New(resource.InvoiceItemDefinition(), postgres.NewInvoiceItemRepository(pool), exists)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BranchUC:      branchUC,
		CategoryUC:    categoryUC,
		ProductUC:     productUC,
		PositionUC:    positionUC,
		StaffUC:       staffUC,
		UserUC:        userUC,
		InvoiceUC:     invoiceUC,
		InvoiceItemUC: invoiceItemUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
