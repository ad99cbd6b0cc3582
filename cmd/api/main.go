package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/fletes-api/internal/application/usecase"
	"github.com/jhoicas/fletes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/fletes-api/internal/interfaces/http"
	"github.com/jhoicas/fletes-api/pkg/config"
	"github.com/jhoicas/fletes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	registry := postgres.NewRegistryRepo(pool, cfg.Tenancy.AdminSchema)
	if err := registry.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("bootstrap del esquema admin")
	}

	provisioner := postgres.NewProvisioner(pool, log, cfg.Tenancy.SeedCompanies)
	router := postgres.NewTenantRouter(pool, registry, provisioner, log, cfg.Tenancy.StatementTimeout)
	tenantUC := usecase.NewTenantUseCase(registry, provisioner, router, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TenantUC:  tenantUC,
		Resolver:  router,
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
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

	// Los handles primero, el pool al final: los stores comparten el pool.
	router.ReleaseAll()

	log.Info().Msg("servidor cerrado")
}
