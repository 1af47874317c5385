package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/categories-api/docs"
	"github.com/jhoicas/categories-api/internal/application/category"
	"github.com/jhoicas/categories-api/internal/infrastructure/memory"
	"github.com/jhoicas/categories-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/categories-api/internal/interfaces/http"
	"github.com/jhoicas/categories-api/pkg/config"
	"github.com/jhoicas/categories-api/pkg/logger"
)

// @title        categories
// @version      v1
// @description  API REST para un árbol de categorías.
// @BasePath     /
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
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var uow category.UnitOfWork
	switch cfg.DB.Driver {
	case "memory":
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		uow = memory.NewStore()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		uow = postgres.NewTxRunner(pool)
	}

	if cfg.Seed.DummyData {
		seeded, err := category.Seed(ctx, uow)
		if err != nil {
			log.Fatal().Err(err).Msg("carga de datos de ejemplo")
		}
		log.Info().Bool("seeded", seeded).Msg("datos de ejemplo")
	}

	categorySvc := category.NewService(uow)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.BasePath = "/"
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "categories API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		APIVersion:  cfg.App.APIVersion,
		CategorySvc: categorySvc,
		Logger:      log,
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
