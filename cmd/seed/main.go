// seed aplica las migraciones y carga el árbol de categorías de ejemplo
// (category A/B/C y sus subcategorías). No hace nada si la categoría 1 ya existe.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL, DB_HOST, ...).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/categories-api/internal/application/category"
	"github.com/jhoicas/categories-api/internal/infrastructure/postgres"
	"github.com/jhoicas/categories-api/pkg/config"
	"github.com/jhoicas/categories-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.DB.Driver != "postgres" {
		fmt.Fprintln(os.Stderr, "seed solo tiene sentido con DB_DRIVER=postgres")
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	seeded, err := category.Seed(ctx, postgres.NewTxRunner(pool))
	if err != nil {
		log.Fatal().Err(err).Msg("carga de datos de ejemplo")
	}
	if !seeded {
		log.Info().Msg("la base ya tenía datos, no se insertó nada")
		return
	}
	log.Info().Msg("datos de ejemplo cargados")
}
