package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/categories-api/internal/application/category"
	"github.com/jhoicas/categories-api/pkg/logger"
	"github.com/jhoicas/categories-api/web"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	APIVersion  string
	CategorySvc *category.Service
	Logger      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	version := deps.APIVersion
	if version == "" {
		version = "v1"
	}

	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.Send(web.IndexHTML)
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api/"+version, RequestLogger(deps.Logger))

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategorySvc, deps.Logger)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Delete("/:id", categoryHandler.Delete)
}
