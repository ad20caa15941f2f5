package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	ReportUC   *usecase.ReportUseCase
	AppName    string
	Version    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	validate := NewValidator()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "success",
			"message":   deps.AppName + " is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Metadatos del servicio en la raíz
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":    deps.AppName,
			"version": deps.Version,
			"endpoints": fiber.Map{
				"products":   "/api/v1/products",
				"categories": "/api/v1/categories",
				"reports":    "/api/v1/reports",
				"health":     "/health",
			},
		})
	})

	api := app.Group("/api/v1")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, validate)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/inventory", productHandler.UpdateInventory)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, validate)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Reports (solo lectura)
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/inventory-summary", reportHandler.InventorySummary)
	reports.Get("/price-range", reportHandler.PriceRange)
}
