package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/suanlabs/inventario-api/internal/application/kardex"
	"github.com/suanlabs/inventario-api/internal/application/usecase"
)

// Pinger verifica la conexión al almacén (lo satisface *pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	AdjustStock *kardex.AdjustStockUseCase
	KardexUC    *kardex.KardexUseCase
	DB          Pinger
	AppName     string
	Version     string
	Production  bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Salud: round-trip real a la base de datos.
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := deps.DB.Ping(c.UserContext()); err != nil {
			return fail(c, fiber.StatusServiceUnavailable, "Error de conexión a la base de datos", "")
		}
		return success(c, fiber.StatusOK, "API funcionando correctamente", fiber.Map{
			"service": deps.AppName,
			"version": deps.Version,
		})
	})

	// Raíz: nombre del servicio y mapa de endpoints.
	app.Get("/", func(c *fiber.Ctx) error {
		return success(c, fiber.StatusOK, "API del Sistema de Inventario SUAN", fiber.Map{
			"version":       deps.Version,
			"documentation": "/docs",
			"endpoints": fiber.Map{
				"productos": "/api/productos",
				"kardex":    "/api/kardex",
				"health":    "/health",
			},
		})
	})

	api := app.Group("/api")

	productos := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC, deps.AdjustStock, deps.Production)
	productos.Get("/", productHandler.GetAll)
	productos.Get("/codigo/:codigo", productHandler.GetByCode)
	productos.Post("/", productHandler.Create)
	productos.Put("/stock/:codigo", productHandler.AdjustStock)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Delete("/:id", productHandler.Delete)

	kardexGroup := api.Group("/kardex")
	kardexHandler := NewKardexHandler(deps.KardexUC, deps.Production)
	// /stats antes que /:id para que no lo capture el parámetro.
	kardexGroup.Get("/stats", kardexHandler.GetStats)
	kardexGroup.Get("/", kardexHandler.GetAll)
	kardexGroup.Get("/producto/:id_generado", kardexHandler.GetByProduct)
	kardexGroup.Post("/", kardexHandler.Create)
	kardexGroup.Get("/:id", kardexHandler.GetByID)
	kardexGroup.Delete("/:id", kardexHandler.Delete)
}
