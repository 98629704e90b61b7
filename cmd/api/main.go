package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/suanlabs/inventario-api/internal/application/kardex"
	"github.com/suanlabs/inventario-api/internal/application/usecase"
	"github.com/suanlabs/inventario-api/internal/infrastructure/postgres"
	"github.com/suanlabs/inventario-api/internal/interfaces/http"
	"github.com/suanlabs/inventario-api/internal/migration"
	"github.com/suanlabs/inventario-api/pkg/config"
	"github.com/suanlabs/inventario-api/pkg/logger"
)

const version = "1.0.0"

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

	// Migraciones sobre un handle database/sql independiente del pool.
	migrateDB, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión para migraciones")
	}
	if err := migration.Run(migrateDB); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	_ = migrateDB.Close()
	log.Info().Msg("esquema al día")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	adjustStockUC := kardex.NewAdjustStockUseCase(txRunner)
	kardexUC := kardex.NewKardexUseCase(movementRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(http.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowCredentials: cfg.CORS.Origins != "*",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.Max,
		Expiration: cfg.RateLimit.Window,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Demasiadas solicitudes desde esta IP, intenta de nuevo más tarde.",
				"error":   "Rate limit exceeded",
			})
		},
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario SUAN API",
	}))

	http.Router(app, http.RouterDeps{
		ProductUC:   productUC,
		AdjustStock: adjustStockUC,
		KardexUC:    kardexUC,
		DB:          pool,
		AppName:     cfg.App.Name,
		Version:     version,
		Production:  cfg.App.IsProduction(),
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
