package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	inboundOrderUC := inventory.NewInboundOrderUseCase(employeeRepo, companyRepo, productRepo, stockRepo)
	manifestUC := inventory.NewManifestUseCase(txRunner, productRepo)
	outboundOrderUC := inventory.NewOutboundOrderUseCase(txRunner, productRepo)
	stockQueryUC := inventory.NewStockQueryUseCase(productRepo, stockRepo)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		InboundOrderUC:  inboundOrderUC,
		ManifestUC:      manifestUC,
		OutboundOrderUC: outboundOrderUC,
		StockQueryUC:    stockQueryUC,
		ProductUC:       productUC,
		CompanyUC:       companyUC,
		EmployeeUC:      employeeUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("API escuchando")

	// Apagado ordenado: cerrar el servidor antes de soltar el pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("apagando aplicación")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
