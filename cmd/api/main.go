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

	"github.com/sendhur-traders/gst-invoice/internal/application/billing"
	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
	infrapdf "github.com/sendhur-traders/gst-invoice/internal/infrastructure/pdf"
	"github.com/sendhur-traders/gst-invoice/internal/infrastructure/sqlite"
	httpRouter "github.com/sendhur-traders/gst-invoice/internal/interfaces/http"
	"github.com/sendhur-traders/gst-invoice/pkg/config"
	"github.com/sendhur-traders/gst-invoice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Path).
		Msg("starting application")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("open local store")
	}
	defer db.Close()

	store := sqlite.NewStore(db)
	customerRepo := sqlite.NewCustomerCacheRepository(store)
	transportRepo := sqlite.NewTransportationCacheRepository(store)
	invoiceRepo := sqlite.NewInvoiceSnapshotRepository(store)
	assetRepo := sqlite.NewAssetRepository(store)

	editor := billing.NewEditor(entity.TaxRates{
		CGSTPercent: cfg.Invoice.CGSTPercent,
		SGSTPercent: cfg.Invoice.SGSTPercent,
		IGSTPercent: cfg.Invoice.IGSTPercent,
	})
	company := entity.Company{
		Name:      cfg.Company.Name,
		Tagline:   cfg.Company.Tagline,
		Address:   cfg.Company.Address,
		GSTIN:     cfg.Company.GSTIN,
		State:     cfg.Company.State,
		StateCode: cfg.Company.StateCode,
		Phone:     cfg.Company.Phone,
	}

	invoiceUC := billing.NewInvoiceUseCase(editor, company, customerRepo, transportRepo, invoiceRepo, log)
	assetUC := billing.NewAssetUseCase(assetRepo, log)
	customerUC := billing.NewCustomerCacheUseCase(customerRepo, editor, log)
	transportUC := billing.NewTransportationCacheUseCase(transportRepo, editor, log)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(invoiceUC, assetUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://127.0.0.1:<port>/docs
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    cfg.App.Name + " API",
		}))
	} else {
		log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger file not found, /docs disabled")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Editor:           editor,
		InvoiceUC:        invoiceUC,
		PDFUC:            pdfUC,
		CustomerUC:       customerUC,
		TransportationUC: transportUC,
		AssetUC:          assetUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
