package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sendhur-traders/gst-invoice/internal/application/billing"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	Editor           *billing.Editor
	InvoiceUC        *billing.InvoiceUseCase
	PDFUC            *billing.PDFUseCase
	CustomerUC       *billing.CustomerCacheUseCase
	TransportationUC *billing.TransportationCacheUseCase
	AssetUC          *billing.AssetUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Editing session
	draft := api.Group("/draft")
	draftHandler := NewDraftHandler(deps.Editor)
	draft.Get("/", draftHandler.Get)
	draft.Delete("/", draftHandler.Reset)
	draft.Post("/items", draftHandler.AddItem)
	draft.Patch("/items/:id", draftHandler.UpdateItem)
	draft.Delete("/items/:id", draftHandler.RemoveItem)
	draft.Put("/taxes", draftHandler.SetTaxRates)
	draft.Put("/round-off", draftHandler.SetRoundOff)
	draft.Get("/round-off/suggestion", draftHandler.SuggestRoundOff)
	draft.Post("/round-off/auto", draftHandler.ApplyAutoRoundOff)
	draft.Put("/customer", draftHandler.SetCustomer)
	draft.Put("/transportation", draftHandler.SetTransportation)
	draft.Put("/invoice", draftHandler.SetInvoiceInfo)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/compute", invoiceHandler.Compute)
	invoices.Post("/generate", invoiceHandler.Generate)
	invoices.Get("/current", invoiceHandler.Current)
	invoices.Get("/current/pdf", invoiceHandler.DownloadPDF)

	// Cached records
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Save)
	customers.Delete("/", customerHandler.Clear)
	customers.Post("/select", customerHandler.Select)

	transportation := api.Group("/transportation")
	transportationHandler := NewTransportationHandler(deps.TransportationUC)
	transportation.Get("/", transportationHandler.List)
	transportation.Post("/", transportationHandler.Save)
	transportation.Delete("/", transportationHandler.Clear)
	transportation.Post("/select", transportationHandler.Select)

	// Signature and logo
	assets := api.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC)
	assets.Get("/:kind", assetHandler.Get)
	assets.Put("/:kind", assetHandler.Put)
	assets.Delete("/:kind", assetHandler.Delete)
}
