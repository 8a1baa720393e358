package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sendhur-traders/gst-invoice/internal/application/billing"
	"github.com/sendhur-traders/gst-invoice/internal/application/dto"
)

// InvoiceHandler generates, fetches and renders invoices.
type InvoiceHandler struct {
	invoices *billing.InvoiceUseCase
	pdf      *billing.PDFUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(invoices *billing.InvoiceUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, pdf: pdf}
}

// Compute godoc
// @Summary      Compute line amounts and totals without touching the draft
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ComputeRequest  true  "items, rates and round-off"
// @Success      200   {object}  dto.ComputeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices/compute [post]
func (h *InvoiceHandler) Compute(c *fiber.Ctx) error {
	var in dto.ComputeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(billing.Compute(in))
}

// Generate godoc
// @Summary      Finalize the draft into an invoice
// @Description  Requires customer name, invoice number and a non-zero subtotal.
// @Description  New customer and vehicle records are cached; existing ones are left untouched.
// @Tags         invoices
// @Produce      json
// @Success      201  {object}  entity.InvoiceSnapshot
// @Failure      422  {object}  dto.ErrorResponse  "missing fields"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoices/generate [post]
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	snap, err := h.invoices.Generate(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

// Current godoc
// @Summary      Last generated invoice
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  entity.InvoiceSnapshot
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/current [get]
func (h *InvoiceHandler) Current(c *fiber.Ctx) error {
	snap, err := h.invoices.Current(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(snap)
}

// DownloadPDF godoc
// @Summary      Printable PDF of the last generated invoice
// @Tags         invoices
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/invoices/current/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadPDF(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
