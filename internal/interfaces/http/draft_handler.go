package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sendhur-traders/gst-invoice/internal/application/billing"
	"github.com/sendhur-traders/gst-invoice/internal/application/dto"
	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
)

// DraftHandler exposes the invoice editing session.
type DraftHandler struct {
	editor *billing.Editor
}

// NewDraftHandler builds the handler.
func NewDraftHandler(editor *billing.Editor) *DraftHandler {
	return &DraftHandler{editor: editor}
}

// Get godoc
// @Summary      Current draft
// @Description  Items, tax rates, customer, transportation, invoice info and derived totals.
// @Tags         draft
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/draft [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.editor.Snapshot().Response())
}

// Reset godoc
// @Summary      Start a new invoice
// @Tags         draft
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/draft [delete]
func (h *DraftHandler) Reset(c *fiber.Ctx) error {
	return c.JSON(h.editor.Reset().Response())
}

// AddItem godoc
// @Summary      Append a line item
// @Description  The body is optional; omitted fields start at their zero values.
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        body  body  entity.LineItemPatch  false  "initial values"
// @Success      201   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draft/items [post]
func (h *DraftHandler) AddItem(c *fiber.Ctx) error {
	var in entity.LineItemPatch
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(h.editor.AddItem(in).Response())
}

// UpdateItem godoc
// @Summary      Edit a line item
// @Description  Changing weight, quantity or rate recomputes the amount and every total.
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "item id"
// @Param        body  body  entity.LineItemPatch  true  "fields to change"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/draft/items/{id} [patch]
func (h *DraftHandler) UpdateItem(c *fiber.Ctx) error {
	var in entity.LineItemPatch
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	d, err := h.editor.UpdateItem(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(d.Response())
}

// RemoveItem godoc
// @Summary      Remove a line item
// @Tags         draft
// @Produce      json
// @Param        id   path  string  true  "item id"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "the last item cannot be removed"
// @Router       /api/draft/items/{id} [delete]
func (h *DraftHandler) RemoveItem(c *fiber.Ctx) error {
	d, err := h.editor.RemoveItem(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(d.Response())
}

// SetTaxRates godoc
// @Summary      Change tax rates
// @Description  Rates are percentages. Omitted rates keep their current value.
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TaxRatesRequest  true  "cgstRate, sgstRate, igstRate"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draft/taxes [put]
func (h *DraftHandler) SetTaxRates(c *fiber.Ctx) error {
	var in dto.TaxRatesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.editor.SetTaxRates(in).Response())
}

// SetRoundOff godoc
// @Summary      Set the round-off adjustment manually
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RoundOffRequest  true  "signed adjustment in rupees"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draft/round-off [put]
func (h *DraftHandler) SetRoundOff(c *fiber.Ctx) error {
	var in dto.RoundOffRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.editor.SetRoundOff(in.RoundOff).Response())
}

// SuggestRoundOff godoc
// @Summary      Round-off that brings the grand total to the nearest rupee
// @Description  Nothing is applied; use POST /api/draft/round-off/auto for that.
// @Tags         draft
// @Produce      json
// @Success      200  {object}  dto.RoundOffSuggestion
// @Router       /api/draft/round-off/suggestion [get]
func (h *DraftHandler) SuggestRoundOff(c *fiber.Ctx) error {
	return c.JSON(h.editor.SuggestRoundOff())
}

// ApplyAutoRoundOff godoc
// @Summary      Apply the suggested round-off
// @Tags         draft
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/draft/round-off/auto [post]
func (h *DraftHandler) ApplyAutoRoundOff(c *fiber.Ctx) error {
	return c.JSON(h.editor.ApplyAutoRoundOff().Response())
}

// SetCustomer godoc
// @Summary      Fill the customer block
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Customer  true  "customer details"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draft/customer [put]
func (h *DraftHandler) SetCustomer(c *fiber.Ctx) error {
	var in entity.Customer
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.editor.SetCustomer(in).Response())
}

// SetTransportation godoc
// @Summary      Fill the transportation block
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Transportation  true  "transportation details"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draft/transportation [put]
func (h *DraftHandler) SetTransportation(c *fiber.Ctx) error {
	var in entity.Transportation
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.editor.SetTransportation(in).Response())
}

// SetInvoiceInfo godoc
// @Summary      Set invoice number and date
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceInfoRequest  true  "number and date (2006-01-02)"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draft/invoice [put]
func (h *DraftHandler) SetInvoiceInfo(c *fiber.Ctx) error {
	var in dto.InvoiceInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.editor.SetInvoiceInfo(in).Response())
}
