package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sendhur-traders/gst-invoice/internal/application/billing"
	"github.com/sendhur-traders/gst-invoice/internal/application/dto"
	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
)

// CustomerHandler manages the cached customer list.
type CustomerHandler struct {
	uc *billing.CustomerCacheUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *billing.CustomerCacheUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List GET /api/customers
// @Summary      Cached customers
// @Tags         customers
// @Produce      json
// @Success      200  {array}   entity.Customer
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Save POST /api/customers
// @Summary      Save a customer, replacing the one with the same name
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Customer  true  "customer details"
// @Success      200   {array}   entity.Customer
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Save(c *fiber.Ctx) error {
	var in entity.Customer
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	list, err := h.uc.Save(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Clear DELETE /api/customers
// @Summary      Clear cached customers
// @Tags         customers
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/customers [delete]
func (h *CustomerHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cached customers cleared"})
}

// Select POST /api/customers/select
// @Summary      Copy a cached customer into the draft
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectCustomerRequest  true  "customer name"
// @Success      200   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/select [post]
func (h *CustomerHandler) Select(c *fiber.Ctx) error {
	var in dto.SelectCustomerRequest
	if err := c.BodyParser(&in); err != nil || strings.TrimSpace(in.Name) == "" {
		return badBody(c)
	}
	d, err := h.uc.Select(c.Context(), in.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(d.Response())
}
