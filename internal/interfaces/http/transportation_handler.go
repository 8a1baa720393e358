package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sendhur-traders/gst-invoice/internal/application/billing"
	"github.com/sendhur-traders/gst-invoice/internal/application/dto"
	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
)

// TransportationHandler manages the cached vehicle list.
type TransportationHandler struct {
	uc *billing.TransportationCacheUseCase
}

// NewTransportationHandler builds the handler.
func NewTransportationHandler(uc *billing.TransportationCacheUseCase) *TransportationHandler {
	return &TransportationHandler{uc: uc}
}

// List GET /api/transportation
// @Summary      Cached transportation records
// @Tags         transportation
// @Produce      json
// @Success      200  {array}   entity.Transportation
// @Router       /api/transportation [get]
func (h *TransportationHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Save POST /api/transportation
// @Summary      Save a vehicle, replacing the record with the same vehicle number
// @Tags         transportation
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Transportation  true  "transportation details"
// @Success      200   {array}   entity.Transportation
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/transportation [post]
func (h *TransportationHandler) Save(c *fiber.Ctx) error {
	var in entity.Transportation
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	list, err := h.uc.Save(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Clear DELETE /api/transportation
func (h *TransportationHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cached transportation cleared"})
}

// Select POST /api/transportation/select
// @Summary      Copy a cached vehicle into the draft
// @Tags         transportation
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectTransportationRequest  true  "vehicle number"
// @Success      200   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transportation/select [post]
func (h *TransportationHandler) Select(c *fiber.Ctx) error {
	var in dto.SelectTransportationRequest
	if err := c.BodyParser(&in); err != nil || strings.TrimSpace(in.VehicleNo) == "" {
		return badBody(c)
	}
	d, err := h.uc.Select(c.Context(), in.VehicleNo)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(d.Response())
}
