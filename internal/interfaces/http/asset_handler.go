package http

import (
	"io"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sendhur-traders/gst-invoice/internal/application/billing"
	"github.com/sendhur-traders/gst-invoice/internal/application/dto"
)

// AssetHandler uploads and serves the signature image and company logo.
type AssetHandler struct {
	uc *billing.AssetUseCase
}

// NewAssetHandler builds the handler.
func NewAssetHandler(uc *billing.AssetUseCase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

// Get godoc
// @Summary      Stored image as a data URI
// @Tags         assets
// @Produce      json
// @Param        kind  path  string  true  "signature | logo"
// @Success      200   {object}  dto.AssetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/{kind} [get]
func (h *AssetHandler) Get(c *fiber.Ctx) error {
	kind := c.Params("kind")
	uri, err := h.uc.Get(c.Context(), kind)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AssetResponse{Kind: kind, DataURI: uri})
}

// Put godoc
// @Summary      Upload an image
// @Description  Multipart upload in field "file". Only image/* content is accepted.
// @Tags         assets
// @Accept       multipart/form-data
// @Produce      json
// @Param        kind  path      string  true  "signature | logo"
// @Param        file  formData  file    true  "image file"
// @Success      200   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/{kind} [put]
func (h *AssetHandler) Put(c *fiber.Ctx) error {
	kind := c.Params("kind")
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: `multipart field "file" is required`,
		})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, err)
	}

	contentType := fh.Header.Get(fiber.HeaderContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = nethttp.DetectContentType(data)
	}

	uri, err := h.uc.Put(c.Context(), kind, contentType, data)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AssetResponse{Kind: kind, DataURI: uri})
}

// Delete godoc
// @Summary      Remove an image
// @Tags         assets
// @Produce      json
// @Param        kind  path  string  true  "signature | logo"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/{kind} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if err := h.uc.Delete(c.Context(), kind); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: kind + " removed"})
}
