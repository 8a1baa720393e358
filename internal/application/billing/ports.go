package billing

import (
	"context"

	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
)

// Image is a decoded uploaded asset.
type Image struct {
	ContentType string // image/png, image/jpeg, ...
	Data        []byte
}

// InvoiceAssets optional images printed on the invoice. Nil means not uploaded.
type InvoiceAssets struct {
	Logo      *Image
	Signature *Image
}

// InvoicePDFGenerator renders a finalized snapshot. Implementations must print the
// snapshot's numbers as they are and never recompute totals.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, snapshot *entity.InvoiceSnapshot, assets InvoiceAssets) ([]byte, error)
}
