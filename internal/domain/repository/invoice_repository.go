package repository

import (
	"context"

	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
)

// InvoiceSnapshotRepository keeps the last generated invoice.
// Load returns (nil, nil) when nothing was generated yet.
type InvoiceSnapshotRepository interface {
	Load(ctx context.Context) (*entity.InvoiceSnapshot, error)
	Save(ctx context.Context, snapshot *entity.InvoiceSnapshot) error
	Clear(ctx context.Context) error
}
