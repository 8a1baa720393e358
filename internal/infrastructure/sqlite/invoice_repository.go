package sqlite

import (
	"context"

	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
	"github.com/sendhur-traders/gst-invoice/internal/domain/repository"
)

var _ repository.InvoiceSnapshotRepository = (*InvoiceSnapshotRepo)(nil)

// InvoiceSnapshotRepo keeps the last generated invoice under KeyInvoiceData.
type InvoiceSnapshotRepo struct {
	kv repository.KeyValueStore
}

// NewInvoiceSnapshotRepository builds the adapter over any key-value store.
func NewInvoiceSnapshotRepository(kv repository.KeyValueStore) *InvoiceSnapshotRepo {
	return &InvoiceSnapshotRepo{kv: kv}
}

// Load returns nil when no invoice was generated yet.
func (r *InvoiceSnapshotRepo) Load(ctx context.Context) (*entity.InvoiceSnapshot, error) {
	var snap entity.InvoiceSnapshot
	found, err := loadJSON(ctx, r.kv, repository.KeyInvoiceData, &snap)
	if err != nil || !found {
		return nil, err
	}
	return &snap, nil
}

func (r *InvoiceSnapshotRepo) Save(ctx context.Context, snapshot *entity.InvoiceSnapshot) error {
	return saveJSON(ctx, r.kv, repository.KeyInvoiceData, snapshot)
}

func (r *InvoiceSnapshotRepo) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, repository.KeyInvoiceData)
}
