package repository

import (
	"context"

	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
)

// CustomerCacheRepository stores the whole customer address book at once.
// Load on an empty store returns an empty slice.
type CustomerCacheRepository interface {
	Load(ctx context.Context) ([]entity.Customer, error)
	Save(ctx context.Context, customers []entity.Customer) error
	Clear(ctx context.Context) error
}

// TransportationCacheRepository stores the whole list of known vehicles at once.
type TransportationCacheRepository interface {
	Load(ctx context.Context) ([]entity.Transportation, error)
	Save(ctx context.Context, records []entity.Transportation) error
	Clear(ctx context.Context) error
}
