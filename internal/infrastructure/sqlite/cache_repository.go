package sqlite

import (
	"context"

	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
	"github.com/sendhur-traders/gst-invoice/internal/domain/repository"
)

var (
	_ repository.CustomerCacheRepository       = (*CustomerCacheRepo)(nil)
	_ repository.TransportationCacheRepository = (*TransportationCacheRepo)(nil)
)

// CustomerCacheRepo keeps the customer list under KeyCachedCustomers.
type CustomerCacheRepo struct {
	kv repository.KeyValueStore
}

// NewCustomerCacheRepository builds the adapter over any key-value store.
func NewCustomerCacheRepository(kv repository.KeyValueStore) *CustomerCacheRepo {
	return &CustomerCacheRepo{kv: kv}
}

// Load returns the cached customers (empty when nothing was saved).
func (r *CustomerCacheRepo) Load(ctx context.Context) ([]entity.Customer, error) {
	list := []entity.Customer{}
	if _, err := loadJSON(ctx, r.kv, repository.KeyCachedCustomers, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Save replaces the whole collection.
func (r *CustomerCacheRepo) Save(ctx context.Context, customers []entity.Customer) error {
	if customers == nil {
		customers = []entity.Customer{}
	}
	return saveJSON(ctx, r.kv, repository.KeyCachedCustomers, customers)
}

// Clear drops the collection.
func (r *CustomerCacheRepo) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, repository.KeyCachedCustomers)
}

// TransportationCacheRepo keeps the vehicle list under KeyCachedTransportation.
type TransportationCacheRepo struct {
	kv repository.KeyValueStore
}

// NewTransportationCacheRepository builds the adapter over any key-value store.
func NewTransportationCacheRepository(kv repository.KeyValueStore) *TransportationCacheRepo {
	return &TransportationCacheRepo{kv: kv}
}

func (r *TransportationCacheRepo) Load(ctx context.Context) ([]entity.Transportation, error) {
	list := []entity.Transportation{}
	if _, err := loadJSON(ctx, r.kv, repository.KeyCachedTransportation, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *TransportationCacheRepo) Save(ctx context.Context, records []entity.Transportation) error {
	if records == nil {
		records = []entity.Transportation{}
	}
	return saveJSON(ctx, r.kv, repository.KeyCachedTransportation, records)
}

func (r *TransportationCacheRepo) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, repository.KeyCachedTransportation)
}
