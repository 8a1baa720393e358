package billing

import (
	"context"
	"fmt"

	"github.com/sendhur-traders/gst-invoice/internal/domain"
	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
	"github.com/sendhur-traders/gst-invoice/internal/domain/repository"
	"github.com/sendhur-traders/gst-invoice/pkg/logger"
)

type cacheRecord interface {
	CacheKey() string
	HasKey() bool
}

// upsert replaces the record with the same key or appends it. It returns a new slice.
func upsert[T cacheRecord](list []T, rec T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	for i := range out {
		if out[i].CacheKey() == rec.CacheKey() {
			out[i] = rec
			return out
		}
	}
	return append(out, rec)
}

// appendIfAbsent adds rec only when no record has its key. It reports whether it added.
func appendIfAbsent[T cacheRecord](list []T, rec T) ([]T, bool) {
	for i := range list {
		if list[i].CacheKey() == rec.CacheKey() {
			return list, false
		}
	}
	return append(list, rec), true
}

func findByKey[T cacheRecord](list []T, key string) (T, bool) {
	for _, r := range list {
		if r.CacheKey() == key {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// CustomerCacheUseCase the address book of previously billed customers.
// Every save reads the whole list and writes it back (last write wins).
type CustomerCacheUseCase struct {
	repo   repository.CustomerCacheRepository
	editor *Editor
	log    *logger.Logger
}

// NewCustomerCacheUseCase builds the use case.
func NewCustomerCacheUseCase(repo repository.CustomerCacheRepository, editor *Editor, log *logger.Logger) *CustomerCacheUseCase {
	return &CustomerCacheUseCase{repo: repo, editor: editor, log: log.Component("customer-cache")}
}

// Save stores c, overwriting the cached customer with the same name.
func (uc *CustomerCacheUseCase) Save(ctx context.Context, c entity.Customer) ([]entity.Customer, error) {
	if !c.HasKey() {
		ve := &domain.ValidationError{}
		ve.Add("customer.name", "enter at least the customer name before saving")
		return nil, ve
	}
	list, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	list = upsert(list, c)
	if err := uc.repo.Save(ctx, list); err != nil {
		return nil, fmt.Errorf("save customers: %w", err)
	}
	uc.log.Info().Str("customer", c.Name).Int("cached", len(list)).Msg("customer cached")
	return list, nil
}

// List returns every cached customer.
func (uc *CustomerCacheUseCase) List(ctx context.Context) ([]entity.Customer, error) {
	return uc.repo.Load(ctx)
}

// Clear drops the whole address book.
func (uc *CustomerCacheUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear customers: %w", err)
	}
	uc.log.Info().Msg("customer cache cleared")
	return nil
}

// Select copies the cached customer into the editing session.
func (uc *CustomerCacheUseCase) Select(ctx context.Context, name string) (Draft, error) {
	list, err := uc.repo.Load(ctx)
	if err != nil {
		return Draft{}, fmt.Errorf("load customers: %w", err)
	}
	c, ok := findByKey(list, name)
	if !ok {
		return Draft{}, domain.ErrNotFound
	}
	return uc.editor.SetCustomer(c), nil
}

// TransportationCacheUseCase the list of previously used vehicles, keyed by vehicle number.
type TransportationCacheUseCase struct {
	repo   repository.TransportationCacheRepository
	editor *Editor
	log    *logger.Logger
}

// NewTransportationCacheUseCase builds the use case.
func NewTransportationCacheUseCase(repo repository.TransportationCacheRepository, editor *Editor, log *logger.Logger) *TransportationCacheUseCase {
	return &TransportationCacheUseCase{repo: repo, editor: editor, log: log.Component("transport-cache")}
}

// Save stores t, overwriting the cached record with the same vehicle number.
func (uc *TransportationCacheUseCase) Save(ctx context.Context, t entity.Transportation) ([]entity.Transportation, error) {
	if !t.HasKey() {
		ve := &domain.ValidationError{}
		ve.Add("transportation.vehicleNo", "enter at least the vehicle number before saving")
		return nil, ve
	}
	list, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transportation: %w", err)
	}
	list = upsert(list, t)
	if err := uc.repo.Save(ctx, list); err != nil {
		return nil, fmt.Errorf("save transportation: %w", err)
	}
	uc.log.Info().Str("vehicle", t.VehicleNo).Int("cached", len(list)).Msg("transportation cached")
	return list, nil
}

func (uc *TransportationCacheUseCase) List(ctx context.Context) ([]entity.Transportation, error) {
	return uc.repo.Load(ctx)
}

func (uc *TransportationCacheUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear transportation: %w", err)
	}
	uc.log.Info().Msg("transportation cache cleared")
	return nil
}

// Select copies the cached vehicle into the editing session.
func (uc *TransportationCacheUseCase) Select(ctx context.Context, vehicleNo string) (Draft, error) {
	list, err := uc.repo.Load(ctx)
	if err != nil {
		return Draft{}, fmt.Errorf("load transportation: %w", err)
	}
	t, ok := findByKey(list, vehicleNo)
	if !ok {
		return Draft{}, domain.ErrNotFound
	}
	return uc.editor.SetTransportation(t), nil
}
