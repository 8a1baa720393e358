package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendhur-traders/gst-invoice/internal/application/dto"
	"github.com/sendhur-traders/gst-invoice/internal/domain"
	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
	"github.com/sendhur-traders/gst-invoice/internal/domain/gst"
	"github.com/sendhur-traders/gst-invoice/internal/domain/repository"
	"github.com/sendhur-traders/gst-invoice/pkg/logger"
)

// InvoiceUseCase finalizes the editing session into an InvoiceSnapshot.
type InvoiceUseCase struct {
	editor     *Editor
	company    entity.Company
	customers  repository.CustomerCacheRepository
	transports repository.TransportationCacheRepository
	invoices   repository.InvoiceSnapshotRepository
	log        *logger.Logger
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(
	editor *Editor,
	company entity.Company,
	customers repository.CustomerCacheRepository,
	transports repository.TransportationCacheRepository,
	invoices repository.InvoiceSnapshotRepository,
	log *logger.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		editor:     editor,
		company:    company,
		customers:  customers,
		transports: transports,
		invoices:   invoices,
		log:        log.Component("invoice"),
	}
}

// ValidateForGeneration runs the presence checks required before an invoice can be
// finalized and reports every failing field at once.
func ValidateForGeneration(d Draft) error {
	ve := &domain.ValidationError{}
	if strings.TrimSpace(d.Customer.Name) == "" {
		ve.Add("customer.name", "enter customer name")
	}
	if strings.TrimSpace(d.Invoice.Number) == "" {
		ve.Add("invoice.number", "enter invoice number")
	}
	if len(d.Items) == 0 || d.Totals.Subtotal.IsZero() {
		ve.Add("items", "add at least one item with quantity and rate")
	}
	return ve.OrNil()
}

// Generate validates the current draft, caches unseen customer and vehicle
// records, and stores the snapshot as the current invoice.
func (uc *InvoiceUseCase) Generate(ctx context.Context) (*entity.InvoiceSnapshot, error) {
	draft := uc.editor.Snapshot()
	if err := ValidateForGeneration(draft); err != nil {
		return nil, err
	}

	// generation never overwrites a cached record, it only adds new ones
	if draft.Customer.HasKey() {
		list, err := uc.customers.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load customers: %w", err)
		}
		if list, added := appendIfAbsent(list, draft.Customer); added {
			if err := uc.customers.Save(ctx, list); err != nil {
				return nil, fmt.Errorf("save customers: %w", err)
			}
		}
	}
	if draft.Transportation.HasKey() {
		list, err := uc.transports.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load transportation: %w", err)
		}
		if list, added := appendIfAbsent(list, draft.Transportation); added {
			if err := uc.transports.Save(ctx, list); err != nil {
				return nil, fmt.Errorf("save transportation: %w", err)
			}
		}
	}

	snap := entity.NewInvoiceSnapshot(
		uc.company, draft.Customer, draft.Transportation, draft.Invoice,
		draft.Items, draft.Rates, draft.Totals,
	)
	if err := uc.invoices.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("save invoice: %w", err)
	}

	uc.log.Info().
		Str("invoice", snap.InvoiceNumber).
		Str("customer", snap.CustomerName).
		Int("items", len(snap.Items)).
		Str("grand_total", snap.GrandTotal.StringFixed(2)).
		Msg("invoice generated")
	return snap, nil
}

// Current returns the last generated invoice.
func (uc *InvoiceUseCase) Current(ctx context.Context) (*entity.InvoiceSnapshot, error) {
	snap, err := uc.invoices.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load invoice: %w", err)
	}
	if snap == nil {
		return nil, domain.ErrNotFound
	}
	return snap, nil
}

// Compute is the stateless path: line amounts and totals for arbitrary input.
func Compute(in dto.ComputeRequest) dto.ComputeResponse {
	items := make([]entity.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		item := entity.LineItem{
			ID:          it.ID,
			Description: it.Description,
			Weight:      it.Weight,
			HSNCode:     it.HSNCode,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
		}
		gst.RecomputeAmount(&item)
		items = append(items, item)
	}
	rates := entity.TaxRates{CGSTPercent: in.CGSTRate, SGSTPercent: in.SGSTRate, IGSTPercent: in.IGSTRate}
	return dto.ComputeResponse{
		Items:  items,
		Totals: gst.DeriveTotals(items, rates, in.RoundOff),
	}
}
