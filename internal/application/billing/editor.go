package billing

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sendhur-traders/gst-invoice/internal/application/dto"
	"github.com/sendhur-traders/gst-invoice/internal/domain"
	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
	"github.com/sendhur-traders/gst-invoice/internal/domain/gst"
)

// Draft is the state of the invoice being edited. Totals is always derived from
// Items, Rates and RoundOff.
type Draft struct {
	Items          []entity.LineItem
	Rates          entity.TaxRates
	RoundOff       decimal.Decimal
	Customer       entity.Customer
	Transportation entity.Transportation
	Invoice        entity.InvoiceInfo
	Totals         entity.InvoiceTotals
}

// Response converts the draft into its HTTP body.
func (d Draft) Response() dto.DraftResponse {
	return dto.DraftResponse{
		Items:          d.Items,
		CGSTRate:       d.Rates.CGSTPercent,
		SGSTRate:       d.Rates.SGSTPercent,
		IGSTRate:       d.Rates.IGSTPercent,
		Customer:       d.Customer,
		Transportation: d.Transportation,
		Invoice:        d.Invoice,
		Totals:         d.Totals,
	}
}

func (d Draft) clone() Draft {
	items := make([]entity.LineItem, len(d.Items))
	copy(items, d.Items)
	d.Items = items
	return d
}

// Editor is the single invoice-editing session. Mutations are serialised and
// every one of them re-derives the totals from scratch.
type Editor struct {
	mu       sync.Mutex
	defaults entity.TaxRates
	now      func() time.Time
	draft    Draft
}

// NewEditor starts a session with one zeroed item and the given default rates.
func NewEditor(defaults entity.TaxRates) *Editor {
	e := &Editor{defaults: defaults, now: time.Now}
	e.draft = e.blank()
	return e
}

func (e *Editor) blank() Draft {
	d := Draft{
		Items:    []entity.LineItem{entity.NewLineItem()},
		Rates:    e.defaults,
		RoundOff: decimal.Zero,
		Invoice:  entity.InvoiceInfo{Date: e.now().Format(entity.InvoiceDateLayout)},
	}
	d.Totals = gst.DeriveTotals(d.Items, d.Rates, d.RoundOff)
	return d
}

// recompute must be called with mu held.
func (e *Editor) recompute() Draft {
	e.draft.Totals = gst.DeriveTotals(e.draft.Items, e.draft.Rates, e.draft.RoundOff)
	return e.draft.clone()
}

// Snapshot returns a copy of the current draft.
func (e *Editor) Snapshot() Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.clone()
}

// Reset discards the session and starts a blank one.
func (e *Editor) Reset() Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = e.blank()
	return e.draft.clone()
}

// AddItem appends a zeroed row, optionally pre-filled by patch.
func (e *Editor) AddItem(patch entity.LineItemPatch) Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	item := entity.NewLineItem()
	applyPatch(&item, patch)
	e.draft.Items = append(e.draft.Items, item)
	return e.recompute()
}

// UpdateItem edits one row. Amount is recomputed when weight, quantity or rate change.
func (e *Editor) UpdateItem(id string, patch entity.LineItemPatch) (Draft, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.indexOf(id)
	if i < 0 {
		return Draft{}, domain.ErrNotFound
	}
	applyPatch(&e.draft.Items[i], patch)
	return e.recompute(), nil
}

// RemoveItem deletes one row; the last remaining row cannot be removed.
func (e *Editor) RemoveItem(id string) (Draft, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.indexOf(id)
	if i < 0 {
		return Draft{}, domain.ErrNotFound
	}
	if len(e.draft.Items) <= 1 {
		return Draft{}, domain.ErrLastLineItem
	}
	e.draft.Items = append(e.draft.Items[:i], e.draft.Items[i+1:]...)
	return e.recompute(), nil
}

func (e *Editor) indexOf(id string) int {
	for i := range e.draft.Items {
		if e.draft.Items[i].ID == id {
			return i
		}
	}
	return -1
}

func applyPatch(item *entity.LineItem, p entity.LineItemPatch) {
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.HSNCode != nil {
		item.HSNCode = *p.HSNCode
	}
	if p.Weight != nil {
		item.Weight = *p.Weight
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Rate != nil {
		item.Rate = *p.Rate
	}
	if p.TouchesAmount() {
		gst.RecomputeAmount(item)
	}
}

// SetTaxRates updates the rates present in the request.
func (e *Editor) SetTaxRates(in dto.TaxRatesRequest) Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	if in.CGSTRate != nil {
		e.draft.Rates.CGSTPercent = *in.CGSTRate
	}
	if in.SGSTRate != nil {
		e.draft.Rates.SGSTPercent = *in.SGSTRate
	}
	if in.IGSTRate != nil {
		e.draft.Rates.IGSTPercent = *in.IGSTRate
	}
	return e.recompute()
}

// SetRoundOff sets a manual round off.
func (e *Editor) SetRoundOff(roundOff decimal.Decimal) Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.RoundOff = roundOff
	return e.recompute()
}

// SuggestRoundOff returns the delta that would make the grand total whole, without applying it.
func (e *Editor) SuggestRoundOff() dto.RoundOffSuggestion {
	e.mu.Lock()
	defer e.mu.Unlock()
	t := e.draft.Totals
	delta := gst.ComputeAutoRoundOff(t.Subtotal, t.TotalTax)
	return dto.RoundOffSuggestion{
		RoundOff:   delta,
		GrandTotal: t.Subtotal.Add(t.TotalTax).Add(delta),
	}
}

// ApplyAutoRoundOff replaces the round off with the suggested delta.
func (e *Editor) ApplyAutoRoundOff() Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	t := e.draft.Totals
	e.draft.RoundOff = gst.ComputeAutoRoundOff(t.Subtotal, t.TotalTax)
	return e.recompute()
}

// SetCustomer replaces the receiver details.
func (e *Editor) SetCustomer(c entity.Customer) Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Customer = c
	return e.draft.clone()
}

// SetTransportation replaces the transportation details.
func (e *Editor) SetTransportation(t entity.Transportation) Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Transportation = t
	return e.draft.clone()
}

// SetInvoiceInfo sets number and date. An empty date keeps the current one.
func (e *Editor) SetInvoiceInfo(in dto.InvoiceInfoRequest) Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Invoice.Number = in.Number
	if in.Date != "" {
		e.draft.Invoice.Date = in.Date
	}
	return e.draft.clone()
}
