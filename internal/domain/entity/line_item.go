package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultWeight is the weight of a freshly created line item.
const DefaultWeight = "0"

// LineItem is one row of the invoice table.
// Amount is derived from Weight, Quantity and Rate and is never edited directly.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Weight      string          `json:"weight"` // free text as typed; parsed leniently
	HSNCode     string          `json:"hsnCode"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"` // rupees per unit
	Amount      decimal.Decimal `json:"amount"`
}

// NewLineItem returns the zeroed template used when a row is added.
func NewLineItem() LineItem {
	return LineItem{
		ID:       uuid.New().String(),
		Weight:   DefaultWeight,
		Quantity: decimal.Zero,
		Rate:     decimal.Zero,
		Amount:   decimal.Zero,
	}
}

// LineItemPatch carries the fields of a single row edit; nil means unchanged.
type LineItemPatch struct {
	Description *string          `json:"description,omitempty"`
	Weight      *string          `json:"weight,omitempty"`
	HSNCode     *string          `json:"hsnCode,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
}

// TouchesAmount reports whether the patch changes an input of Amount.
func (p LineItemPatch) TouchesAmount() bool {
	return p.Weight != nil || p.Quantity != nil || p.Rate != nil
}
