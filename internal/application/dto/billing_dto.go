package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
)

// TaxRatesRequest body for PUT /api/draft/taxes. Omitted rates stay unchanged.
type TaxRatesRequest struct {
	CGSTRate *decimal.Decimal `json:"cgstRate,omitempty"`
	SGSTRate *decimal.Decimal `json:"sgstRate,omitempty"`
	IGSTRate *decimal.Decimal `json:"igstRate,omitempty"`
}

// RoundOffRequest body for PUT /api/draft/round-off.
type RoundOffRequest struct {
	RoundOff decimal.Decimal `json:"roundOff"`
}

// RoundOffSuggestion suggested delta; not applied until POST /api/draft/round-off/auto.
type RoundOffSuggestion struct {
	RoundOff   decimal.Decimal `json:"roundOff"`
	GrandTotal decimal.Decimal `json:"grandTotal"` // grand total if the suggestion is applied
}

// InvoiceInfoRequest body for PUT /api/draft/invoice.
type InvoiceInfoRequest struct {
	Number string `json:"number"`
	Date   string `json:"date,omitempty"` // 2006-01-02; empty keeps today
}

// DraftResponse the whole editing session with its derived totals.
type DraftResponse struct {
	Items          []entity.LineItem     `json:"items"`
	CGSTRate       decimal.Decimal       `json:"cgstRate"`
	SGSTRate       decimal.Decimal       `json:"sgstRate"`
	IGSTRate       decimal.Decimal       `json:"igstRate"`
	Customer       entity.Customer       `json:"customer"`
	Transportation entity.Transportation `json:"transportation"`
	Invoice        entity.InvoiceInfo    `json:"invoice"`
	Totals         entity.InvoiceTotals  `json:"totals"`
}

// ComputeItemRequest one row for the stateless compute endpoint.
type ComputeItemRequest struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description,omitempty"`
	Weight      string          `json:"weight"`
	HSNCode     string          `json:"hsnCode,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// ComputeRequest body for POST /api/invoices/compute.
type ComputeRequest struct {
	Items    []ComputeItemRequest `json:"items"`
	CGSTRate decimal.Decimal      `json:"cgstRate"`
	SGSTRate decimal.Decimal      `json:"sgstRate"`
	IGSTRate decimal.Decimal      `json:"igstRate"`
	RoundOff decimal.Decimal      `json:"roundOff"`
}

// ComputeResponse line amounts and totals for a ComputeRequest.
type ComputeResponse struct {
	Items  []entity.LineItem    `json:"items"`
	Totals entity.InvoiceTotals `json:"totals"`
}

// SelectCustomerRequest body for POST /api/customers/select.
type SelectCustomerRequest struct {
	Name string `json:"name"`
}

// SelectTransportationRequest body for POST /api/transportation/select.
type SelectTransportationRequest struct {
	VehicleNo string `json:"vehicleNo"`
}

// AssetResponse an uploaded image as a data URI.
type AssetResponse struct {
	Kind    string `json:"kind"`
	DataURI string `json:"dataUri"`
}
