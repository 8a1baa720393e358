package entity

import "github.com/shopspring/decimal"

// TaxRates are the GST percentages applied to the subtotal.
// The three rates are independent; nothing forces CGST+SGST and IGST to be exclusive.
type TaxRates struct {
	CGSTPercent decimal.Decimal `json:"cgstRate"`
	SGSTPercent decimal.Decimal `json:"sgstRate"`
	IGSTPercent decimal.Decimal `json:"igstRate"`
}

// TaxBreakdown is the result of applying TaxRates to a subtotal.
type TaxBreakdown struct {
	CGSTAmount decimal.Decimal `json:"cgstAmount"`
	SGSTAmount decimal.Decimal `json:"sgstAmount"`
	IGSTAmount decimal.Decimal `json:"igstAmount"`
	TotalTax   decimal.Decimal `json:"totalTax"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// InvoiceTotals holds every value derived from items, rates and round off.
type InvoiceTotals struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	CGSTAmount    decimal.Decimal `json:"cgstAmount"`
	SGSTAmount    decimal.Decimal `json:"sgstAmount"`
	IGSTAmount    decimal.Decimal `json:"igstAmount"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	RoundOff      decimal.Decimal `json:"roundOff"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	AmountInWords string          `json:"amountInWords"`
}
