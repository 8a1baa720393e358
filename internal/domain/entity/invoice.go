package entity

import "github.com/shopspring/decimal"

// InvoiceDateLayout is the layout of InvoiceInfo.Date.
const InvoiceDateLayout = "2006-01-02"

// InvoiceInfo identifies the invoice document.
type InvoiceInfo struct {
	Number string `json:"number"`
	Date   string `json:"date"`
}

// InvoiceSnapshot is the finalized, flat invoice handed to renderers.
// Every numeric field is final: renderers print them as-is and never recompute.
type InvoiceSnapshot struct {
	CompanyName      string `json:"companyName"`
	CompanyTagline   string `json:"companyTagline"`
	CompanyAddress   string `json:"companyAddress"`
	CompanyGSTIN     string `json:"companyGstin"`
	CompanyState     string `json:"companyState"`
	CompanyStateCode string `json:"companyStateCode"`
	CompanyPhone     string `json:"companyPhone"`

	CustomerName      string `json:"customerName"`
	CustomerAddress   string `json:"customerAddress"`
	CustomerGSTIN     string `json:"customerGstin"`
	CustomerState     string `json:"customerState"`
	CustomerStateCode string `json:"customerStateCode"`

	EWayBill                string `json:"customerEwayBill"`
	TransportationMode      string `json:"customerTransportationMode"`
	VehicleNo               string `json:"customerVehicleNo"`
	TransportationState     string `json:"customerTransportationState"`
	TransportationStateCode string `json:"customerTransportationStateCode"`

	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceDate   string `json:"invoiceDate"`

	Items []LineItem `json:"items"`

	CGSTRate      decimal.Decimal `json:"cgstRate"`
	SGSTRate      decimal.Decimal `json:"sgstRate"`
	IGSTRate      decimal.Decimal `json:"igstRate"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	CGSTAmount    decimal.Decimal `json:"cgstAmount"`
	SGSTAmount    decimal.Decimal `json:"sgstAmount"`
	IGSTAmount    decimal.Decimal `json:"igstAmount"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	RoundOff      decimal.Decimal `json:"roundOff"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	AmountInWords string          `json:"amountInWords"`
}

// NewInvoiceSnapshot flattens the editing state into the renderer contract.
func NewInvoiceSnapshot(
	company Company,
	customer Customer,
	transport Transportation,
	info InvoiceInfo,
	items []LineItem,
	rates TaxRates,
	totals InvoiceTotals,
) *InvoiceSnapshot {
	copied := make([]LineItem, len(items))
	copy(copied, items)
	return &InvoiceSnapshot{
		CompanyName:      company.Name,
		CompanyTagline:   company.Tagline,
		CompanyAddress:   company.Address,
		CompanyGSTIN:     company.GSTIN,
		CompanyState:     company.State,
		CompanyStateCode: company.StateCode,
		CompanyPhone:     company.Phone,

		CustomerName:      customer.Name,
		CustomerAddress:   customer.Address,
		CustomerGSTIN:     customer.GSTIN,
		CustomerState:     customer.State,
		CustomerStateCode: customer.StateCode,

		EWayBill:                transport.EWayBill,
		TransportationMode:      transport.TransportationMode,
		VehicleNo:               transport.VehicleNo,
		TransportationState:     transport.State,
		TransportationStateCode: transport.StateCode,

		InvoiceNumber: info.Number,
		InvoiceDate:   info.Date,
		Items:         copied,

		CGSTRate:      rates.CGSTPercent,
		SGSTRate:      rates.SGSTPercent,
		IGSTRate:      rates.IGSTPercent,
		Subtotal:      totals.Subtotal,
		CGSTAmount:    totals.CGSTAmount,
		SGSTAmount:    totals.SGSTAmount,
		IGSTAmount:    totals.IGSTAmount,
		TotalTax:      totals.TotalTax,
		RoundOff:      totals.RoundOff,
		GrandTotal:    totals.GrandTotal,
		AmountInWords: totals.AmountInWords,
	}
}
