package gst

import (
	"github.com/shopspring/decimal"

	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// percentOf returns base * percent / 100.
func percentOf(base, percent decimal.Decimal) decimal.Decimal {
	return base.Mul(percent).Div(hundred)
}

// ComputeTaxes applies each GST rate to the subtotal and adds the round off.
// Zero rates are not special-cased.
func ComputeTaxes(subtotal decimal.Decimal, rates entity.TaxRates, roundOff decimal.Decimal) entity.TaxBreakdown {
	cgst := percentOf(subtotal, rates.CGSTPercent)
	sgst := percentOf(subtotal, rates.SGSTPercent)
	igst := percentOf(subtotal, rates.IGSTPercent)
	total := cgst.Add(sgst).Add(igst)
	return entity.TaxBreakdown{
		CGSTAmount: cgst,
		SGSTAmount: sgst,
		IGSTAmount: igst,
		TotalTax:   total,
		GrandTotal: subtotal.Add(total).Add(roundOff),
	}
}

// ComputeAutoRoundOff returns the signed delta that turns subtotal+totalTax into
// a whole rupee amount. Halves round away from zero. It does not apply the delta.
func ComputeAutoRoundOff(subtotal, totalTax decimal.Decimal) decimal.Decimal {
	initial := subtotal.Add(totalTax)
	return initial.Round(0).Sub(initial)
}

// DeriveTotals re-derives every downstream value from scratch.
// Item amounts are taken as stored; callers recompute them on row edits.
func DeriveTotals(items []entity.LineItem, rates entity.TaxRates, roundOff decimal.Decimal) entity.InvoiceTotals {
	subtotal := Subtotal(items)
	tax := ComputeTaxes(subtotal, rates, roundOff)
	return entity.InvoiceTotals{
		Subtotal:      subtotal,
		CGSTAmount:    tax.CGSTAmount,
		SGSTAmount:    tax.SGSTAmount,
		IGSTAmount:    tax.IGSTAmount,
		TotalTax:      tax.TotalTax,
		RoundOff:      roundOff,
		GrandTotal:    tax.GrandTotal,
		AmountInWords: AmountInWords(tax.GrandTotal),
	}
}
