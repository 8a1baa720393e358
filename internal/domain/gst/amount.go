// Package gst holds the pure invoice arithmetic: line amounts, GST breakdown,
// round off and the Indian-English rendering of the grand total.
package gst

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
)

// leadingDecimal matches the longest numeric prefix a lenient float parser accepts.
var leadingDecimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseDecimalOrZero parses the numeric prefix of s and falls back to zero.
// "2.5kg" -> 2.5, ".5" -> 0.5, "" / "abc" / "-" -> 0. It never fails.
func ParseDecimalOrZero(s string) decimal.Decimal {
	m := leadingDecimal.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ComputeAmount returns weight * quantity * rate for a line item.
// Negative and zero inputs are accepted as-is.
func ComputeAmount(weight string, quantity, rate decimal.Decimal) decimal.Decimal {
	return ParseDecimalOrZero(weight).Mul(quantity).Mul(rate)
}

// RecomputeAmount replaces item.Amount with the value derived from its inputs.
func RecomputeAmount(item *entity.LineItem) {
	item.Amount = ComputeAmount(item.Weight, item.Quantity, item.Rate)
}

// Subtotal sums the current Amount of every item.
func Subtotal(items []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount)
	}
	return sum
}
