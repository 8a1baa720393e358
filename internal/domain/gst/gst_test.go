package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
	"github.com/sendhur-traders/gst-invoice/internal/domain/gst"
)

// ──────────────────────────────────────────────────────────────────────────────
// Line item aggregation
// ──────────────────────────────────────────────────────────────────────────────

func TestParseDecimalOrZero(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2", "2"},
		{" 2.5 ", "2.5"},
		{"2.5kg", "2.5"},
		{".5", "0.5"},
		{"4.", "4"},
		{"+4", "4"},
		{"-3", "-3"},
		{"1e2", "100"},
		{"1e", "1"},
		{"", "0"},
		{"abc", "0"},
		{"-", "0"},
		{"kg2", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assertDecimal(t, tc.want, gst.ParseDecimalOrZero(tc.in))
		})
	}
}

func TestComputeAmount(t *testing.T) {
	assertDecimal(t, "600", gst.ComputeAmount("2", dec("3"), dec("100")))
	assertDecimal(t, "37.5", gst.ComputeAmount("1.5", dec("5"), dec("5")))
	// unparseable weight behaves as "0"
	assertDecimal(t, "0", gst.ComputeAmount("n/a", dec("3"), dec("100")))
	// negative inputs are not rejected at this layer
	assertDecimal(t, "-20", gst.ComputeAmount("-2", dec("1"), dec("10")))
}

func TestRecomputeAmount_ReplacesStoredAmount(t *testing.T) {
	item := entity.LineItem{Weight: "2", Quantity: dec("3"), Rate: dec("100"), Amount: dec("999")}
	gst.RecomputeAmount(&item)
	assertDecimal(t, "600", item.Amount)

	gst.RecomputeAmount(&item)
	assertDecimal(t, "600", item.Amount, "recompute must replace, never accumulate")
}

func TestSubtotal(t *testing.T) {
	items := []entity.LineItem{
		{Amount: dec("600")},
		{Amount: dec("0.25")},
		{Amount: dec("99.75")},
	}
	assertDecimal(t, "700", gst.Subtotal(items))
	assertDecimal(t, "0", gst.Subtotal(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tax & rounding
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTaxes(t *testing.T) {
	rates := entity.TaxRates{CGSTPercent: dec("9"), SGSTPercent: dec("9"), IGSTPercent: dec("0")}
	got := gst.ComputeTaxes(dec("600"), rates, decimal.Zero)

	assertDecimal(t, "54", got.CGSTAmount)
	assertDecimal(t, "54", got.SGSTAmount)
	assertDecimal(t, "0", got.IGSTAmount)
	assertDecimal(t, "108", got.TotalTax)
	assertDecimal(t, "708", got.GrandTotal)
}

func TestComputeTaxes_AllThreeRatesAllowed(t *testing.T) {
	rates := entity.TaxRates{CGSTPercent: dec("2.5"), SGSTPercent: dec("2.5"), IGSTPercent: dec("5")}
	got := gst.ComputeTaxes(dec("1000"), rates, dec("-0.4"))

	assertDecimal(t, "25", got.CGSTAmount)
	assertDecimal(t, "25", got.SGSTAmount)
	assertDecimal(t, "50", got.IGSTAmount)
	assertDecimal(t, "100", got.TotalTax)
	assertDecimal(t, "1099.6", got.GrandTotal)
}

func TestComputeTaxes_TotalIsExactSum(t *testing.T) {
	subtotals := []string{"0", "1", "333.33", "1234567.89", "0.07"}
	rateSets := [][3]string{{"9", "9", "0"}, {"0", "0", "18"}, {"6", "6", "12"}, {"2.5", "2.5", "0.1"}}
	for _, s := range subtotals {
		for _, r := range rateSets {
			S := dec(s)
			rates := entity.TaxRates{CGSTPercent: dec(r[0]), SGSTPercent: dec(r[1]), IGSTPercent: dec(r[2])}
			roundOff := dec("0.3")
			got := gst.ComputeTaxes(S, rates, roundOff)

			want := S.Mul(rates.CGSTPercent).Div(dec("100")).
				Add(S.Mul(rates.SGSTPercent).Div(dec("100"))).
				Add(S.Mul(rates.IGSTPercent).Div(dec("100")))
			assert.True(t, want.Equal(got.TotalTax), "subtotal %s rates %v: total tax %s != %s", s, r, got.TotalTax, want)
			assert.True(t, S.Add(got.TotalTax).Add(roundOff).Equal(got.GrandTotal))
		}
	}
}

func TestComputeAutoRoundOff(t *testing.T) {
	cases := []struct {
		subtotal, tax, want string
	}{
		{"100.4", "0", "-0.4"},
		{"100.5", "0", "0.5"},
		{"600", "108", "0"},
		{"99.99", "18", "0.01"},
		{"1234.56", "222.2208", "0.2192"},
	}
	for _, tc := range cases {
		delta := gst.ComputeAutoRoundOff(dec(tc.subtotal), dec(tc.tax))
		assertDecimal(t, tc.want, delta)

		total := dec(tc.subtotal).Add(dec(tc.tax)).Add(delta)
		assert.True(t, total.Equal(total.Round(0)), "applying %s must yield a whole amount, got %s", delta, total)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Derived totals
// ──────────────────────────────────────────────────────────────────────────────

// The whole pipeline for one item: 2 x 3 x 100 at 9% + 9%.
func TestDeriveTotals_EndToEnd(t *testing.T) {
	item := entity.NewLineItem()
	item.Weight = "2"
	item.Quantity = dec("3")
	item.Rate = dec("100")
	gst.RecomputeAmount(&item)
	require.True(t, dec("600").Equal(item.Amount))

	rates := entity.TaxRates{CGSTPercent: dec("9"), SGSTPercent: dec("9"), IGSTPercent: decimal.Zero}
	totals := gst.DeriveTotals([]entity.LineItem{item}, rates, decimal.Zero)

	assertDecimal(t, "600", totals.Subtotal)
	assertDecimal(t, "54", totals.CGSTAmount)
	assertDecimal(t, "54", totals.SGSTAmount)
	assertDecimal(t, "0", totals.IGSTAmount)
	assertDecimal(t, "108", totals.TotalTax)
	assertDecimal(t, "0", totals.RoundOff)
	assertDecimal(t, "708", totals.GrandTotal)
	assert.Equal(t, "Seven Hundred Eight Rupees Only", totals.AmountInWords)
}

func TestDeriveTotals_Idempotent(t *testing.T) {
	items := []entity.LineItem{
		{Weight: "1.25", Quantity: dec("4"), Rate: dec("33.33"), Amount: gst.ComputeAmount("1.25", dec("4"), dec("33.33"))},
		{Weight: "3", Quantity: dec("1"), Rate: dec("17"), Amount: gst.ComputeAmount("3", dec("1"), dec("17"))},
	}
	rates := entity.TaxRates{CGSTPercent: dec("6"), SGSTPercent: dec("6"), IGSTPercent: dec("0")}

	first := gst.DeriveTotals(items, rates, dec("0.12"))
	second := gst.DeriveTotals(items, rates, dec("0.12"))
	assert.Equal(t, first, second, "same inputs must yield identical totals")
}

func TestDeriveTotals_ZeroTotalWording(t *testing.T) {
	totals := gst.DeriveTotals([]entity.LineItem{entity.NewLineItem()}, entity.TaxRates{}, decimal.Zero)
	assert.Equal(t, gst.ZeroAmountInWords, totals.AmountInWords)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !decimal.RequireFromString(want).Equal(got) {
		assert.Fail(t, "decimal mismatch: want "+want+", got "+got.String(), msgAndArgs...)
	}
}
