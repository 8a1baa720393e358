package gst

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Indian numbering scales.
const (
	crore    = 10_000_000
	lakh     = 100_000
	thousand = 1_000
)

// ZeroAmountInWords is what an invoice prints for a zero grand total.
const ZeroAmountInWords = "Rupees Zero Only"

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// belowThousand renders n in [0,999]; zero renders as "".
func belowThousand(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 20:
		return ones[n]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + " " + ones[n%10]
	default:
		if n%100 == 0 {
			return ones[n/100] + " Hundred"
		}
		return ones[n/100] + " Hundred " + belowThousand(n%100)
	}
}

// indianWords renders n >= 0 with 2-2-3 grouping (crore, lakh, thousand, rest).
// A crore count above 99 is itself rendered in Indian words.
func indianWords(n int64) string {
	var parts []string
	if c := n / crore; c > 0 {
		parts = append(parts, indianWords(c)+" Crore")
	}
	if l := n / lakh % 100; l > 0 {
		parts = append(parts, belowThousand(l)+" Lakh")
	}
	if t := n / thousand % 100; t > 0 {
		parts = append(parts, belowThousand(t)+" Thousand")
	}
	if r := n % thousand; r > 0 {
		parts = append(parts, belowThousand(r))
	}
	return strings.Join(parts, " ")
}

// ToWords renders a rupee amount in Indian English, e.g.
// 1234567.89 -> "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Rupees and Eighty Nine Paise Only".
// The amount is rounded to paise first; a zero amount yields "Zero".
func ToWords(amount decimal.Decimal) string {
	amount = amount.Round(2)
	if amount.IsZero() {
		return "Zero"
	}
	if amount.IsNegative() {
		return "Minus " + ToWords(amount.Neg())
	}

	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(hundred).IntPart()

	words := indianWords(rupees)
	if words == "" {
		words = "Zero"
	}
	words += " Rupees"
	if paise > 0 {
		words += " and " + belowThousand(paise) + " Paise"
	}
	return words + " Only"
}

// AmountInWords is the invoice-level rendering of a grand total.
// A zero total prints as "Rupees Zero Only" instead of going through ToWords.
func AmountInWords(grandTotal decimal.Decimal) string {
	if grandTotal.Round(2).IsZero() {
		return ZeroAmountInWords
	}
	return ToWords(grandTotal)
}
