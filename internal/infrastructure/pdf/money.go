package pdf

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var indianPrinter = message.NewPrinter(language.Make("en-IN"))

// FormatMoney prints d with two decimals and locale digit grouping.
// The integer part is grouped as an int64 so the value is never rounded through float64.
func FormatMoney(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]

	n, err := decimal.NewFromString(intPart)
	if err != nil || !n.IsInteger() || n.GreaterThan(decimal.NewFromInt(1e15)) {
		return signed(d, fixed)
	}
	return signed(d, indianPrinter.Sprintf("%d", n.IntPart())+"."+frac)
}

func signed(d decimal.Decimal, s string) string {
	if d.Round(2).IsNegative() {
		return "-" + s
	}
	return s
}
