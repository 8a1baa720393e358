package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sendhur-traders/gst-invoice/internal/domain/gst"
)

func TestToWords(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "Zero"},
		{"1", "One Rupees Only"},
		{"21", "Twenty One Rupees Only"},
		{"90", "Ninety Rupees Only"},
		{"100", "One Hundred Rupees Only"},
		{"708", "Seven Hundred Eight Rupees Only"},
		{"1000", "One Thousand Rupees Only"},
		{"100000", "One Lakh Rupees Only"},
		{"10000000", "One Crore Rupees Only"},
		{"1234567.89", "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Rupees and Eighty Nine Paise Only"},
		{"999999999", "Ninety Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine Rupees Only"},
		{"10100010", "One Crore One Lakh Ten Rupees Only"},
		{"15.05", "Fifteen Rupees and Five Paise Only"},
		{"12.345", "Twelve Rupees and Thirty Five Paise Only"},
		{"0.999", "One Rupees Only"},
	}
	for _, tc := range cases {
		t.Run(tc.amount, func(t *testing.T) {
			assert.Equal(t, tc.want, gst.ToWords(decimal.RequireFromString(tc.amount)))
		})
	}
}

// Zero rupees with paise spells the rupee part out instead of leaving it blank.
func TestToWords_ZeroRupeesWithPaise(t *testing.T) {
	assert.Equal(t, "Zero Rupees and Fifty Paise Only", gst.ToWords(decimal.RequireFromString("0.5")))
}

// Crore counts above 99 are not truncated.
func TestToWords_HundredsOfCrores(t *testing.T) {
	assert.Equal(t, "One Hundred Twenty Three Crore Rupees Only",
		gst.ToWords(decimal.RequireFromString("1230000000")))
	assert.Equal(t, "One Lakh Crore Rupees Only",
		gst.ToWords(decimal.RequireFromString("1000000000000")))
}

func TestToWords_Negative(t *testing.T) {
	assert.Equal(t, "Minus Five Rupees and Fifty Paise Only", gst.ToWords(decimal.RequireFromString("-5.5")))
}

func TestToWords_ScaleWordsPresent(t *testing.T) {
	assert.Contains(t, gst.ToWords(decimal.NewFromInt(100)), "One Hundred Rupees")
	assert.Contains(t, gst.ToWords(decimal.NewFromInt(100000)), "One Lakh")
	assert.Contains(t, gst.ToWords(decimal.NewFromInt(10000000)), "One Crore")
}

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "Rupees Zero Only", gst.AmountInWords(decimal.Zero))
	assert.Equal(t, "Rupees Zero Only", gst.AmountInWords(decimal.RequireFromString("0.001")))
	assert.Equal(t, "Seven Hundred Eight Rupees Only", gst.AmountInWords(decimal.NewFromInt(708)))
}
