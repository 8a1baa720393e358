package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendhur-traders/gst-invoice/internal/domain"
	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
)

const sampleDraft = `
customer:
  name: Acme
  address: 1 Main Rd
transportation:
  vehicleNo: TN30AB1234
  mode: Road
invoice:
  number: INV-001
  date: "2024-04-01"
items:
  - description: Copper scrap
    weight: 2
    hsnCode: 7404
    quantity: 3
    rate: "100"
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&errOut)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeDraft(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

var nineNine = entity.TaxRates{CGSTPercent: decimal.NewFromInt(9), SGSTPercent: decimal.NewFromInt(9), IGSTPercent: decimal.Zero}

// ──────────────────────────────────────────────────────────────────────────────
// Draft files
// ──────────────────────────────────────────────────────────────────────────────

func TestParseDraft(t *testing.T) {
	d, err := parseDraft([]byte(sampleDraft), nineNine, time.Now())
	require.NoError(t, err)

	require.Len(t, d.Items, 1)
	assert.Equal(t, "2", d.Items[0].Weight)
	assert.Equal(t, "7404", d.Items[0].HSNCode)
	assert.NotEmpty(t, d.Items[0].ID)
	assert.Equal(t, "600", d.Items[0].Amount.String())
	assert.Equal(t, "708", d.Totals.GrandTotal.String())
	assert.Equal(t, "Seven Hundred Eight Rupees Only", d.Totals.AmountInWords)
	assert.Equal(t, "Acme", d.Customer.Name)
	assert.Equal(t, "Road", d.Transportation.TransportationMode)
	assert.Equal(t, "2024-04-01", d.Invoice.Date)
}

func TestParseDraft_RatesAndAutoRoundOff(t *testing.T) {
	raw := `
rates: {cgst: 2.5, sgst: 2.5}
roundOff: auto
items:
  - {weight: "1.7", quantity: 1, rate: 100}
`
	d, err := parseDraft([]byte(raw), nineNine, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "2.5", d.Rates.CGSTPercent.String())
	assert.True(t, d.Rates.IGSTPercent.IsZero())
	assert.Equal(t, "0.5", d.RoundOff.String())
	assert.Equal(t, "179", d.Totals.GrandTotal.String())
}

func TestParseDraft_Defaults(t *testing.T) {
	now := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)
	d, err := parseDraft([]byte("items:\n  - {description: blank}\n"), nineNine, now)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultWeight, d.Items[0].Weight)
	assert.True(t, d.Items[0].Amount.IsZero())
	assert.Equal(t, "2024-07-15", d.Invoice.Date)
	assert.True(t, d.Rates.CGSTPercent.Equal(decimal.NewFromInt(9)))
}

func TestParseDraft_RejectsUnknownFields(t *testing.T) {
	_, err := parseDraft([]byte("customer:\n  nmae: Acme\n"), nineNine, time.Now())
	assert.Error(t, err)

	_, err = parseDraft([]byte("items:\n  - {weight: [1, 2]}\n"), nineNine, time.Now())
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────────────────────────

func TestWordsCmd(t *testing.T) {
	out, err := run(t, "words", "708")
	require.NoError(t, err)
	assert.Equal(t, "Seven Hundred Eight Rupees Only\n", out)

	out, err = run(t, "words", "0")
	require.NoError(t, err)
	assert.Equal(t, "Rupees Zero Only\n", out)

	_, err = run(t, "words", "abc")
	assert.Error(t, err)
}

func TestComputeCmd(t *testing.T) {
	path := writeDraft(t, sampleDraft)

	out, err := run(t, "compute", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Copper scrap")
	assert.Contains(t, out, "708.00")
	assert.True(t, strings.HasSuffix(out, "Seven Hundred Eight Rupees Only\n"))

	out, err = run(t, "compute", "-f", path, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"grandTotal": "708"`)
}

func TestRenderCmd(t *testing.T) {
	path := writeDraft(t, sampleDraft)
	output := filepath.Join(t.TempDir(), "out.pdf")

	out, err := run(t, "render", "-f", path, "-o", output)
	require.NoError(t, err)
	assert.Equal(t, output+"\n", out)

	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestRenderCmd_ValidatesDraft(t *testing.T) {
	path := writeDraft(t, "items:\n  - {weight: 1, quantity: 1, rate: 1}\n")

	_, err := run(t, "render", "-f", path, "-o", filepath.Join(t.TempDir(), "x.pdf"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
