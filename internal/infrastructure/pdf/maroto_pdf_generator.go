// Package pdf renders the printable GST tax invoice.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo │ Company name, tagline, address │ TAX INVOICE │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Invoice No + Date            │  Transportation details      │
//	│  Billed to: name, address, GSTIN, state                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: S.No | Description | HSN | Weight | Qty | Rate | Amt │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / CGST / SGST / IGST / Tax / Round off     │
//	│  Amount in words                                             │
//	│  FOOTER: declaration │ signature + Authorised Signatory      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/sendhur-traders/gst-invoice/internal/application/billing"
	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implements billing.InvoicePDFGenerator with Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// GenerateInvoicePDF renders the snapshot and returns the PDF bytes.
// Every figure is printed as stored in the snapshot.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	snap *entity.InvoiceSnapshot,
	assets billing.InvoiceAssets,
) ([]byte, error) {
	if snap == nil {
		return nil, fmt.Errorf("pdf: nil invoice")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tax Invoice "+snap.InvoiceNumber, true).
		WithAuthor(snap.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(snap, assets.Logo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(invoiceInfoRow(snap))
	m.AddRows(billedToRow(snap))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(snap.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(snap))
	m.AddRows(amountInWordsRow(snap))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(snap, assets.Signature))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: logo (optional), company identity and the document title.
func headerRow(snap *entity.InvoiceSnapshot, logo *billing.Image) core.Row {
	identity := []core.Component{
		text.New(snap.CompanyName, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
		}),
	}
	if snap.CompanyTagline != "" {
		identity = append(identity, text.New(snap.CompanyTagline, props.Text{
			Style: fontstyle.Italic, Size: 8, Top: 8, Color: colorGray,
		}))
	}
	identity = append(identity, text.New(snap.CompanyAddress, props.Text{
		Size: 8, Top: 13, Color: colorGray,
	}))
	if snap.CompanyPhone != "" {
		identity = append(identity, text.New("Phone: "+snap.CompanyPhone, props.Text{
			Size: 8, Top: 18, Color: colorGray,
		}))
	}

	title := col.New(3).Add(
		text.New("TAX INVOICE", props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 1,
		}),
		text.New("GSTIN: "+snap.CompanyGSTIN, props.Text{
			Size: 8, Align: align.Right, Top: 9,
		}),
		text.New(stateLine(snap.CompanyState, snap.CompanyStateCode), props.Text{
			Size: 8, Align: align.Right, Top: 14, Color: colorGray,
		}),
	)

	if c := imageComponent(logo, props.Rect{Percent: 90, Center: true}); c != nil {
		return row.New(24).Add(col.New(2).Add(c), col.New(7).Add(identity...), title)
	}
	return row.New(24).Add(col.New(9).Add(identity...), title)
}

// invoiceInfoRow: invoice number and date (left), transportation details (right).
func invoiceInfoRow(snap *entity.InvoiceSnapshot) core.Row {
	return row.New(24).Add(
		col.New(6).Add(
			sectionTitle("INVOICE"),
			labelValue("Invoice No", snap.InvoiceNumber, 6),
			labelValue("Invoice Date", snap.InvoiceDate, 11),
		),
		col.New(6).Add(
			sectionTitle("TRANSPORTATION"),
			labelValue("E-Way Bill", snap.EWayBill, 6),
			labelValue("Mode", snap.TransportationMode, 10),
			labelValue("Vehicle No", snap.VehicleNo, 14),
			labelValue("Place of Supply", stateLine(snap.TransportationState, snap.TransportationStateCode), 18),
		),
	)
}

// billedToRow: the customer block.
func billedToRow(snap *entity.InvoiceSnapshot) core.Row {
	return row.New(26).Add(
		col.New(12).Add(
			sectionTitle("BILLED TO"),
			text.New(snap.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(snap.CustomerAddress, props.Text{Size: 8, Top: 11, Color: colorGray}),
			labelValue("GSTIN", snap.CustomerGSTIN, 16),
			labelValue("State", stateLine(snap.CustomerState, snap.CustomerStateCode), 20),
		),
	)
}

// tableHeaderRow: item table header on a filled band.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("S.No", 1, align.Center),
		h("Description of Goods", 4, align.Left),
		h("HSN", 1, align.Center),
		h("Weight", 1, align.Right),
		h("Qty", 1, align.Right),
		h("Rate", 2, align.Right),
		h("Amount", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: one row per line item.
func tableDetailRows(items []entity.LineItem) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		result = append(result, row.New(7).Add(
			cell(strconv.Itoa(i+1), 1, align.Center),
			cell(it.Description, 4, align.Left),
			cell(it.HSNCode, 1, align.Center),
			cell(it.Weight, 1, align.Right),
			cell(it.Quantity.String(), 1, align.Right),
			cell(FormatMoney(it.Rate), 2, align.Right),
			cell(FormatMoney(it.Amount), 2, align.Right),
		))
	}
	return result
}

// totalsRow: tax breakdown aligned to the right.
func totalsRow(snap *entity.InvoiceSnapshot) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	roundOffLabel := "Round Off (+)"
	if snap.RoundOff.IsNegative() {
		roundOffLabel = "Round Off (-)"
	}

	return row.New(40).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 0),
			label("CGST @ "+snap.CGSTRate.String()+"%:", 5),
			label("SGST @ "+snap.SGSTRate.String()+"%:", 10),
			label("IGST @ "+snap.IGSTRate.String()+"%:", 15),
			label("Total Tax:", 20),
			label(roundOffLabel+":", 25),
			text.New("GRAND TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 31,
			}),
		),
		col.New(3).Add(
			value(FormatMoney(snap.Subtotal), 0),
			value(FormatMoney(snap.CGSTAmount), 5),
			value(FormatMoney(snap.SGSTAmount), 10),
			value(FormatMoney(snap.IGSTAmount), 15),
			value(FormatMoney(snap.TotalTax), 20),
			value(FormatMoney(snap.RoundOff.Abs()), 25),
			text.New("Rs. "+FormatMoney(snap.GrandTotal), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 31,
			}),
		),
	)
}

func amountInWordsRow(snap *entity.InvoiceSnapshot) core.Row {
	return row.New(12).Add(col.New(12).Add(
		sectionTitle("AMOUNT IN WORDS"),
		text.New(snap.AmountInWords, props.Text{Style: fontstyle.Bold, Size: 9, Top: 6}),
	))
}

// footerRow: declaration (left), signature block (right).
func footerRow(snap *entity.InvoiceSnapshot, signature *billing.Image) core.Row {
	sign := []core.Component{
		text.New("For "+snap.CompanyName, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
		}),
	}
	if c := imageComponent(signature, props.Rect{Percent: 60, Top: 6, Left: 20}); c != nil {
		sign = append(sign, c)
	}
	sign = append(sign, text.New("Authorised Signatory", props.Text{
		Size: 8, Align: align.Right, Top: 25, Color: colorGray,
	}))

	return row.New(32).Add(
		col.New(7).Add(text.New(
			"Declaration: We declare that this invoice shows the actual price of the goods "+
				"described and that all particulars are true and correct.",
			props.Text{Size: 7, Color: colorGray, Top: 2, Right: 4},
		)),
		col.New(5).Add(sign...),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sectionTitle(s string) core.Component {
	return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1})
}

func labelValue(label, value string, top float64) core.Component {
	return text.New(label+": "+nonEmpty(value, "-"), props.Text{Size: 8, Top: top})
}

func stateLine(state, code string) string {
	switch {
	case state == "" && code == "":
		return ""
	case code == "":
		return state
	case state == "":
		return "Code " + code
	}
	return state + " (Code " + code + ")"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// imageComponent returns nil for missing images and for formats the PDF engine
// cannot embed.
func imageComponent(img *billing.Image, rect props.Rect) core.Component {
	if img == nil || len(img.Data) == 0 {
		return nil
	}
	ext, ok := imageExtension(img.ContentType)
	if !ok {
		return nil
	}
	return image.NewFromBytes(img.Data, ext, rect)
}

func imageExtension(contentType string) (extension.Type, bool) {
	switch contentType {
	case "image/png":
		return extension.Png, true
	case "image/jpeg", "image/jpg":
		return extension.Jpg, true
	}
	return "", false
}
