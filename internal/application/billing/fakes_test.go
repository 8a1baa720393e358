package billing_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sendhur-traders/gst-invoice/internal/application/billing"
	"github.com/sendhur-traders/gst-invoice/internal/application/dto"
	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
	"github.com/sendhur-traders/gst-invoice/pkg/logger"
)

type fakeCustomerRepo struct {
	list  []entity.Customer
	saves int
}

func (r *fakeCustomerRepo) Load(context.Context) ([]entity.Customer, error) {
	out := make([]entity.Customer, len(r.list))
	copy(out, r.list)
	return out, nil
}

func (r *fakeCustomerRepo) Save(_ context.Context, list []entity.Customer) error {
	r.list = list
	r.saves++
	return nil
}

func (r *fakeCustomerRepo) Clear(context.Context) error {
	r.list = nil
	return nil
}

type fakeTransportRepo struct {
	list  []entity.Transportation
	saves int
}

func (r *fakeTransportRepo) Load(context.Context) ([]entity.Transportation, error) {
	out := make([]entity.Transportation, len(r.list))
	copy(out, r.list)
	return out, nil
}

func (r *fakeTransportRepo) Save(_ context.Context, list []entity.Transportation) error {
	r.list = list
	r.saves++
	return nil
}

func (r *fakeTransportRepo) Clear(context.Context) error {
	r.list = nil
	return nil
}

type fakeInvoiceRepo struct {
	snap *entity.InvoiceSnapshot
}

func (r *fakeInvoiceRepo) Load(context.Context) (*entity.InvoiceSnapshot, error) { return r.snap, nil }

func (r *fakeInvoiceRepo) Save(_ context.Context, s *entity.InvoiceSnapshot) error {
	r.snap = s
	return nil
}

func (r *fakeInvoiceRepo) Clear(context.Context) error {
	r.snap = nil
	return nil
}

type fakeAssetRepo struct {
	m map[string]string
}

func (r *fakeAssetRepo) Get(_ context.Context, kind string) (string, error) { return r.m[kind], nil }

func (r *fakeAssetRepo) Put(_ context.Context, kind, uri string) error {
	if r.m == nil {
		r.m = map[string]string{}
	}
	r.m[kind] = uri
	return nil
}

func (r *fakeAssetRepo) Delete(_ context.Context, kind string) error {
	delete(r.m, kind)
	return nil
}

type fakePDFGenerator struct {
	got    *entity.InvoiceSnapshot
	assets billing.InvoiceAssets
}

func (g *fakePDFGenerator) GenerateInvoicePDF(_ context.Context, s *entity.InvoiceSnapshot, a billing.InvoiceAssets) ([]byte, error) {
	g.got = s
	g.assets = a
	return []byte("%PDF-fake"), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

var testCompany = entity.Company{Name: "SENDHUR TRADERS", GSTIN: "33CNKPM7002D1ZD", State: "Tamilnadu", StateCode: "33"}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

func defaultRates() entity.TaxRates {
	return entity.TaxRates{CGSTPercent: dec("9"), SGSTPercent: dec("9"), IGSTPercent: decimal.Zero}
}

type fixture struct {
	editor     *billing.Editor
	customers  *fakeCustomerRepo
	transports *fakeTransportRepo
	invoices   *fakeInvoiceRepo
	assets     *fakeAssetRepo
	invoiceUC  *billing.InvoiceUseCase
}

func newFixture() *fixture {
	f := &fixture{
		editor:     billing.NewEditor(defaultRates()),
		customers:  &fakeCustomerRepo{},
		transports: &fakeTransportRepo{},
		invoices:   &fakeInvoiceRepo{},
		assets:     &fakeAssetRepo{},
	}
	f.invoiceUC = billing.NewInvoiceUseCase(f.editor, testCompany, f.customers, f.transports, f.invoices, logger.Nop())
	return f
}

// fillValidDraft puts the editor in the 2 x 3 x 100 state with customer and number set.
func (f *fixture) fillValidDraft() billing.Draft {
	first := f.editor.Snapshot().Items[0]
	_, _ = f.editor.UpdateItem(first.ID, entity.LineItemPatch{
		Description: ptr("Copper scrap"),
		Weight:      ptr("2"),
		Quantity:    ptr(dec("3")),
		Rate:        ptr(dec("100")),
	})
	f.editor.SetCustomer(entity.Customer{Name: "Acme", Address: "1 Main Rd"})
	f.editor.SetTransportation(entity.Transportation{VehicleNo: "TN30AB1234", TransportationMode: "Road"})
	return f.editor.SetInvoiceInfo(dtoInvoice("INV-001", "2024-04-01"))
}

func dtoInvoice(number, date string) dto.InvoiceInfoRequest {
	return dto.InvoiceInfoRequest{Number: number, Date: date}
}
