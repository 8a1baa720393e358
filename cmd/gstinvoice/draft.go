package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/sendhur-traders/gst-invoice/internal/application/billing"
	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
	"github.com/sendhur-traders/gst-invoice/internal/domain/gst"
)

// scalar keeps a YAML scalar exactly as written, so 2, "2" and 2.50 all
// reach the lenient decimal parser unchanged.
type scalar string

func (s *scalar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", value.Line)
	}
	*s = scalar(value.Value)
	return nil
}

func (s scalar) decimal() decimal.Decimal { return gst.ParseDecimalOrZero(string(s)) }

type partyFile struct {
	Name      string `yaml:"name"`
	Address   string `yaml:"address"`
	GSTIN     string `yaml:"gstin"`
	State     string `yaml:"state"`
	StateCode string `yaml:"stateCode"`
}

type transportFile struct {
	EWayBill  string `yaml:"eWayBill"`
	Mode      string `yaml:"mode"`
	VehicleNo string `yaml:"vehicleNo"`
	State     string `yaml:"state"`
	StateCode string `yaml:"stateCode"`
}

type invoiceFile struct {
	Number string `yaml:"number"`
	Date   string `yaml:"date"`
}

type ratesFile struct {
	CGST *scalar `yaml:"cgst"`
	SGST *scalar `yaml:"sgst"`
	IGST *scalar `yaml:"igst"`
}

type itemFile struct {
	Description string `yaml:"description"`
	Weight      scalar `yaml:"weight"`
	HSNCode     scalar `yaml:"hsnCode"`
	Quantity    scalar `yaml:"quantity"`
	Rate        scalar `yaml:"rate"`
}

// draftFile is the on-disk form of one invoice.
//
//	customer:       {name: Acme, address: ..., gstin: ..., state: ..., stateCode: "33"}
//	transportation: {eWayBill: ..., mode: Road, vehicleNo: TN30AB1234}
//	invoice:        {number: INV-001, date: 2024-04-01}
//	rates:          {cgst: 9, sgst: 9, igst: 0}
//	roundOff:       auto
//	items:
//	  - {description: Copper scrap, weight: 2, hsnCode: "7404", quantity: 3, rate: 100}
type draftFile struct {
	Customer       partyFile     `yaml:"customer"`
	Transportation transportFile `yaml:"transportation"`
	Invoice        invoiceFile   `yaml:"invoice"`
	Rates          ratesFile     `yaml:"rates"`
	RoundOff       scalar        `yaml:"roundOff"` // signed amount, or "auto"
	Items          []itemFile    `yaml:"items"`
}

// roundOffAuto asks for the adjustment that brings the grand total to a whole rupee.
const roundOffAuto = "auto"

func readDraft(path string, defaults entity.TaxRates, now time.Time) (billing.Draft, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return billing.Draft{}, fmt.Errorf("read draft: %w", err)
	}
	return parseDraft(raw, defaults, now)
}

// parseDraft decodes a draft file and derives every amount and total.
func parseDraft(raw []byte, defaults entity.TaxRates, now time.Time) (billing.Draft, error) {
	var f draftFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return billing.Draft{}, fmt.Errorf("parse draft: %w", err)
	}

	items := make([]entity.LineItem, 0, len(f.Items))
	for _, in := range f.Items {
		item := entity.NewLineItem()
		item.Description = in.Description
		item.HSNCode = string(in.HSNCode)
		if in.Weight != "" {
			item.Weight = string(in.Weight)
		}
		item.Quantity = in.Quantity.decimal()
		item.Rate = in.Rate.decimal()
		gst.RecomputeAmount(&item)
		items = append(items, item)
	}

	rates := defaults
	if f.Rates.CGST != nil {
		rates.CGSTPercent = f.Rates.CGST.decimal()
	}
	if f.Rates.SGST != nil {
		rates.SGSTPercent = f.Rates.SGST.decimal()
	}
	if f.Rates.IGST != nil {
		rates.IGSTPercent = f.Rates.IGST.decimal()
	}

	roundOff := f.RoundOff.decimal()
	if strings.EqualFold(strings.TrimSpace(string(f.RoundOff)), roundOffAuto) {
		subtotal := gst.Subtotal(items)
		roundOff = gst.ComputeAutoRoundOff(subtotal, gst.ComputeTaxes(subtotal, rates, decimal.Zero).TotalTax)
	}

	date := f.Invoice.Date
	if date == "" {
		date = now.Format(entity.InvoiceDateLayout)
	}

	return billing.Draft{
		Items:    items,
		Rates:    rates,
		RoundOff: roundOff,
		Customer: entity.Customer{
			Name:      f.Customer.Name,
			Address:   f.Customer.Address,
			GSTIN:     f.Customer.GSTIN,
			State:     f.Customer.State,
			StateCode: f.Customer.StateCode,
		},
		Transportation: entity.Transportation{
			EWayBill:           f.Transportation.EWayBill,
			TransportationMode: f.Transportation.Mode,
			VehicleNo:          f.Transportation.VehicleNo,
			State:              f.Transportation.State,
			StateCode:          f.Transportation.StateCode,
		},
		Invoice: entity.InvoiceInfo{Number: f.Invoice.Number, Date: date},
		Totals:  gst.DeriveTotals(items, rates, roundOff),
	}, nil
}
