package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sendhur-traders/gst-invoice/internal/application/billing"
	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
	"github.com/sendhur-traders/gst-invoice/internal/infrastructure/pdf"
)

func (a *app) defaultRates() entity.TaxRates {
	return entity.TaxRates{
		CGSTPercent: a.cfg.Invoice.CGSTPercent,
		SGSTPercent: a.cfg.Invoice.SGSTPercent,
		IGSTPercent: a.cfg.Invoice.IGSTPercent,
	}
}

func newComputeCmd(a *app) *cobra.Command {
	var (
		file   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:     "compute",
		Short:   "Print line amounts, taxes and totals of a draft file",
		Example: "  gstinvoice compute -f draft.yaml\n  gstinvoice compute -f draft.yaml --json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := readDraft(file, a.defaultRates(), time.Now())
			if err != nil {
				return err
			}
			a.log.Debug().Str("file", file).Int("items", len(d.Items)).Msg("draft loaded")
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(d.Response())
			}
			return printDraft(cmd.OutOrStdout(), d)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML draft file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the computed draft as JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func printDraft(out io.Writer, d billing.Draft) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tDescription\tHSN\tWeight\tQty\tRate\tAmount\t")
	for i, it := range d.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			i+1, it.Description, it.HSNCode, it.Weight, it.Quantity.String(),
			pdf.FormatMoney(it.Rate), pdf.FormatMoney(it.Amount))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	t := d.Totals
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Subtotal\t%s\t\n", pdf.FormatMoney(t.Subtotal))
	fmt.Fprintf(tw, "CGST @ %s%%\t%s\t\n", d.Rates.CGSTPercent.String(), pdf.FormatMoney(t.CGSTAmount))
	fmt.Fprintf(tw, "SGST @ %s%%\t%s\t\n", d.Rates.SGSTPercent.String(), pdf.FormatMoney(t.SGSTAmount))
	fmt.Fprintf(tw, "IGST @ %s%%\t%s\t\n", d.Rates.IGSTPercent.String(), pdf.FormatMoney(t.IGSTAmount))
	fmt.Fprintf(tw, "Total Tax\t%s\t\n", pdf.FormatMoney(t.TotalTax))
	fmt.Fprintf(tw, "Round Off\t%s\t\n", pdf.FormatMoney(t.RoundOff))
	fmt.Fprintf(tw, "Grand Total\t%s\t\n", pdf.FormatMoney(t.GrandTotal))
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, t.AmountInWords)
	return err
}
