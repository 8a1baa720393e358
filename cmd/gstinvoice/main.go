// Command gstinvoice computes and renders GST invoices from YAML draft files.
//
//	gstinvoice
//	├── words <amount>                 amount in Indian English words
//	├── compute -f draft.yaml          line amounts, taxes and totals
//	└── render  -f draft.yaml -o out   printable PDF
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sendhur-traders/gst-invoice/pkg/config"
	"github.com/sendhur-traders/gst-invoice/pkg/logger"
)

type app struct {
	cfg     *config.Config
	log     *logger.Logger
	verbose bool
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "gstinvoice",
		Short: "Compute and render GST tax invoices",
		Long: `gstinvoice works on YAML draft files holding the line items, tax rates,
customer, transportation and invoice details of one invoice.

Company details and default tax rates come from the same environment
variables as the API server (COMPANY_NAME, INVOICE_CGST_PERCENT, ...).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			level := cfg.App.LogLevel
			if a.verbose {
				level = "debug"
			}
			a.cfg = cfg
			a.log = logger.New(logger.Config{Env: "development", Level: level, Output: stderr})
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newWordsCmd(), newComputeCmd(a), newRenderCmd(a))
	return root
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
