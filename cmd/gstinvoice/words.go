package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sendhur-traders/gst-invoice/internal/domain/gst"
)

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "words <amount>",
		Short:   "Print an amount in Indian English words",
		Example: "  gstinvoice words 1234567.89",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), gst.AmountInWords(amount))
			return err
		},
	}
}
