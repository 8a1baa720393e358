package main

import (
	"context"
	"fmt"
	nethttp "net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sendhur-traders/gst-invoice/internal/application/billing"
	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
	"github.com/sendhur-traders/gst-invoice/internal/infrastructure/pdf"
	"github.com/sendhur-traders/gst-invoice/internal/infrastructure/sqlite"
)

func (a *app) company() entity.Company {
	c := a.cfg.Company
	return entity.Company{
		Name:      c.Name,
		Tagline:   c.Tagline,
		Address:   c.Address,
		GSTIN:     c.GSTIN,
		State:     c.State,
		StateCode: c.StateCode,
		Phone:     c.Phone,
	}
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		file, output    string
		logo, signature string
		useStore        bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a draft file to a PDF tax invoice",
		Long: `render validates the draft (customer name, invoice number and a non-zero
subtotal are required) and writes the printable invoice.

Images come from --logo and --signature, or with --store from the
images uploaded through the API server (STORE_PATH).`,
		Example: "  gstinvoice render -f draft.yaml -o invoice.pdf --logo logo.png",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			d, err := readDraft(file, a.defaultRates(), time.Now())
			if err != nil {
				return err
			}
			if err := billing.ValidateForGeneration(d); err != nil {
				return err
			}

			var assets billing.InvoiceAssets
			if useStore {
				if assets, err = a.storedAssets(ctx); err != nil {
					return err
				}
			}
			if logo != "" {
				if assets.Logo, err = readImage(logo); err != nil {
					return err
				}
			}
			if signature != "" {
				if assets.Signature, err = readImage(signature); err != nil {
					return err
				}
			}

			snap := entity.NewInvoiceSnapshot(a.company(), d.Customer, d.Transportation, d.Invoice, d.Items, d.Rates, d.Totals)
			out, err := pdf.NewMarotoPDFGenerator().GenerateInvoicePDF(ctx, snap, assets)
			if err != nil {
				return err
			}

			if output == "" {
				output = billing.InvoiceFilename(snap.InvoiceNumber)
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write pdf: %w", err)
			}
			a.log.Info().
				Str("invoice", snap.InvoiceNumber).
				Str("grand_total", snap.GrandTotal.StringFixed(2)).
				Str("output", output).
				Msg("invoice rendered")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML draft file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "PDF path (default invoice_<number>.pdf)")
	cmd.Flags().StringVar(&logo, "logo", "", "company logo image (PNG or JPEG)")
	cmd.Flags().StringVar(&signature, "signature", "", "signature image (PNG or JPEG)")
	cmd.Flags().BoolVar(&useStore, "store", false, "use the logo and signature stored by the API server")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readImage(path string) (*billing.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return &billing.Image{ContentType: nethttp.DetectContentType(data), Data: data}, nil
}

func (a *app) storedAssets(ctx context.Context) (billing.InvoiceAssets, error) {
	if _, err := os.Stat(a.cfg.Store.Path); err != nil {
		return billing.InvoiceAssets{}, fmt.Errorf("store %s: %w", a.cfg.Store.Path, err)
	}
	db, err := sqlite.Open(ctx, a.cfg.Store.Path)
	if err != nil {
		return billing.InvoiceAssets{}, err
	}
	defer db.Close()
	uc := billing.NewAssetUseCase(sqlite.NewAssetRepository(sqlite.NewStore(db)), a.log)
	return uc.Load(ctx)
}
