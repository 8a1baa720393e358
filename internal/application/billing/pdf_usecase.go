package billing

import (
	"context"
	"fmt"
	"regexp"
)

// PDFUseCase renders the last generated invoice.
type PDFUseCase struct {
	invoices  *InvoiceUseCase
	assets    *AssetUseCase
	generator InvoicePDFGenerator
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(invoices *InvoiceUseCase, assets *AssetUseCase, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, assets: assets, generator: generator}
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// DownloadPDF returns the PDF bytes and a download filename.
//
// Returns:
//   - domain.ErrNotFound if no invoice was generated yet.
func (uc *PDFUseCase) DownloadPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	snap, err := uc.invoices.Current(ctx)
	if err != nil {
		return nil, "", err
	}
	assets, err := uc.assets.Load(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load assets: %w", err)
	}
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, snap, assets)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generation failed: %w", err)
	}
	return pdfBytes, InvoiceFilename(snap.InvoiceNumber), nil
}

// InvoiceFilename builds "invoice_<number>.pdf" with path-unsafe characters replaced.
func InvoiceFilename(number string) string {
	safe := unsafeFilenameChars.ReplaceAllString(number, "_")
	if safe == "" {
		safe = "draft"
	}
	return "invoice_" + safe + ".pdf"
}
