package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"catalog-builder/utils"

	"github.com/jung-kurt/gofpdf"
)

// DirectPDFBackend draws the catalog straight into a PDF with a paginated
// text/graphics API. It does not consume the rendered HTML; product blocks
// are emitted from the structured fields, auto-paginating when the remaining
// vertical space runs out.
type DirectPDFBackend struct{}

// NewDirectPDFBackend creates a DirectPDFBackend
func NewDirectPDFBackend() *DirectPDFBackend {
	return &DirectPDFBackend{}
}

// Ensure DirectPDFBackend implements PDFBackend
var _ PDFBackend = (*DirectPDFBackend)(nil)

// Name returns the backend identifier used in logs
func (b *DirectPDFBackend) Name() string {
	return "direct"
}

// minimum vertical space left on a page before a product block starts
const blockBreakThreshold = 45.0

// Render draws the catalog into PDF bytes
func (b *DirectPDFBackend) Render(ctx context.Context, job PDFJob) ([]byte, error) {
	orientation := "P"
	if job.Catalog.Settings.Orientation == "landscape" {
		orientation = "L"
	}

	pdf := gofpdf.New(orientation, "mm", normalizePageSize(job.Catalog.Settings.PageSize), "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)

	if job.Catalog.Settings.ShowPageNumbers {
		pdf.SetFooterFunc(func() {
			pdf.SetY(-15)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
		})
	}

	pdf.AddPage()

	// Header: catalog identity
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, tr(job.Catalog.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, tr(job.Business.Name), "", 1, "C", false, 0, "")
	if job.Catalog.Description != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, tr(job.Catalog.Description), "", "C", false)
	}
	pdf.Ln(6)

	_, pageHeight := pdf.GetPageSize()
	_, _, _, marginBottom := pdf.GetMargins()

	for i := range job.Products {
		p := &job.Products[i]

		if pdf.GetY() > pageHeight-marginBottom-blockBreakThreshold {
			pdf.AddPage()
		}

		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, tr(p.Name), "", 1, "L", false, 0, "")

		var meta []string
		if p.SKU != "" {
			meta = append(meta, "SKU: "+p.SKU)
		}
		if p.Price != "" {
			meta = append(meta, utils.FormatPrice(p.Price))
		}
		if len(meta) > 0 {
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(100, 100, 100)
			pdf.CellFormat(0, 6, tr(strings.Join(meta, "   ")), "", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}

		if p.Description != "" {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(p.Description), "", "L", false)
		}

		pdf.Ln(3)
		x, y := pdf.GetX(), pdf.GetY()
		pageWidth, _ := pdf.GetPageSize()
		pdf.SetDrawColor(220, 220, 220)
		pdf.Line(x, y, pageWidth-15, y)
		pdf.Ln(4)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("pdf drawing failed: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to output pdf: %w", err)
	}

	log.Printf("✓ DirectPDFBackend: generated %d bytes for catalog %s", buf.Len(), job.Catalog.ID)
	return buf.Bytes(), nil
}

// normalizePageSize maps a catalog page size setting onto the sizes gofpdf
// accepts, defaulting to A4
func normalizePageSize(size string) string {
	switch strings.ToLower(strings.TrimSpace(size)) {
	case "letter":
		return "Letter"
	case "legal":
		return "Legal"
	case "a3":
		return "A3"
	case "a5":
		return "A5"
	default:
		return "A4"
	}
}
