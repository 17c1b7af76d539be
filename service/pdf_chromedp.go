package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// BrowserPDFBackend rasterizes the catalog to PDF via headless Chrome's
// print-to-PDF. A fresh browser process is launched and torn down per render
// call. It prints the orchestrator's rendered HTML, so the PDF matches the
// template's layout and styling.
type BrowserPDFBackend struct{}

// NewBrowserPDFBackend creates a BrowserPDFBackend
func NewBrowserPDFBackend() *BrowserPDFBackend {
	return &BrowserPDFBackend{}
}

// Ensure BrowserPDFBackend implements PDFBackend
var _ PDFBackend = (*BrowserPDFBackend)(nil)

// Name returns the backend identifier used in logs
func (b *BrowserPDFBackend) Name() string {
	return "browser"
}

// detectChromePath detects the path to the Chrome/Chromium executable.
// Checks CHROME_PATH env var first, then common installation paths.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Render prints the catalog to PDF through a headless browser
func (b *BrowserPDFBackend) Render(ctx context.Context, job PDFJob) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	// Navigate to the already-written HTML file when the exporter provides
	// one; otherwise write the HTML to a temp file first. file:// URLs are
	// used because data: URLs choke on large catalogs.
	htmlPath := job.HTMLPath
	if htmlPath == "" {
		tmp, err := os.CreateTemp("", "catalog-print-*.html")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp html: %w", err)
		}
		defer os.Remove(tmp.Name())

		if _, err := tmp.WriteString(job.HTML); err != nil {
			tmp.Close()
			return nil, fmt.Errorf("failed to write temp html: %w", err)
		}
		tmp.Close()
		htmlPath = tmp.Name()
	}

	paperWidth, paperHeight := paperSizeInches(job.Catalog.Settings.PageSize)
	landscape := job.Catalog.Settings.Orientation == "landscape"

	var pdfBuf []byte
	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve html path: %w", err)
	}

	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("file://"+absPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithLandscape(landscape).
				WithDisplayHeaderFooter(job.Catalog.Settings.ShowPageNumbers).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✓ BrowserPDFBackend: generated %d bytes for catalog %s", len(pdfBuf), job.Catalog.ID)
	return pdfBuf, nil
}

// paperSizeInches maps a page size setting to PrintToPDF paper dimensions,
// defaulting to A4
func paperSizeInches(size string) (float64, float64) {
	switch strings.ToLower(strings.TrimSpace(size)) {
	case "letter":
		return 8.5, 11
	case "legal":
		return 8.5, 14
	default: // A4
		return 8.27, 11.69
	}
}

