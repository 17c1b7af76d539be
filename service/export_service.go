package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"catalog-builder/models"
	"catalog-builder/render"
	"catalog-builder/repository"
)

// PDFJob carries everything a PDF backend may need: the rendered HTML plus
// the structured catalog data for backends that draw directly.
type PDFJob struct {
	Catalog  models.Catalog
	Products []models.Product
	Template models.Template
	Business models.Business
	HTML     string
	HTMLPath string
}

// PDFBackend is a single PDF renderer. Backends are tried in order; the
// first success short-circuits the chain.
type PDFBackend interface {
	Name() string
	Render(ctx context.Context, job PDFJob) ([]byte, error)
}

// ExportService is the document exporter: it renders a catalog to HTML,
// converts it to PDF through an ordered backend chain, and persists the
// resulting status/pdfUrl on the catalog. The HTML file is always written;
// if every PDF backend fails, the HTML path becomes the deliverable.
type ExportService struct {
	catalogRepo  repository.CatalogRepositoryInterface
	productRepo  repository.ProductRepositoryInterface
	templateRepo repository.TemplateRepositoryInterface
	businessRepo repository.BusinessRepositoryInterface
	orchestrator *render.Orchestrator
	backends     []PDFBackend
	driveService DriveServiceInterface // optional, nil disables publishing
	generatedDir string
	publicPrefix string
}

// NewExportService creates an ExportService
func NewExportService(
	catalogRepo repository.CatalogRepositoryInterface,
	productRepo repository.ProductRepositoryInterface,
	templateRepo repository.TemplateRepositoryInterface,
	businessRepo repository.BusinessRepositoryInterface,
	orchestrator *render.Orchestrator,
	backends []PDFBackend,
	driveService DriveServiceInterface,
	generatedDir string,
) *ExportService {
	return &ExportService{
		catalogRepo:  catalogRepo,
		productRepo:  productRepo,
		templateRepo: templateRepo,
		businessRepo: businessRepo,
		orchestrator: orchestrator,
		backends:     backends,
		driveService: driveService,
		generatedDir: generatedDir,
		publicPrefix: "/public/generated",
	}
}

// RenderHTML loads a catalog's collaborators and produces its HTML through
// the orchestrator. Used by the preview endpoint and as step one of an
// export.
func (s *ExportService) RenderHTML(ctx context.Context, catalogID string) (string, *models.Catalog, []models.Product, *models.Template, *models.Business, error) {
	catalog, err := s.catalogRepo.GetByID(ctx, catalogID)
	if err != nil {
		return "", nil, nil, nil, nil, err
	}
	if catalog == nil {
		return "", nil, nil, nil, nil, fmt.Errorf("catalog %s not found", catalogID)
	}

	template := s.resolveTemplate(ctx, catalog.TemplateID)
	business := s.resolveBusiness(ctx, catalog.BusinessID)
	products := s.resolveProducts(ctx, catalog)

	html := s.orchestrator.Render(*catalog, products, *template, *business)
	return html, catalog, products, template, business, nil
}

// ExportCatalog is the render entry point: it produces the HTML and PDF
// files for a catalog, flips its status to published, and reports the
// resulting URLs. A PDF failure degrades to the HTML deliverable with the
// error noted in the result; only a missing catalog is a terminal error.
func (s *ExportService) ExportCatalog(ctx context.Context, catalogID string) (*models.ExportResult, error) {
	html, catalog, products, template, business, err := s.RenderHTML(ctx, catalogID)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.generatedDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create generated directory: %w", err)
	}

	// Every render writes new timestamped files; outputs are never updated
	// in place.
	base := fmt.Sprintf("catalog_%s_%d", catalog.ID, time.Now().UnixNano())
	htmlPath := filepath.Join(s.generatedDir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		return nil, fmt.Errorf("failed to write html: %w", err)
	}
	log.Printf("✓ ExportCatalog: wrote %s (%d products)", htmlPath, len(products))

	job := PDFJob{
		Catalog:  *catalog,
		Products: products,
		Template: *template,
		Business: *business,
		HTML:     html,
		HTMLPath: htmlPath,
	}

	result := &models.ExportResult{
		HTMLURL:      s.publicPrefix + "/" + base + ".html",
		ProductCount: len(products),
	}

	pdfPath := filepath.Join(s.generatedDir, base+".pdf")
	pdfData, backendErr := s.renderPDF(ctx, job)
	if backendErr == nil {
		if err := os.WriteFile(pdfPath, pdfData, 0644); err != nil {
			backendErr = fmt.Errorf("failed to write pdf: %w", err)
		}
	}

	deliverable := pdfPath
	if backendErr != nil {
		// HTML fallback: still published, explicitly flagged as degraded
		log.Printf("⚠️  ExportCatalog: PDF generation failed for catalog %s, serving HTML fallback: %v", catalog.ID, backendErr)
		deliverable = htmlPath
		result.Error = fmt.Sprintf("pdf generation failed, html fallback used: %v", backendErr)
	} else {
		result.PDFURL = s.publicPrefix + "/" + base + ".pdf"
	}

	status := models.StatusPublished
	pdfURL := s.publicPrefix + "/" + filepath.Base(deliverable)
	if _, err := s.catalogRepo.ApplyRenderResult(ctx, catalog.ID, models.CatalogUpdate{
		Status: &status,
		PDFURL: &pdfURL,
	}); err != nil {
		log.Printf("❌ ExportCatalog: failed to persist render result for catalog %s: %v", catalog.ID, err)
	}

	if s.driveService != nil {
		mimeType := "application/pdf"
		if backendErr != nil {
			mimeType = "text/html"
		}
		link, err := s.driveService.UploadGeneratedFile(ctx, deliverable, mimeType)
		if err != nil {
			log.Printf("⚠️  ExportCatalog: drive upload failed for catalog %s: %v", catalog.ID, err)
		} else {
			result.DriveURL = link
		}
	}

	return result, nil
}

// renderPDF tries each backend in order, returning the first success
func (s *ExportService) renderPDF(ctx context.Context, job PDFJob) ([]byte, error) {
	var lastErr error
	for _, backend := range s.backends {
		data, err := backend.Render(ctx, job)
		if err == nil {
			return data, nil
		}
		log.Printf("⚠️  renderPDF: backend %s failed for catalog %s: %v", backend.Name(), job.Catalog.ID, err)
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no pdf backends configured")
	}
	return nil, lastErr
}

// resolveTemplate loads the catalog's template, falling back to a plain grid
// template when the id is missing or dangling
func (s *ExportService) resolveTemplate(ctx context.Context, templateID string) *models.Template {
	if templateID != "" {
		template, err := s.templateRepo.GetByID(ctx, templateID)
		if err != nil {
			log.Printf("⚠️  resolveTemplate: error fetching template %s: %v", templateID, err)
		} else if template != nil {
			return template
		}
	}
	log.Printf("⚠️  resolveTemplate: template %q not found, using default grid", templateID)
	return &models.Template{
		Name:   "Default",
		Layout: models.LayoutGrid,
		Config: models.LayoutConfig{
			Columns:         2,
			ShowPrice:       true,
			ShowSKU:         true,
			ShowDescription: true,
		},
	}
}

// resolveBusiness loads the catalog's business, degrading to a blank
// identity when missing
func (s *ExportService) resolveBusiness(ctx context.Context, businessID string) *models.Business {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		log.Printf("⚠️  resolveBusiness: error fetching business %s: %v", businessID, err)
	}
	if business == nil {
		return &models.Business{}
	}
	return business
}

// resolveProducts loads all products for the catalog's business and keeps
// only the active ones the catalog references, preserving the catalog's
// order. Ids pointing at foreign-business products silently drop.
func (s *ExportService) resolveProducts(ctx context.Context, catalog *models.Catalog) []models.Product {
	all, err := s.productRepo.GetByBusiness(ctx, catalog.BusinessID)
	if err != nil {
		log.Printf("❌ resolveProducts: error fetching products for business %s: %v", catalog.BusinessID, err)
		return nil
	}

	byID := make(map[string]models.Product, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	var products []models.Product
	for _, id := range catalog.ProductIDs {
		p, ok := byID[id]
		if !ok || !p.Active {
			continue
		}
		products = append(products, p)
	}
	return products
}
