package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"catalog-builder/models"
	"catalog-builder/repository"
	"catalog-builder/service"
	"catalog-builder/utils"
)

// CatalogController handles HTTP requests for catalogs, including the
// render/export entry points
type CatalogController struct {
	repository    repository.CatalogRepositoryInterface
	exportService *service.ExportService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(repo repository.CatalogRepositoryInterface, exportService *service.ExportService) *CatalogController {
	return &CatalogController{
		repository:    repo,
		exportService: exportService,
	}
}

// Collection handles /api/catalogs (POST create, GET list with optional
// ?businessId= filter)
func (c *CatalogController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.create(w, r)
	case http.MethodGet:
		c.list(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Item handles /api/catalogs/{id}, /api/catalogs/{id}/pdf and
// /api/catalogs/{id}/preview
func (c *CatalogController) Item(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/catalogs/")

	// Route to specific actions first
	if strings.HasSuffix(path, "/pdf") {
		c.exportPDF(w, r, strings.TrimSuffix(path, "/pdf"))
		return
	}
	if strings.HasSuffix(path, "/preview") {
		c.preview(w, r, strings.TrimSuffix(path, "/preview"))
		return
	}

	if path == "" || strings.Contains(path, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		c.get(w, r, path)
	case http.MethodPut:
		c.update(w, r, path)
	case http.MethodDelete:
		c.delete(w, r, path)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (c *CatalogController) create(w http.ResponseWriter, r *http.Request) {
	var catalog models.Catalog
	if err := json.NewDecoder(r.Body).Decode(&catalog); err != nil {
		log.Printf("❌ CreateCatalog: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(catalog.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(catalog.BusinessID) == "" {
		http.Error(w, "businessId is required", http.StatusBadRequest)
		return
	}

	catalog.ID = utils.NewID()
	catalog.Status = models.StatusDraft
	now := time.Now().UTC().Format(time.RFC3339)
	catalog.CreatedAt = now
	catalog.UpdatedAt = now

	if err := c.repository.Insert(context.Background(), &catalog); err != nil {
		http.Error(w, fmt.Sprintf("Failed to create catalog: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, catalog)
}

func (c *CatalogController) list(w http.ResponseWriter, r *http.Request) {
	businessID := strings.TrimSpace(r.URL.Query().Get("businessId"))

	catalogs, err := c.repository.List(context.Background(), businessID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list catalogs: %v", err), http.StatusInternalServerError)
		return
	}
	if catalogs == nil {
		catalogs = []models.Catalog{}
	}
	writeJSON(w, http.StatusOK, catalogs)
}

func (c *CatalogController) get(w http.ResponseWriter, r *http.Request, id string) {
	catalog, err := c.repository.GetByID(context.Background(), id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get catalog: %v", err), http.StatusInternalServerError)
		return
	}
	if catalog == nil {
		http.Error(w, "Catalog not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

func (c *CatalogController) update(w http.ResponseWriter, r *http.Request, id string) {
	var catalog models.Catalog
	if err := json.NewDecoder(r.Body).Decode(&catalog); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	catalog.ID = id

	if err := c.repository.Update(context.Background(), &catalog); err != nil {
		if strings.Contains(err.Error(), "does not exist") {
			http.Error(w, "Catalog not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to update catalog: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, catalog)
}

func (c *CatalogController) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := c.repository.Delete(context.Background(), id); err != nil {
		if strings.Contains(err.Error(), "does not exist") {
			http.Error(w, "Catalog not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to delete catalog: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// exportPDF handles GET /api/catalogs/{id}/pdf: the full export pipeline.
// The response always carries a usable deliverable URL; a degraded (HTML
// only) result sets the error field instead of failing the request.
func (c *CatalogController) exportPDF(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	log.Printf("📄 ExportPDF: catalog=%s", id)

	result, err := c.exportService.ExportCatalog(context.Background(), id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, fmt.Sprintf("Catalog not found: %v", err), http.StatusNotFound)
			return
		}
		log.Printf("❌ ExportPDF: export failed for catalog %s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to export catalog: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// preview handles GET /api/catalogs/{id}/preview, returning the
// orchestrator's HTML directly
func (c *CatalogController) preview(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	html, _, _, _, _, err := c.exportService.RenderHTML(context.Background(), id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, fmt.Sprintf("Catalog not found: %v", err), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to render catalog: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("❌ Preview: error writing HTML response: %v", err)
	}
}
