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
	"catalog-builder/utils"
)

// validLayouts is the set of layout types a template may declare
var validLayouts = map[string]bool{
	models.LayoutGrid:     true,
	models.LayoutFeatured: true,
	models.LayoutList:     true,
	models.LayoutShowcase: true,
	models.LayoutCustom:   true,
}

// TemplateController handles HTTP requests for templates
type TemplateController struct {
	repository  repository.TemplateRepositoryInterface
	catalogRepo repository.CatalogRepositoryInterface
}

// NewTemplateController creates a new TemplateController
func NewTemplateController(repo repository.TemplateRepositoryInterface, catalogRepo repository.CatalogRepositoryInterface) *TemplateController {
	return &TemplateController{
		repository:  repo,
		catalogRepo: catalogRepo,
	}
}

// Collection handles /api/templates (POST create, GET list)
func (c *TemplateController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.create(w, r)
	case http.MethodGet:
		c.list(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Item handles /api/templates/{id} (GET, PUT, DELETE)
func (c *TemplateController) Item(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/templates/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		c.get(w, r, id)
	case http.MethodPut:
		c.update(w, r, id)
	case http.MethodDelete:
		c.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (c *TemplateController) create(w http.ResponseWriter, r *http.Request) {
	var template models.Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		log.Printf("❌ CreateTemplate: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(template.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if !validLayouts[template.Layout] {
		http.Error(w, "Invalid layout. Valid layouts: grid, featured, list, showcase, custom", http.StatusBadRequest)
		return
	}

	template.ID = utils.NewID()
	template.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := c.repository.Insert(context.Background(), &template); err != nil {
		http.Error(w, fmt.Sprintf("Failed to create template: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, template)
}

func (c *TemplateController) list(w http.ResponseWriter, r *http.Request) {
	templates, err := c.repository.List(context.Background())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list templates: %v", err), http.StatusInternalServerError)
		return
	}
	if templates == nil {
		templates = []models.Template{}
	}
	writeJSON(w, http.StatusOK, templates)
}

func (c *TemplateController) get(w http.ResponseWriter, r *http.Request, id string) {
	template, err := c.repository.GetByID(context.Background(), id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get template: %v", err), http.StatusInternalServerError)
		return
	}
	if template == nil {
		http.Error(w, "Template not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, template)
}

func (c *TemplateController) update(w http.ResponseWriter, r *http.Request, id string) {
	var template models.Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if !validLayouts[template.Layout] {
		http.Error(w, "Invalid layout. Valid layouts: grid, featured, list, showcase, custom", http.StatusBadRequest)
		return
	}
	template.ID = id

	if err := c.repository.Update(context.Background(), &template); err != nil {
		if strings.Contains(err.Error(), "does not exist") {
			http.Error(w, "Template not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to update template: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, template)
}

// delete refuses to remove a template that catalogs still reference
func (c *TemplateController) delete(w http.ResponseWriter, r *http.Request, id string) {
	ctx := context.Background()

	count, err := c.catalogRepo.CountByTemplate(ctx, id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to check catalog references: %v", err), http.StatusInternalServerError)
		return
	}
	if count > 0 {
		log.Printf("⚠️  DeleteTemplate: template %s still referenced by %d catalog(s)", id, count)
		http.Error(w, fmt.Sprintf("Template is referenced by %d catalog(s); delete them first", count), http.StatusConflict)
		return
	}

	if err := c.repository.Delete(ctx, id); err != nil {
		if strings.Contains(err.Error(), "does not exist") {
			http.Error(w, "Template not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to delete template: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
