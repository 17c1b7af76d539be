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

// BusinessController handles HTTP requests for businesses
type BusinessController struct {
	repository  repository.BusinessRepositoryInterface
	catalogRepo repository.CatalogRepositoryInterface
}

// NewBusinessController creates a new BusinessController
func NewBusinessController(repo repository.BusinessRepositoryInterface, catalogRepo repository.CatalogRepositoryInterface) *BusinessController {
	return &BusinessController{
		repository:  repo,
		catalogRepo: catalogRepo,
	}
}

// Collection handles /api/businesses (POST create, GET list)
func (c *BusinessController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.create(w, r)
	case http.MethodGet:
		c.list(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Item handles /api/businesses/{id} (GET, PUT, DELETE)
func (c *BusinessController) Item(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/businesses/")
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

func (c *BusinessController) create(w http.ResponseWriter, r *http.Request) {
	var business models.Business
	if err := json.NewDecoder(r.Body).Decode(&business); err != nil {
		log.Printf("❌ CreateBusiness: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(business.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	business.ID = utils.NewID()
	business.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := c.repository.Insert(context.Background(), &business); err != nil {
		http.Error(w, fmt.Sprintf("Failed to create business: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, business)
}

func (c *BusinessController) list(w http.ResponseWriter, r *http.Request) {
	businesses, err := c.repository.List(context.Background())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list businesses: %v", err), http.StatusInternalServerError)
		return
	}
	if businesses == nil {
		businesses = []models.Business{}
	}
	writeJSON(w, http.StatusOK, businesses)
}

func (c *BusinessController) get(w http.ResponseWriter, r *http.Request, id string) {
	business, err := c.repository.GetByID(context.Background(), id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get business: %v", err), http.StatusInternalServerError)
		return
	}
	if business == nil {
		http.Error(w, "Business not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, business)
}

func (c *BusinessController) update(w http.ResponseWriter, r *http.Request, id string) {
	var business models.Business
	if err := json.NewDecoder(r.Body).Decode(&business); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	business.ID = id

	if err := c.repository.Update(context.Background(), &business); err != nil {
		if strings.Contains(err.Error(), "does not exist") {
			http.Error(w, "Business not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to update business: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, business)
}

// delete refuses to remove a business that catalogs still reference, so a
// catalog can never be left pointing at a missing business
func (c *BusinessController) delete(w http.ResponseWriter, r *http.Request, id string) {
	ctx := context.Background()

	count, err := c.catalogRepo.CountByBusiness(ctx, id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to check catalog references: %v", err), http.StatusInternalServerError)
		return
	}
	if count > 0 {
		log.Printf("⚠️  DeleteBusiness: business %s still referenced by %d catalog(s)", id, count)
		http.Error(w, fmt.Sprintf("Business is referenced by %d catalog(s); delete them first", count), http.StatusConflict)
		return
	}

	if err := c.repository.Delete(ctx, id); err != nil {
		if strings.Contains(err.Error(), "does not exist") {
			http.Error(w, "Business not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to delete business: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Error encoding JSON response: %v", err)
	}
}
