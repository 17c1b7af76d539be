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

// validImageSizes is the set of renditions the image endpoint serves
var validImageSizes = map[string]bool{
	"thumb":  true,
	"medium": true,
}

// ProductController handles HTTP requests for products
type ProductController struct {
	repository repository.ProductRepositoryInterface
}

// NewProductController creates a new ProductController
func NewProductController(repo repository.ProductRepositoryInterface) *ProductController {
	return &ProductController{
		repository: repo,
	}
}

// Collection handles /api/products (POST create, GET list with optional
// ?businessId= filter)
func (c *ProductController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.create(w, r)
	case http.MethodGet:
		c.list(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Item handles /api/products/{id} and /api/products/{id}/image
func (c *ProductController) Item(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/products/")

	if strings.HasSuffix(path, "/image") {
		c.image(w, r, strings.TrimSuffix(path, "/image"))
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

func (c *ProductController) create(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Printf("❌ CreateProduct: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(product.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(product.BusinessID) == "" {
		http.Error(w, "businessId is required", http.StatusBadRequest)
		return
	}

	product.ID = utils.NewID()
	product.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := c.repository.Insert(context.Background(), &product); err != nil {
		http.Error(w, fmt.Sprintf("Failed to create product: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (c *ProductController) list(w http.ResponseWriter, r *http.Request) {
	businessID := strings.TrimSpace(r.URL.Query().Get("businessId"))
	if businessID == "" {
		http.Error(w, "businessId query parameter is required", http.StatusBadRequest)
		return
	}

	products, err := c.repository.GetByBusiness(context.Background(), businessID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list products: %v", err), http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (c *ProductController) get(w http.ResponseWriter, r *http.Request, id string) {
	product, err := c.repository.GetByID(context.Background(), id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get product: %v", err), http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (c *ProductController) update(w http.ResponseWriter, r *http.Request, id string) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	product.ID = id

	if err := c.repository.Update(context.Background(), &product); err != nil {
		if strings.Contains(err.Error(), "does not exist") {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to update product: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (c *ProductController) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := c.repository.Delete(context.Background(), id); err != nil {
		if strings.Contains(err.Error(), "does not exist") {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to delete product: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// image handles GET /api/products/{id}/image?size=thumb|medium, serving an
// optimized cached JPEG rendition of the product's first image
func (c *ProductController) image(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	size := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("size")))
	if size == "" {
		size = "medium"
	}
	if !validImageSizes[size] {
		http.Error(w, "Invalid size. Valid sizes: thumb, medium", http.StatusBadRequest)
		return
	}

	product, err := c.repository.GetByID(context.Background(), id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get product: %v", err), http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	imageURL := product.FirstImage()
	if imageURL == "" {
		http.Error(w, "Product has no image", http.StatusNotFound)
		return
	}

	data, err := service.OptimizedProductImage(product.ID, imageURL, size)
	if err != nil {
		log.Printf("❌ ProductImage: failed to optimize image for product %s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to load image: %v", err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("❌ ProductImage: error writing response: %v", err)
	}
}
