package router

import (
	"net/http"

	"catalog-builder/app/controller"
)

type Controllers struct {
	Business *controller.BusinessController
	Product  *controller.ProductController
	Template *controller.TemplateController
	Catalog  *controller.CatalogController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Business routes
	http.HandleFunc("/api/businesses", controllers.Business.Collection)
	http.HandleFunc("/api/businesses/", controllers.Business.Item)

	// Product routes (the Item handler also serves /{id}/image)
	http.HandleFunc("/api/products", controllers.Product.Collection)
	http.HandleFunc("/api/products/", controllers.Product.Item)

	// Template routes
	http.HandleFunc("/api/templates", controllers.Template.Collection)
	http.HandleFunc("/api/templates/", controllers.Template.Item)

	// Catalog routes (the Item handler also serves /{id}/pdf and /{id}/preview)
	http.HandleFunc("/api/catalogs", controllers.Catalog.Collection)
	http.HandleFunc("/api/catalogs/", controllers.Catalog.Item)

	// Generated documents and custom template assets
	http.Handle("/public/", http.StripPrefix("/public/", http.FileServer(http.Dir("public"))))
}
