package repository

import (
	"context"

	"catalog-builder/models"
)

// BusinessRepositoryInterface defines the contract for business storage.
// Lookups return (nil, nil) when the entity does not exist.
type BusinessRepositoryInterface interface {
	Insert(ctx context.Context, business *models.Business) error
	GetByID(ctx context.Context, id string) (*models.Business, error)
	List(ctx context.Context) ([]models.Business, error)
	Update(ctx context.Context, business *models.Business) error
	Delete(ctx context.Context, id string) error
}

// ProductRepositoryInterface defines the contract for product storage
type ProductRepositoryInterface interface {
	Insert(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByBusiness(ctx context.Context, businessID string) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

// TemplateRepositoryInterface defines the contract for template storage.
// Saving a template with IsDefault set clears the flag on the business's
// other templates.
type TemplateRepositoryInterface interface {
	Insert(ctx context.Context, template *models.Template) error
	GetByID(ctx context.Context, id string) (*models.Template, error)
	List(ctx context.Context) ([]models.Template, error)
	Update(ctx context.Context, template *models.Template) error
	Delete(ctx context.Context, id string) error
}

// CatalogRepositoryInterface defines the contract for catalog storage.
// ApplyRenderResult persists the status/pdfUrl side effects of the render
// pipeline.
type CatalogRepositoryInterface interface {
	Insert(ctx context.Context, catalog *models.Catalog) error
	GetByID(ctx context.Context, id string) (*models.Catalog, error)
	List(ctx context.Context, businessID string) ([]models.Catalog, error)
	Update(ctx context.Context, catalog *models.Catalog) error
	ApplyRenderResult(ctx context.Context, id string, update models.CatalogUpdate) (*models.Catalog, error)
	Delete(ctx context.Context, id string) error
	CountByBusiness(ctx context.Context, businessID string) (int, error)
	CountByTemplate(ctx context.Context, templateID string) (int, error)
}
