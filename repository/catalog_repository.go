package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"catalog-builder/db"
	"catalog-builder/models"
)

// CatalogRepository handles database operations for catalogs
type CatalogRepository struct{}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

const catalogColumns = `id, business_id, template_id, name, description,
	product_ids, status, settings, pdf_url, created_at, updated_at`

// Insert creates a new catalog
func (r *CatalogRepository) Insert(ctx context.Context, catalog *models.Catalog) error {
	productIDs, settings, err := marshalCatalogFields(catalog)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO catalogs (` + catalogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = db.DB.ExecContext(ctx, query,
		catalog.ID, catalog.BusinessID, catalog.TemplateID, catalog.Name,
		catalog.Description, productIDs, catalog.Status, settings,
		catalog.PDFURL, catalog.CreatedAt, catalog.UpdatedAt,
	)
	if err != nil {
		log.Printf("❌ Error inserting catalog: %v", err)
		return fmt.Errorf("failed to insert catalog: %w", err)
	}

	log.Printf("✓ Catalog created: id=%s, name=%s", catalog.ID, catalog.Name)
	return nil
}

// GetByID retrieves a catalog by id. Returns (nil, nil) when not found.
func (r *CatalogRepository) GetByID(ctx context.Context, id string) (*models.Catalog, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalogs WHERE id = $1`

	c, err := scanCatalog(db.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Printf("❌ Error fetching catalog %s: %v", id, err)
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}
	return c, nil
}

// List retrieves catalogs, optionally filtered by business
func (r *CatalogRepository) List(ctx context.Context, businessID string) ([]models.Catalog, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalogs`
	args := []interface{}{}
	if businessID != "" {
		query += ` WHERE business_id = $1`
		args = append(args, businessID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ Error listing catalogs: %v", err)
		return nil, fmt.Errorf("failed to list catalogs: %w", err)
	}
	defer rows.Close()

	var catalogs []models.Catalog
	for rows.Next() {
		c, err := scanCatalog(rows)
		if err != nil {
			log.Printf("❌ Error scanning catalog: %v", err)
			continue
		}
		catalogs = append(catalogs, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalogs: %w", err)
	}
	return catalogs, nil
}

// Update replaces a catalog's mutable fields
func (r *CatalogRepository) Update(ctx context.Context, catalog *models.Catalog) error {
	productIDs, settings, err := marshalCatalogFields(catalog)
	if err != nil {
		return err
	}

	query := `
		UPDATE catalogs
		SET template_id = $2, name = $3, description = $4, product_ids = $5,
			status = $6, settings = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := db.DB.ExecContext(ctx, query,
		catalog.ID, catalog.TemplateID, catalog.Name, catalog.Description,
		productIDs, catalog.Status, settings, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		log.Printf("❌ Error updating catalog %s: %v", catalog.ID, err)
		return fmt.Errorf("failed to update catalog: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("catalog %s does not exist", catalog.ID)
	}

	log.Printf("✓ Catalog updated: id=%s", catalog.ID)
	return nil
}

// ApplyRenderResult persists the status/pdfUrl fields the render pipeline
// mutates, leaving everything else untouched. Returns the updated catalog,
// or (nil, nil) when the catalog does not exist.
func (r *CatalogRepository) ApplyRenderResult(ctx context.Context, id string, update models.CatalogUpdate) (*models.Catalog, error) {
	query := `
		UPDATE catalogs
		SET status = COALESCE($2, status),
			pdf_url = COALESCE($3, pdf_url),
			updated_at = $4
		WHERE id = $1
	`
	result, err := db.DB.ExecContext(ctx, query,
		id, update.Status, update.PDFURL, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		log.Printf("❌ Error applying render result to catalog %s: %v", id, err)
		return nil, fmt.Errorf("failed to update catalog: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, nil
	}

	return r.GetByID(ctx, id)
}

// Delete removes a catalog
func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM catalogs WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Error deleting catalog %s: %v", id, err)
		return fmt.Errorf("failed to delete catalog: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("catalog %s does not exist", id)
	}

	log.Printf("✓ Catalog deleted: id=%s", id)
	return nil
}

// CountByBusiness returns the number of catalogs referencing a business.
// Used to refuse business deletion while referenced.
func (r *CatalogRepository) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	var count int
	err := db.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM catalogs WHERE business_id = $1`, businessID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count catalogs for business: %w", err)
	}
	return count, nil
}

// CountByTemplate returns the number of catalogs referencing a template.
// Used to refuse template deletion while referenced.
func (r *CatalogRepository) CountByTemplate(ctx context.Context, templateID string) (int, error) {
	var count int
	err := db.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM catalogs WHERE template_id = $1`, templateID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count catalogs for template: %w", err)
	}
	return count, nil
}

func scanCatalog(row rowScanner) (*models.Catalog, error) {
	var c models.Catalog
	var productIDs, settings []byte

	err := row.Scan(
		&c.ID, &c.BusinessID, &c.TemplateID, &c.Name, &c.Description,
		&productIDs, &c.Status, &settings, &c.PDFURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(productIDs) > 0 {
		if err := json.Unmarshal(productIDs, &c.ProductIDs); err != nil {
			return nil, fmt.Errorf("failed to decode catalog product ids: %w", err)
		}
	}
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &c.Settings); err != nil {
			return nil, fmt.Errorf("failed to decode catalog settings: %w", err)
		}
	}
	return &c, nil
}

func marshalCatalogFields(catalog *models.Catalog) ([]byte, []byte, error) {
	productIDs, err := json.Marshal(catalog.ProductIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode catalog product ids: %w", err)
	}
	settings, err := json.Marshal(catalog.Settings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode catalog settings: %w", err)
	}
	return productIDs, settings, nil
}
