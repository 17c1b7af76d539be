package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"catalog-builder/db"
	"catalog-builder/models"
)

// BusinessRepository handles database operations for businesses
type BusinessRepository struct{}

// NewBusinessRepository creates a new BusinessRepository
func NewBusinessRepository() *BusinessRepository {
	return &BusinessRepository{}
}

// Ensure BusinessRepository implements BusinessRepositoryInterface
var _ BusinessRepositoryInterface = (*BusinessRepository)(nil)

const businessColumns = `id, name, logo_url, email, phone, address, brand_color,
	default_template_id, default_page_size, default_orientation, created_at`

// Insert creates a new business
func (r *BusinessRepository) Insert(ctx context.Context, business *models.Business) error {
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := db.DB.ExecContext(ctx, query,
		business.ID, business.Name, business.LogoURL, business.Email,
		business.Phone, business.Address, business.BrandColor,
		business.DefaultTemplateID, business.DefaultPageSize,
		business.DefaultOrientation, business.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ Error inserting business: %v", err)
		return fmt.Errorf("failed to insert business: %w", err)
	}

	log.Printf("✓ Business created: id=%s, name=%s", business.ID, business.Name)
	return nil
}

// GetByID retrieves a business by id. Returns (nil, nil) when not found.
func (r *BusinessRepository) GetByID(ctx context.Context, id string) (*models.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	var b models.Business
	err := db.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.LogoURL, &b.Email, &b.Phone, &b.Address,
		&b.BrandColor, &b.DefaultTemplateID, &b.DefaultPageSize,
		&b.DefaultOrientation, &b.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Printf("❌ Error fetching business %s: %v", id, err)
		return nil, fmt.Errorf("failed to get business: %w", err)
	}
	return &b, nil
}

// List retrieves all businesses ordered by name
func (r *BusinessRepository) List(ctx context.Context) ([]models.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses ORDER BY name ASC`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error listing businesses: %v", err)
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer rows.Close()

	var businesses []models.Business
	for rows.Next() {
		var b models.Business
		if err := rows.Scan(
			&b.ID, &b.Name, &b.LogoURL, &b.Email, &b.Phone, &b.Address,
			&b.BrandColor, &b.DefaultTemplateID, &b.DefaultPageSize,
			&b.DefaultOrientation, &b.CreatedAt,
		); err != nil {
			log.Printf("❌ Error scanning business: %v", err)
			continue
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate businesses: %w", err)
	}
	return businesses, nil
}

// Update replaces a business's mutable fields
func (r *BusinessRepository) Update(ctx context.Context, business *models.Business) error {
	query := `
		UPDATE businesses
		SET name = $2, logo_url = $3, email = $4, phone = $5, address = $6,
			brand_color = $7, default_template_id = $8, default_page_size = $9,
			default_orientation = $10
		WHERE id = $1
	`
	result, err := db.DB.ExecContext(ctx, query,
		business.ID, business.Name, business.LogoURL, business.Email,
		business.Phone, business.Address, business.BrandColor,
		business.DefaultTemplateID, business.DefaultPageSize,
		business.DefaultOrientation,
	)
	if err != nil {
		log.Printf("❌ Error updating business %s: %v", business.ID, err)
		return fmt.Errorf("failed to update business: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("business %s does not exist", business.ID)
	}

	log.Printf("✓ Business updated: id=%s", business.ID)
	return nil
}

// Delete removes a business
func (r *BusinessRepository) Delete(ctx context.Context, id string) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Error deleting business %s: %v", id, err)
		return fmt.Errorf("failed to delete business: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("business %s does not exist", id)
	}

	log.Printf("✓ Business deleted: id=%s", id)
	return nil
}
