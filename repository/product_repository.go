package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"catalog-builder/db"
	"catalog-builder/models"
)

// ProductRepository handles database operations for products.
// List-valued fields (images, tags, variations) are stored as JSONB.
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

const productColumns = `id, business_id, name, sku, price, description,
	images, category, tags, variations, is_active, created_at`

// Insert creates a new product
func (r *ProductRepository) Insert(ctx context.Context, product *models.Product) error {
	images, tags, variations, err := marshalProductLists(product)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = db.DB.ExecContext(ctx, query,
		product.ID, product.BusinessID, product.Name, product.SKU,
		product.Price, product.Description, images, product.Category,
		tags, variations, product.Active, product.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ Error inserting product: %v", err)
		return fmt.Errorf("failed to insert product: %w", err)
	}

	log.Printf("✓ Product created: id=%s, name=%s, business=%s", product.ID, product.Name, product.BusinessID)
	return nil
}

// GetByID retrieves a product by id. Returns (nil, nil) when not found.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(db.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Printf("❌ Error fetching product %s: %v", id, err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

// GetByBusiness retrieves all products belonging to a business, in creation
// order. This is the query the render pipeline filters catalog product ids
// against.
func (r *ProductRepository) GetByBusiness(ctx context.Context, businessID string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE business_id = $1 ORDER BY created_at ASC`

	rows, err := db.DB.QueryContext(ctx, query, businessID)
	if err != nil {
		log.Printf("❌ Error querying products for business %s: %v", businessID, err)
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Printf("❌ Error scanning product: %v", err)
			continue
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	log.Printf("✓ Fetched %d products for business %s", len(products), businessID)
	return products, nil
}

// Update replaces a product's mutable fields
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	images, tags, variations, err := marshalProductLists(product)
	if err != nil {
		return err
	}

	query := `
		UPDATE products
		SET name = $2, sku = $3, price = $4, description = $5, images = $6,
			category = $7, tags = $8, variations = $9, is_active = $10
		WHERE id = $1
	`
	result, err := db.DB.ExecContext(ctx, query,
		product.ID, product.Name, product.SKU, product.Price,
		product.Description, images, product.Category, tags, variations,
		product.Active,
	)
	if err != nil {
		log.Printf("❌ Error updating product %s: %v", product.ID, err)
		return fmt.Errorf("failed to update product: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("product %s does not exist", product.ID)
	}

	log.Printf("✓ Product updated: id=%s", product.ID)
	return nil
}

// Delete removes a product
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Error deleting product %s: %v", id, err)
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("product %s does not exist", id)
	}

	log.Printf("✓ Product deleted: id=%s", id)
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	var images, tags, variations []byte

	err := row.Scan(
		&p.ID, &p.BusinessID, &p.Name, &p.SKU, &p.Price, &p.Description,
		&images, &p.Category, &tags, &variations, &p.Active, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, fmt.Errorf("failed to decode product images: %w", err)
		}
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &p.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode product tags: %w", err)
		}
	}
	if len(variations) > 0 {
		if err := json.Unmarshal(variations, &p.Variations); err != nil {
			return nil, fmt.Errorf("failed to decode product variations: %w", err)
		}
	}
	return &p, nil
}

func marshalProductLists(product *models.Product) ([]byte, []byte, []byte, error) {
	images, err := json.Marshal(product.Images)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode product images: %w", err)
	}
	tags, err := json.Marshal(product.Tags)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode product tags: %w", err)
	}
	variations, err := json.Marshal(product.Variations)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode product variations: %w", err)
	}
	return images, tags, variations, nil
}
