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

// TemplateRepository handles database operations for templates
type TemplateRepository struct{}

// NewTemplateRepository creates a new TemplateRepository
func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{}
}

// Ensure TemplateRepository implements TemplateRepositoryInterface
var _ TemplateRepositoryInterface = (*TemplateRepository)(nil)

const templateColumns = `id, business_id, name, description, layout, config, is_default, created_at`

// Insert creates a new template. When IsDefault is set, the flag is cleared
// on the business's other templates in the same transaction so at most one
// default exists per business.
func (r *TemplateRepository) Insert(ctx context.Context, template *models.Template) error {
	config, err := json.Marshal(template.Config)
	if err != nil {
		return fmt.Errorf("failed to encode template config: %w", err)
	}

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if template.IsDefault {
		if err := clearDefaultFlag(ctx, tx, template.BusinessID, template.ID); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO templates (` + templateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.ExecContext(ctx, query,
		template.ID, template.BusinessID, template.Name, template.Description,
		template.Layout, config, template.IsDefault, template.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ Error inserting template: %v", err)
		return fmt.Errorf("failed to insert template: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✓ Template created: id=%s, name=%s, layout=%s", template.ID, template.Name, template.Layout)
	return nil
}

// GetByID retrieves a template by id. Returns (nil, nil) when not found.
func (r *TemplateRepository) GetByID(ctx context.Context, id string) (*models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE id = $1`

	t, err := scanTemplate(db.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Printf("❌ Error fetching template %s: %v", id, err)
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return t, nil
}

// List retrieves all templates ordered by name
func (r *TemplateRepository) List(ctx context.Context) ([]models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates ORDER BY name ASC`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error listing templates: %v", err)
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			log.Printf("❌ Error scanning template: %v", err)
			continue
		}
		templates = append(templates, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate templates: %w", err)
	}
	return templates, nil
}

// Update replaces a template's mutable fields, keeping the single-default
// invariant when IsDefault is set
func (r *TemplateRepository) Update(ctx context.Context, template *models.Template) error {
	config, err := json.Marshal(template.Config)
	if err != nil {
		return fmt.Errorf("failed to encode template config: %w", err)
	}

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if template.IsDefault {
		if err := clearDefaultFlag(ctx, tx, template.BusinessID, template.ID); err != nil {
			return err
		}
	}

	query := `
		UPDATE templates
		SET name = $2, description = $3, layout = $4, config = $5, is_default = $6
		WHERE id = $1
	`
	result, err := tx.ExecContext(ctx, query,
		template.ID, template.Name, template.Description, template.Layout,
		config, template.IsDefault,
	)
	if err != nil {
		log.Printf("❌ Error updating template %s: %v", template.ID, err)
		return fmt.Errorf("failed to update template: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("template %s does not exist", template.ID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✓ Template updated: id=%s", template.ID)
	return nil
}

// Delete removes a template
func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Error deleting template %s: %v", id, err)
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("template %s does not exist", id)
	}

	log.Printf("✓ Template deleted: id=%s", id)
	return nil
}

func clearDefaultFlag(ctx context.Context, tx *sql.Tx, businessID, exceptID string) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE templates SET is_default = false WHERE business_id = $1 AND id != $2`,
		businessID, exceptID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear default template flag: %w", err)
	}
	return nil
}

func scanTemplate(row rowScanner) (*models.Template, error) {
	var t models.Template
	var config []byte

	err := row.Scan(
		&t.ID, &t.BusinessID, &t.Name, &t.Description, &t.Layout,
		&config, &t.IsDefault, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(config) > 0 {
		if err := json.Unmarshal(config, &t.Config); err != nil {
			return nil, fmt.Errorf("failed to decode template config: %w", err)
		}
	}
	return &t, nil
}
