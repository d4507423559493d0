package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/gocatalog/pkg/database"
	"github.com/ghuser/gocatalog/services/catalog/domain"
	"github.com/ghuser/gocatalog/services/catalog/domain/models"
)

// BrandRepository implements repositories.BrandRepository against PostgreSQL.
type BrandRepository struct {
	db *database.Database
}

// NewBrandRepository returns a BrandRepository backed by the given pool.
func NewBrandRepository(database *database.Database) *BrandRepository {
	return &BrandRepository{db: database}
}

// Create inserts a brand and assigns its id.
func (r *BrandRepository) Create(ctx context.Context, brand *models.Brand) error {
	err := r.db.DB().QueryRowContext(ctx,
		`INSERT INTO catalog_brands (label) VALUES ($1) RETURNING id`,
		brand.Label,
	).Scan(&brand.ID)
	if err != nil {
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// GetByID returns a brand or domain.ErrBrandNotFound.
func (r *BrandRepository) GetByID(ctx context.Context, id int64) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, label FROM catalog_brands WHERE id = $1`, id,
	).Scan(&brand.ID, &brand.Label)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, fmt.Errorf("query brand: %w", err)
	}
	return &brand, nil
}

// List returns all brands ordered by ascending id.
func (r *BrandRepository) List(ctx context.Context) ([]models.Brand, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, label FROM catalog_brands ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query brands: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	brands := []models.Brand{}
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.Label); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate brands: %w", err)
	}
	return brands, nil
}

// Delete removes a brand by id. Returns domain.ErrBrandNotFound when no row
// was removed.
func (r *BrandRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM catalog_brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete brand: %w", err)
	} else if n == 0 {
		return domain.ErrBrandNotFound
	}
	return nil
}

// Exists reports whether a brand with the given id exists.
func (r *BrandRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM catalog_brands WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check brand exists: %w", err)
	}
	return exists, nil
}
