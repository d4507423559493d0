package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/gocatalog/pkg/database"
	"github.com/ghuser/gocatalog/pkg/events"
	"github.com/ghuser/gocatalog/services/catalog/domain"
	domainevents "github.com/ghuser/gocatalog/services/catalog/domain/events"
	"github.com/ghuser/gocatalog/services/catalog/domain/models"
)

const projectionColumns = `
	i.id, i.name, i.slug, i.description,
	i.brand_id, b.label, i.category_id, c.label,
	i.price, i.available_stock, i.max_stock_threshold
FROM catalog_items i
JOIN catalog_brands b ON b.id = i.brand_id
JOIN catalog_categories c ON c.id = i.category_id`

const (
	insertItemSQL = `
INSERT INTO catalog_items
	(name, description, price, available_stock, max_stock_threshold, slug, brand_id, category_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

	updateItemSQL = `
UPDATE catalog_items
SET name = $2, description = $3, slug = $4, brand_id = $5, category_id = $6
WHERE id = $1`

	updateThresholdSQL = `
UPDATE catalog_items SET max_stock_threshold = $2 WHERE id = $1`

	getItemSQL = `
SELECT id, name, description, price, available_stock, max_stock_threshold, slug, brand_id, category_id
FROM catalog_items WHERE id = $1`

	getProjectionSQL = `SELECT ` + projectionColumns + ` WHERE i.id = $1`

	listProjectionsSQL = `SELECT ` + projectionColumns + ` ORDER BY i.id ASC`

	deleteItemSQL = `DELETE FROM catalog_items WHERE id = $1`

	slugExistsSQL = `
SELECT EXISTS (SELECT 1 FROM catalog_items WHERE slug = $1 AND id <> $2)`
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. The bus publishes item integration events inside the
// write transaction (transactional outbox).
func NewItemRepository(database *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: database, bus: bus}
}

// Create inserts a new item, re-reads its projection and publishes
// ItemAddedEvent, all within one transaction. A unique violation on the slug
// index becomes domain.ErrDuplicateSlug.
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) (*models.ItemProjection, error) {
	var proj *models.ItemProjection
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, insertItemSQL,
			item.Name, item.Description, item.Price,
			item.AvailableStock, item.MaxStockThreshold,
			item.Slug, item.BrandID, item.CategoryID,
		).Scan(&item.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %q", domain.ErrDuplicateSlug, item.Slug)
			}
			return fmt.Errorf("insert item: %w", err)
		}

		proj, err = scanProjection(tx.QueryRowContext(ctx, getProjectionSQL, item.ID))
		if err != nil {
			return fmt.Errorf("read projection: %w", err)
		}

		if r.bus != nil {
			if err := r.publishAdded(ctx, tx, proj); err != nil {
				return fmt.Errorf("publish item added: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return proj, nil
}

// Update rewrites an existing item, re-reads its projection and publishes
// ItemChangedEvent, all within one transaction.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) (*models.ItemProjection, error) {
	var proj *models.ItemProjection
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, updateItemSQL,
			item.ID, item.Name, item.Description,
			item.Slug, item.BrandID, item.CategoryID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %q", domain.ErrDuplicateSlug, item.Slug)
			}
			return fmt.Errorf("update item: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("update item: %w", err)
		} else if n == 0 {
			return domain.ErrItemNotFound
		}

		proj, err = scanProjection(tx.QueryRowContext(ctx, getProjectionSQL, item.ID))
		if err != nil {
			return fmt.Errorf("read projection: %w", err)
		}

		if r.bus != nil {
			if err := r.publishChanged(ctx, tx, proj); err != nil {
				return fmt.Errorf("publish item changed: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return proj, nil
}

// UpdateMaxStockThreshold persists only the stock ceiling. No event.
func (r *ItemRepository) UpdateMaxStockThreshold(ctx context.Context, item *models.Item) error {
	res, err := r.db.DB().ExecContext(ctx, updateThresholdSQL, item.ID, item.MaxStockThreshold)
	if err != nil {
		return fmt.Errorf("update threshold: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("update threshold: %w", err)
	} else if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// FindByID loads the raw aggregate. Returns domain.ErrItemNotFound if no
// row matches.
func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	err := r.db.DB().QueryRowContext(ctx, getItemSQL, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price,
		&item.AvailableStock, &item.MaxStockThreshold,
		&item.Slug, &item.BrandID, &item.CategoryID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return &item, nil
}

// GetByID returns the flattened projection with resolved labels.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.ItemProjection, error) {
	proj, err := scanProjection(r.db.DB().QueryRowContext(ctx, getProjectionSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query projection: %w", err)
	}
	return proj, nil
}

// List returns every projection ordered by ascending id.
func (r *ItemRepository) List(ctx context.Context) ([]models.ItemProjection, error) {
	rows, err := r.db.DB().QueryContext(ctx, listProjectionsSQL)
	if err != nil {
		return nil, fmt.Errorf("query projections: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	projs := []models.ItemProjection{}
	for rows.Next() {
		var p models.ItemProjection
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Description,
			&p.BrandID, &p.BrandLabel, &p.CategoryID, &p.CategoryLabel,
			&p.Price, &p.AvailableStock, &p.MaxStockThreshold,
		); err != nil {
			return nil, fmt.Errorf("scan projection: %w", err)
		}
		projs = append(projs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projections: %w", err)
	}
	return projs, nil
}

// Delete hard-deletes an item. Returns domain.ErrItemNotFound when no row
// was removed.
func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.DB().ExecContext(ctx, deleteItemSQL, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete item: %w", err)
	} else if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// SlugExists reports whether any item other than excludeID owns slug.
func (r *ItemRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	if err := r.db.DB().QueryRowContext(ctx, slugExistsSQL, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check slug exists: %w", err)
	}
	return exists, nil
}

func (r *ItemRepository) publishAdded(ctx context.Context, tx *sql.Tx, proj *models.ItemProjection) error {
	event := domainevents.ItemAddedEvent{
		EventID:       uuid.New(),
		Version:       1,
		ItemID:        proj.ID,
		Name:          proj.Name,
		Description:   proj.Description,
		CategoryLabel: proj.CategoryLabel,
		BrandLabel:    proj.BrandLabel,
		Slug:          proj.Slug,
		Locator:       domainevents.ItemLocator(proj.ID),
		OccurredAt:    time.Now().UTC(),
	}
	return r.publish(ctx, tx, domainevents.TopicItemAdded, event.EventID, event)
}

func (r *ItemRepository) publishChanged(ctx context.Context, tx *sql.Tx, proj *models.ItemProjection) error {
	event := domainevents.ItemChangedEvent{
		EventID:       uuid.New(),
		Version:       1,
		ItemID:        proj.ID,
		Name:          proj.Name,
		Description:   proj.Description,
		CategoryLabel: proj.CategoryLabel,
		BrandLabel:    proj.BrandLabel,
		Slug:          proj.Slug,
		OccurredAt:    time.Now().UTC(),
	}
	return r.publish(ctx, tx, domainevents.TopicItemChanged, event.EventID, event)
}

func (r *ItemRepository) publish(ctx context.Context, tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	events.InjectTraceContext(ctx, msg)
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

func scanProjection(row *sql.Row) (*models.ItemProjection, error) {
	var p models.ItemProjection
	if err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description,
		&p.BrandID, &p.BrandLabel, &p.CategoryID, &p.CategoryLabel,
		&p.Price, &p.AvailableStock, &p.MaxStockThreshold,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// isUniqueViolation reports whether err is a PostgreSQL 23505 unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
