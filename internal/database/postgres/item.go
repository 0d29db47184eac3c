package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calenfir/bazaar/internal/domain"
)

// ItemRepository implements the item catalog repository for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// GetItemByID retrieves an item by id
func (r *ItemRepository) GetItemByID(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	query := `
		SELECT item_id, name, description, item_type, price_min::text, price_max::text
		FROM items
		WHERE item_id = $1
	`
	item, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	return item, nil
}

// ListItems returns the full item catalog
func (r *ItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	query := `
		SELECT item_id, name, description, item_type, price_min::text, price_max::text
		FROM items
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// InsertItem creates a catalog item, assigning its id
func (r *ItemRepository) InsertItem(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO items (name, description, item_type, price_min, price_max)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING item_id
	`
	err := r.db.QueryRow(ctx, query,
		item.Name, item.Description, item.Type,
		item.PriceMin.String(), item.PriceMax.String(),
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// UpdateItem updates a catalog item in place
func (r *ItemRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	query := `
		UPDATE items
		SET name = $2, description = $3, item_type = $4, price_min = $5, price_max = $6
		WHERE item_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Type,
		item.PriceMin.String(), item.PriceMax.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// DeleteItem removes an item; the slot foreign key blocks deletion while
// any inventory still references it
func (r *ItemRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE item_id = $1`, itemID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("item still referenced by inventory slots: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	var priceMin, priceMax string
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Type, &priceMin, &priceMax); err != nil {
		return nil, err
	}
	low, err := scanMoney(priceMin)
	if err != nil {
		return nil, err
	}
	high, err := scanMoney(priceMax)
	if err != nil {
		return nil, err
	}
	item.PriceMin = low
	item.PriceMax = high
	return &item, nil
}
