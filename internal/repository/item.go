package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/calenfir/bazaar/internal/domain"
)

// Item defines the interface for item catalog persistence. Items are
// read-mostly reference data; DeleteItem fails while any slot references
// the item.
type Item interface {
	GetItemByID(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	InsertItem(ctx context.Context, item *domain.Item) error
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}
