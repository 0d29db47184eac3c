package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/calenfir/bazaar/internal/domain"
)

// Shop defines the interface for shop metadata persistence.
type Shop interface {
	GetShop(ctx context.Context, shopID uuid.UUID) (*domain.Shop, error)
	ListShops(ctx context.Context) ([]domain.Shop, error)
}
