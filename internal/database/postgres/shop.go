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

// ShopRepository implements the shop repository for PostgreSQL
type ShopRepository struct {
	db *pgxpool.Pool
}

// NewShopRepository creates a new ShopRepository
func NewShopRepository(db *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{db: db}
}

// GetShop retrieves a shop by id
func (r *ShopRepository) GetShop(ctx context.Context, shopID uuid.UUID) (*domain.Shop, error) {
	return getShop(ctx, r.db, shopID)
}

// ListShops returns all shops
func (r *ShopRepository) ListShops(ctx context.Context) ([]domain.Shop, error) {
	query := `SELECT shop_id, name, shop_type FROM shops ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		var shop domain.Shop
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.Type); err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, shop)
	}
	return shops, rows.Err()
}

func getShop(ctx context.Context, q querier, shopID uuid.UUID) (*domain.Shop, error) {
	query := `SELECT shop_id, name, shop_type FROM shops WHERE shop_id = $1`
	var shop domain.Shop
	err := q.QueryRow(ctx, query, shopID).Scan(&shop.ID, &shop.Name, &shop.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShopNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetShopFailed, err)
	}
	return &shop, nil
}
