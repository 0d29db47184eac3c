package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calenfir/bazaar/internal/domain"
)

// InventoryRepository implements the inventory repository for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// CreateInventory creates the single inventory for a new owner.
func (r *InventoryRepository) CreateInventory(ctx context.Context, ownerID uuid.UUID, kind domain.OwnerKind, capacity int) (*domain.Inventory, error) {
	if capacity <= 0 {
		capacity = domain.DefaultInventoryCapacity
	}
	query := `
		INSERT INTO inventories (owner_id, owner_kind, capacity)
		VALUES ($1, $2, $3)
		RETURNING inventory_id
	`
	inv := domain.Inventory{
		OwnerID:   ownerID,
		OwnerKind: kind,
		Capacity:  capacity,
	}
	if err := r.db.QueryRow(ctx, query, ownerID, kind, capacity).Scan(&inv.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("owner %s already has an inventory: %w", ownerID, domain.ErrDuplicateSlot)
		}
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}
	return &inv, nil
}

// GetInventory retrieves the inventory for an owner
func (r *InventoryRepository) GetInventory(ctx context.Context, ownerID uuid.UUID) (*domain.Inventory, error) {
	return getInventory(ctx, r.db, ownerID)
}

// GetSlot looks up a slot by item id; returns nil when the item is not stocked
func (r *InventoryRepository) GetSlot(ctx context.Context, inventoryID, itemID uuid.UUID) (*domain.InventorySlot, error) {
	return getSlot(ctx, r.db, inventoryID, itemID, false)
}

// GetSlotByRarity looks up a slot by its full (inventory, item, rarity)
// identity; returns nil when absent
func (r *InventoryRepository) GetSlotByRarity(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity) (*domain.InventorySlot, error) {
	return getSlotByRarity(ctx, r.db, inventoryID, itemID, rarity, false)
}

// ListSlots returns all slots of an inventory; a fresh query each call
func (r *InventoryRepository) ListSlots(ctx context.Context, inventoryID uuid.UUID) ([]domain.InventorySlot, error) {
	return listSlots(ctx, r.db, inventoryID)
}

// CreateSlot inserts a new slot, enforcing capacity and slot uniqueness
func (r *InventoryRepository) CreateSlot(ctx context.Context, slot domain.InventorySlot) error {
	return createSlot(ctx, r.db, slot)
}

// AdjustQuantity applies quantity += delta as one atomic conditional update
func (r *InventoryRepository) AdjustQuantity(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity, delta int) (*domain.InventorySlot, error) {
	return adjustQuantity(ctx, r.db, inventoryID, itemID, rarity, delta)
}

// RemoveSlot deletes a slot outright, reporting whether a row existed
func (r *InventoryRepository) RemoveSlot(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity) (bool, error) {
	return removeSlot(ctx, r.db, inventoryID, itemID, rarity)
}
