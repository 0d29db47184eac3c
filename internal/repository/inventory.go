package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/calenfir/bazaar/internal/domain"
)

// Inventory defines the interface for inventory persistence scoped to one
// owner. Slot identity is (inventory, item, rarity); GetSlot looks up by
// item id with the rarity carried on the returned slot. AdjustQuantity is
// the only quantity mutation primitive: a single atomic read-modify-write
// at the store, never read-then-write from application code.
type Inventory interface {
	CreateInventory(ctx context.Context, ownerID uuid.UUID, kind domain.OwnerKind, capacity int) (*domain.Inventory, error)
	GetInventory(ctx context.Context, ownerID uuid.UUID) (*domain.Inventory, error)
	GetSlot(ctx context.Context, inventoryID, itemID uuid.UUID) (*domain.InventorySlot, error)
	GetSlotByRarity(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity) (*domain.InventorySlot, error)
	ListSlots(ctx context.Context, inventoryID uuid.UUID) ([]domain.InventorySlot, error)
	CreateSlot(ctx context.Context, slot domain.InventorySlot) error
	AdjustQuantity(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity, delta int) (*domain.InventorySlot, error)
	RemoveSlot(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity) (bool, error)
}
