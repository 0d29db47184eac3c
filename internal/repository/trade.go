package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/calenfir/bazaar/internal/domain"
)

// Trade defines the persistence surface of the trade engine. All mutations
// happen on a TradeTx so a purchase or sell commits as one unit.
type Trade interface {
	GetShop(ctx context.Context, shopID uuid.UUID) (*domain.Shop, error)
	GetChampion(ctx context.Context, championID uuid.UUID) (*domain.Champion, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	GetInventory(ctx context.Context, ownerID uuid.UUID) (*domain.Inventory, error)
	ListSlots(ctx context.Context, inventoryID uuid.UUID) ([]domain.InventorySlot, error)
	BeginTx(ctx context.Context) (TradeTx, error)
}

// TradeTx defines the interface for trade transactions. ForUpdate reads
// take row locks held until Commit or Rollback; lock acquisition order is
// the engine's responsibility. GetSlotForUpdate resolves by item id alone
// (lowest rarity first); slot mutations are keyed by the full
// (inventory, item, rarity) identity, so upsert decisions go through
// GetSlotByRarityForUpdate.
type TradeTx interface {
	Tx
	GetSlotForUpdate(ctx context.Context, inventoryID, itemID uuid.UUID) (*domain.InventorySlot, error)
	GetSlotByRarityForUpdate(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity) (*domain.InventorySlot, error)
	GetChampionForUpdate(ctx context.Context, championID uuid.UUID) (*domain.Champion, error)
	AdjustQuantity(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity, delta int) (*domain.InventorySlot, error)
	CreateSlot(ctx context.Context, slot domain.InventorySlot) error
	RemoveSlot(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity) (bool, error)
	AdjustBalance(ctx context.Context, championID uuid.UUID, delta domain.Money) (domain.Money, error)
	ListSlots(ctx context.Context, inventoryID uuid.UUID) ([]domain.InventorySlot, error)
}
