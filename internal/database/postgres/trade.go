package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calenfir/bazaar/internal/domain"
	"github.com/calenfir/bazaar/internal/repository"
)

// TradeRepository implements the trade repository for PostgreSQL
type TradeRepository struct {
	db *pgxpool.Pool
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *pgxpool.Pool) *TradeRepository {
	return &TradeRepository{db: db}
}

// TradeTx implements repository.TradeTx on a pgx transaction. Row locks
// taken by the ForUpdate reads are held until Commit or Rollback.
type TradeTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *TradeRepository) BeginTx(ctx context.Context) (repository.TradeTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	return &TradeTx{tx: tx}, nil
}

// GetShop retrieves a shop outside any transaction
func (r *TradeRepository) GetShop(ctx context.Context, shopID uuid.UUID) (*domain.Shop, error) {
	return getShop(ctx, r.db, shopID)
}

// GetChampion retrieves a champion outside any transaction
func (r *TradeRepository) GetChampion(ctx context.Context, championID uuid.UUID) (*domain.Champion, error) {
	return getChampion(ctx, r.db, championID, false)
}

// GetItem retrieves a catalog item outside any transaction; items are
// read-only reference data at trade time
func (r *TradeRepository) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
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

// GetInventory retrieves an owner's inventory outside any transaction
func (r *TradeRepository) GetInventory(ctx context.Context, ownerID uuid.UUID) (*domain.Inventory, error) {
	return getInventory(ctx, r.db, ownerID)
}

// ListSlots returns an inventory's slots outside any transaction
func (r *TradeRepository) ListSlots(ctx context.Context, inventoryID uuid.UUID) ([]domain.InventorySlot, error) {
	return listSlots(ctx, r.db, inventoryID)
}

// Commit commits the transaction; serialization failures at commit time
// surface as domain.ErrConflict like any other lock conflict
func (t *TradeTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return mapConcurrencyError(err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *TradeTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetSlotForUpdate reads a slot and takes its row lock
func (t *TradeTx) GetSlotForUpdate(ctx context.Context, inventoryID, itemID uuid.UUID) (*domain.InventorySlot, error) {
	return getSlot(ctx, t.tx, inventoryID, itemID, true)
}

// GetSlotByRarityForUpdate reads the slot at an exact (inventory, item,
// rarity) identity and takes its row lock
func (t *TradeTx) GetSlotByRarityForUpdate(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity) (*domain.InventorySlot, error) {
	return getSlotByRarity(ctx, t.tx, inventoryID, itemID, rarity, true)
}

// GetChampionForUpdate reads a champion and takes its row lock
func (t *TradeTx) GetChampionForUpdate(ctx context.Context, championID uuid.UUID) (*domain.Champion, error) {
	return getChampion(ctx, t.tx, championID, true)
}

// AdjustQuantity applies quantity += delta inside the transaction
func (t *TradeTx) AdjustQuantity(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity, delta int) (*domain.InventorySlot, error) {
	return adjustQuantity(ctx, t.tx, inventoryID, itemID, rarity, delta)
}

// CreateSlot inserts a slot inside the transaction
func (t *TradeTx) CreateSlot(ctx context.Context, slot domain.InventorySlot) error {
	return createSlot(ctx, t.tx, slot)
}

// RemoveSlot deletes a slot inside the transaction
func (t *TradeTx) RemoveSlot(ctx context.Context, inventoryID, itemID uuid.UUID, rarity domain.Rarity) (bool, error) {
	return removeSlot(ctx, t.tx, inventoryID, itemID, rarity)
}

// AdjustBalance applies money += delta inside the transaction
func (t *TradeTx) AdjustBalance(ctx context.Context, championID uuid.UUID, delta domain.Money) (domain.Money, error) {
	return adjustBalance(ctx, t.tx, championID, delta)
}

// ListSlots returns an inventory's slots inside the transaction
func (t *TradeTx) ListSlots(ctx context.Context, inventoryID uuid.UUID) ([]domain.InventorySlot, error) {
	return listSlots(ctx, t.tx, inventoryID)
}
