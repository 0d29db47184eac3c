package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/calenfir/bazaar/internal/domain"
)

// querier is the subset of pgx shared by pools and transactions, so the
// slot helpers below serve both the repository and its transactions.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// IsRetryableError reports whether err is a transient concurrency failure
// (serialization failure or deadlock) worth re-running the whole
// validate-then-apply sequence for.
func IsRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == CodeSerializationFailure || pgErr.Code == CodeDeadlockDetected
}

// mapConcurrencyError rewraps serialization failures and deadlocks as
// domain.ErrConflict so the trade engine can retry without knowing
// Postgres error codes.
func mapConcurrencyError(err error) error {
	if IsRetryableError(err) {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == CodeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == CodeForeignKeyViolation
}

func scanMoney(raw string) (domain.Money, error) {
	m, err := domain.MoneyFromString(raw)
	if err != nil {
		return domain.Money{}, fmt.Errorf(ErrMsgParseMoneyFailed, err)
	}
	return m, nil
}

func getInventory(ctx context.Context, q querier, ownerID uuid.UUID) (*domain.Inventory, error) {
	query := `
		SELECT inventory_id, owner_id, owner_kind, capacity
		FROM inventories
		WHERE owner_id = $1
	`
	var inv domain.Inventory
	err := q.QueryRow(ctx, query, ownerID).Scan(&inv.ID, &inv.OwnerID, &inv.OwnerKind, &inv.Capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	return &inv, nil
}

func listSlots(ctx context.Context, q querier, inventoryID uuid.UUID) ([]domain.InventorySlot, error) {
	query := `
		SELECT inventory_id, item_id, rarity, quantity, unit_price::text
		FROM inventory_slots
		WHERE inventory_id = $1
		ORDER BY item_id, rarity
	`
	rows, err := q.Query(ctx, query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQuerySlotsFailed, err)
	}
	defer rows.Close()

	var slots []domain.InventorySlot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, *slot)
	}
	return slots, rows.Err()
}

func scanSlot(row pgx.Row) (*domain.InventorySlot, error) {
	var slot domain.InventorySlot
	var price string
	if err := row.Scan(&slot.InventoryID, &slot.ItemID, &slot.Rarity, &slot.Quantity, &price); err != nil {
		return nil, fmt.Errorf(ErrMsgScanSlotFailed, err)
	}
	unitPrice, err := scanMoney(price)
	if err != nil {
		return nil, err
	}
	slot.UnitPrice = unitPrice
	return &slot, nil
}

// getSlot looks a slot up by item id; nil when the item is not stocked.
// When the same item is held at several rarities the lowest rarity in sort
// order is returned. Callers use this form as a lock anchor and for
// item-keyed reads; upsert decisions go through getSlotByRarity.
func getSlot(ctx context.Context, q querier, inventoryID, itemID uuid.UUID, forUpdate bool) (*domain.InventorySlot, error) {
	query := `
		SELECT inventory_id, item_id, rarity, quantity, unit_price::text
		FROM inventory_slots
		WHERE inventory_id = $1 AND item_id = $2
		ORDER BY rarity
		LIMIT 1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}
	slot, err := scanSlot(q.QueryRow(ctx, query, inventoryID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapConcurrencyError(err)
	}
	return slot, nil
}

// getSlotByRarity looks a slot up by its full (inventory, item, rarity)
// identity; nil when absent. Upsert decisions use this form so a second
// rarity of the same item never shadows the slot being traded.
func getSlotByRarity(ctx context.Context, q querier, inventoryID, itemID uuid.UUID, rarity domain.Rarity, forUpdate bool) (*domain.InventorySlot, error) {
	query := `
		SELECT inventory_id, item_id, rarity, quantity, unit_price::text
		FROM inventory_slots
		WHERE inventory_id = $1 AND item_id = $2 AND rarity = $3
	`
	if forUpdate {
		query += " FOR UPDATE"
	}
	slot, err := scanSlot(q.QueryRow(ctx, query, inventoryID, itemID, rarity))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapConcurrencyError(err)
	}
	return slot, nil
}

func adjustQuantity(ctx context.Context, q querier, inventoryID, itemID uuid.UUID, rarity domain.Rarity, delta int) (*domain.InventorySlot, error) {
	// Single conditional update: the quantity guard rides in the WHERE
	// clause so a losing writer never produces a negative quantity.
	query := `
		UPDATE inventory_slots
		SET quantity = quantity + $4
		WHERE inventory_id = $1 AND item_id = $2 AND rarity = $3 AND quantity + $4 >= 0
		RETURNING inventory_id, item_id, rarity, quantity, unit_price::text
	`
	slot, err := scanSlot(q.QueryRow(ctx, query, inventoryID, itemID, rarity, delta))
	if err == nil {
		return slot, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf(ErrMsgAdjustQuantityFailed, mapConcurrencyError(err))
	}

	// No row qualified: either the slot is missing or the guard rejected.
	var exists bool
	checkQuery := `
		SELECT EXISTS (
			SELECT 1 FROM inventory_slots
			WHERE inventory_id = $1 AND item_id = $2 AND rarity = $3
		)
	`
	if err := q.QueryRow(ctx, checkQuery, inventoryID, itemID, rarity).Scan(&exists); err != nil {
		return nil, fmt.Errorf(ErrMsgAdjustQuantityFailed, mapConcurrencyError(err))
	}
	if !exists {
		return nil, domain.ErrItemNotInInventory
	}
	return nil, domain.ErrInsufficientStock
}

func createSlot(ctx context.Context, q querier, slot domain.InventorySlot) error {
	// Capacity is enforced inside the insert so two concurrent creators
	// cannot both pass a separate count check.
	query := `
		INSERT INTO inventory_slots (inventory_id, item_id, rarity, quantity, unit_price)
		SELECT $1, $2, $3, $4, $5
		WHERE (SELECT COUNT(*) FROM inventory_slots WHERE inventory_id = $1)
		    < (SELECT capacity FROM inventories WHERE inventory_id = $1)
	`
	tag, err := q.Exec(ctx, query, slot.InventoryID, slot.ItemID, slot.Rarity, slot.Quantity, slot.UnitPrice.String())
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSlot
		}
		return fmt.Errorf(ErrMsgCreateSlotFailed, mapConcurrencyError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCapacityExceeded
	}
	return nil
}

func removeSlot(ctx context.Context, q querier, inventoryID, itemID uuid.UUID, rarity domain.Rarity) (bool, error) {
	query := `
		DELETE FROM inventory_slots
		WHERE inventory_id = $1 AND item_id = $2 AND rarity = $3
	`
	tag, err := q.Exec(ctx, query, inventoryID, itemID, rarity)
	if err != nil {
		return false, fmt.Errorf(ErrMsgRemoveSlotFailed, mapConcurrencyError(err))
	}
	return tag.RowsAffected() > 0, nil
}

func adjustBalance(ctx context.Context, q querier, championID uuid.UUID, delta domain.Money) (domain.Money, error) {
	// Same conditional-update shape as slot quantities: the balance floor
	// is part of the statement, not application code.
	query := `
		UPDATE champions
		SET money = money + $2, updated_at = NOW()
		WHERE champion_id = $1 AND money + $2 >= 0
		RETURNING money::text
	`
	var raw string
	err := q.QueryRow(ctx, query, championID, delta.String()).Scan(&raw)
	if err == nil {
		return scanMoney(raw)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Money{}, fmt.Errorf(ErrMsgAdjustBalanceFailed, mapConcurrencyError(err))
	}

	var exists bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM champions WHERE champion_id = $1)`
	if err := q.QueryRow(ctx, checkQuery, championID).Scan(&exists); err != nil {
		return domain.Money{}, fmt.Errorf(ErrMsgAdjustBalanceFailed, err)
	}
	if !exists {
		return domain.Money{}, domain.ErrChampionNotFound
	}
	return domain.Money{}, domain.ErrInsufficientFunds
}
