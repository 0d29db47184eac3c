package trade

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/calenfir/bazaar/internal/domain"
	"github.com/calenfir/bazaar/internal/logger"
	"github.com/calenfir/bazaar/internal/repository"
)

// Purchase moves quantity units of an item from the shop's inventory to
// the champion's and the cost from the champion's balance to the shop.
// All four mutations commit together or not at all.
func (s *service) Purchase(ctx context.Context, shopID, callerUserID, championID, itemID uuid.UUID, quantity int) (*domain.InventoryView, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, "shopID", shopID, "championID", championID, "itemID", itemID, "quantity", quantity)

	// 1. Validate request
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	// 2. Read-only entities: shop, champion (ownership), both inventories
	entities, err := s.getTradeEntities(ctx, shopID, callerUserID, championID)
	if err != nil {
		return nil, err
	}

	// 3. Atomic unit, re-run from fresh reads on lock conflict
	view, err := s.runTrade(ctx, func(ctx context.Context) (*domain.InventoryView, error) {
		return s.purchaseOnce(ctx, entities, itemID, quantity)
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgPurchaseCommitted, "shopID", shopID, "championID", championID, "itemID", itemID, "quantity", quantity)
	return view, nil
}

// purchaseOnce is one attempt at the purchase: validate against locked
// rows, apply the four mutations, commit. Lock order is shop slot, then
// champion slot, then champion row; sell uses the same order so the two
// operations cannot deadlock each other.
func (s *service) purchaseOnce(ctx context.Context, entities *tradeEntities, itemID uuid.UUID, quantity int) (*domain.InventoryView, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Lock and validate the shop slot
	shopSlot, err := tx.GetSlotForUpdate(ctx, entities.shopInv.ID, itemID)
	if err != nil {
		return nil, err
	}
	if shopSlot == nil {
		return nil, fmt.Errorf(ErrMsgItemNotInShopFmt, itemID, entities.shop.ID, domain.ErrItemNotInShop)
	}
	if shopSlot.Quantity < quantity {
		return nil, fmt.Errorf(ErrMsgInsufficientStockFmt, quantity, shopSlot.Quantity, domain.ErrInsufficientStock)
	}

	cost := shopSlot.UnitPrice.MulQuantity(quantity)

	// Lock the champion's slot at the traded rarity (may not exist yet)
	// and the champion row. The lookup is keyed by the full
	// (inventory, item, rarity) identity: a second rarity of the same item
	// in the champion's inventory must not shadow the slot being bought.
	championSlot, err := tx.GetSlotByRarityForUpdate(ctx, entities.championInv.ID, itemID, shopSlot.Rarity)
	if err != nil {
		return nil, err
	}
	champion, err := tx.GetChampionForUpdate(ctx, entities.champion.ID)
	if err != nil {
		return nil, err
	}
	if champion.Money.LessThan(cost) {
		return nil, fmt.Errorf(ErrMsgInsufficientFundsFmt, cost, champion.Money, domain.ErrInsufficientFunds)
	}

	// Apply: shop stock down, balance down, champion stock up
	updatedShopSlot, err := tx.AdjustQuantity(ctx, entities.shopInv.ID, itemID, shopSlot.Rarity, -quantity)
	if err != nil {
		return nil, err
	}
	if s.policy.OnPurchase && updatedShopSlot.Quantity == 0 {
		if _, err := tx.RemoveSlot(ctx, entities.shopInv.ID, itemID, shopSlot.Rarity); err != nil {
			return nil, err
		}
	}

	if _, err := tx.AdjustBalance(ctx, entities.champion.ID, cost.Neg()); err != nil {
		return nil, err
	}

	// Upsert the champion slot. A champion who already owns the item at
	// this rarity keeps the price basis of the earlier acquisition; only a
	// fresh slot copies the shop's unit price.
	if championSlot != nil {
		if _, err := tx.AdjustQuantity(ctx, entities.championInv.ID, itemID, championSlot.Rarity, quantity); err != nil {
			return nil, err
		}
	} else {
		err := tx.CreateSlot(ctx, domain.InventorySlot{
			InventoryID: entities.championInv.ID,
			ItemID:      itemID,
			Rarity:      shopSlot.Rarity,
			Quantity:    quantity,
			UnitPrice:   shopSlot.UnitPrice,
		})
		if err != nil {
			return nil, err
		}
	}

	view, err := inventoryView(ctx, tx, entities.championInv)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	s.publish(ctx, domain.EventTypeTradePurchased, domain.TradePurchasedPayload{
		ShopID:     entities.shop.ID,
		ChampionID: entities.champion.ID,
		ItemID:     itemID,
		Rarity:     shopSlot.Rarity,
		Quantity:   quantity,
		Amount:     cost.String(),
		Timestamp:  s.now().Unix(),
	})

	return view, nil
}
