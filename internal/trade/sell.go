package trade

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/calenfir/bazaar/internal/domain"
	"github.com/calenfir/bazaar/internal/logger"
	"github.com/calenfir/bazaar/internal/repository"
)

// Sell moves quantity units of an item from the champion's inventory to
// the shop's and credits the champion at the champion's own recorded unit
// price, not the shop's current listing.
func (s *service) Sell(ctx context.Context, shopID, callerUserID, championID, itemID uuid.UUID, quantity int) (*domain.InventoryView, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "shopID", shopID, "championID", championID, "itemID", itemID, "quantity", quantity)

	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	entities, err := s.getTradeEntities(ctx, shopID, callerUserID, championID)
	if err != nil {
		return nil, err
	}

	view, err := s.runTrade(ctx, func(ctx context.Context) (*domain.InventoryView, error) {
		return s.sellOnce(ctx, entities, itemID, quantity)
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgSellCommitted, "shopID", shopID, "championID", championID, "itemID", itemID, "quantity", quantity)
	return view, nil
}

// sellOnce is one attempt at the sale. Locks are taken in the same order
// as purchaseOnce: shop slot, champion slot, champion row.
func (s *service) sellOnce(ctx context.Context, entities *tradeEntities, itemID uuid.UUID, quantity int) (*domain.InventoryView, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	shopSlot, err := tx.GetSlotForUpdate(ctx, entities.shopInv.ID, itemID)
	if err != nil {
		return nil, err
	}

	championSlot, err := tx.GetSlotForUpdate(ctx, entities.championInv.ID, itemID)
	if err != nil {
		return nil, err
	}
	if championSlot == nil {
		return nil, fmt.Errorf(ErrMsgItemNotInInventoryFmt, itemID, domain.ErrItemNotInInventory)
	}
	if championSlot.Quantity < quantity {
		return nil, fmt.Errorf(ErrMsgInsufficientStockFmt, quantity, championSlot.Quantity, domain.ErrInsufficientStock)
	}

	if _, err := tx.GetChampionForUpdate(ctx, entities.champion.ID); err != nil {
		return nil, err
	}

	gain := championSlot.UnitPrice.MulQuantity(quantity)

	// Apply: champion stock down, balance up, shop stock up
	updatedChampionSlot, err := tx.AdjustQuantity(ctx, entities.championInv.ID, itemID, championSlot.Rarity, -quantity)
	if err != nil {
		return nil, err
	}
	if s.policy.OnSell && updatedChampionSlot.Quantity == 0 {
		if _, err := tx.RemoveSlot(ctx, entities.championInv.ID, itemID, championSlot.Rarity); err != nil {
			return nil, err
		}
	}

	if _, err := tx.AdjustBalance(ctx, entities.champion.ID, gain); err != nil {
		return nil, err
	}

	// Resolve the shop-side upsert target at the champion's rarity. The
	// item-keyed lock above stays as the ordering anchor shared with
	// purchases, but it may have found a different rarity of the same
	// item, which must not shadow the slot being sold into.
	if shopSlot == nil || shopSlot.Rarity != championSlot.Rarity {
		shopSlot, err = tx.GetSlotByRarityForUpdate(ctx, entities.shopInv.ID, itemID, championSlot.Rarity)
		if err != nil {
			return nil, err
		}
	}

	// Upsert the shop slot. A shop that already lists the item at this
	// rarity keeps its current listing price; a fresh slot records the
	// champion's price.
	if shopSlot != nil {
		if _, err := tx.AdjustQuantity(ctx, entities.shopInv.ID, itemID, shopSlot.Rarity, quantity); err != nil {
			return nil, err
		}
	} else {
		// A fresh shop slot must still honor the shop's type restriction:
		// stocking-time checks only cover slots that stocking created.
		item, err := s.repo.GetItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if !entities.shop.MayStock(item) {
			return nil, fmt.Errorf(ErrMsgWrongShopTypeFmt, item.Type, entities.shop.Type, domain.ErrWrongShopType)
		}
		err = tx.CreateSlot(ctx, domain.InventorySlot{
			InventoryID: entities.shopInv.ID,
			ItemID:      itemID,
			Rarity:      championSlot.Rarity,
			Quantity:    quantity,
			UnitPrice:   championSlot.UnitPrice,
		})
		if err != nil {
			return nil, err
		}
	}

	view, err := inventoryView(ctx, tx, entities.shopInv)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	s.publish(ctx, domain.EventTypeTradeSold, domain.TradeSoldPayload{
		ShopID:     entities.shop.ID,
		ChampionID: entities.champion.ID,
		ItemID:     itemID,
		Rarity:     championSlot.Rarity,
		Quantity:   quantity,
		Amount:     gain.String(),
		Timestamp:  s.now().Unix(),
	})

	return view, nil
}
