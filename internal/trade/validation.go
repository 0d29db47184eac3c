package trade

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/calenfir/bazaar/internal/domain"
)

// validateQuantity validates the trade quantity bound [1, MaxTradeQuantity]
func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, domain.ErrInvalidInput)
	}
	if quantity > domain.MaxTradeQuantity {
		return fmt.Errorf(ErrMsgQuantityExceedsMaxFmt, quantity, domain.MaxTradeQuantity, domain.ErrInvalidInput)
	}
	return nil
}

// tradeEntities holds the read-only metadata a trade needs before it
// touches any mutable row.
type tradeEntities struct {
	shop        *domain.Shop
	champion    *domain.Champion
	shopInv     *domain.Inventory
	championInv *domain.Inventory
}

// getTradeEntities loads and validates the shop, the champion, and both
// inventories. Ownership is re-verified here as a hard precondition even
// though the access layer already authenticated the caller.
func (s *service) getTradeEntities(ctx context.Context, shopID, callerUserID, championID uuid.UUID) (*tradeEntities, error) {
	shop, err := s.repo.GetShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetShopFailed, err)
	}

	champion, err := s.repo.GetChampion(ctx, championID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetChampionFailed, err)
	}
	if !champion.OwnedBy(callerUserID) {
		return nil, fmt.Errorf(ErrMsgNotOwnerFmt, championID, domain.ErrForbidden)
	}

	shopInv, err := s.repo.GetInventory(ctx, shop.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	championInv, err := s.repo.GetInventory(ctx, champion.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}

	return &tradeEntities{
		shop:        shop,
		champion:    champion,
		shopInv:     shopInv,
		championInv: championInv,
	}, nil
}
