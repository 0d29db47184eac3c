package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/calenfir/bazaar/internal/domain"
	"github.com/calenfir/bazaar/internal/logger"
	"github.com/calenfir/bazaar/internal/repository"
)

// Service defines catalog operations: item CRUD, shop lookup, and
// stocking. Stocking is the only place a slot's unit price is derived;
// trades afterwards only move quantity at the recorded price.
type Service interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	GetShop(ctx context.Context, shopID uuid.UUID) (*domain.Shop, error)
	ListShops(ctx context.Context) ([]domain.Shop, error)
	StockShop(ctx context.Context, shopID, itemID uuid.UUID, rarity domain.Rarity, quantity int) (*domain.InventorySlot, error)
}

type service struct {
	items     repository.Item
	shops     repository.Shop
	inventory repository.Inventory
	cache     *itemCache
}

// NewService creates a new catalog service
func NewService(items repository.Item, shops repository.Shop, inventory repository.Inventory) Service {
	return &service{
		items:     items,
		shops:     shops,
		inventory: inventory,
		cache:     newItemCache(ItemCacheSize, ItemCacheTTL),
	}
}

func (s *service) CreateItem(ctx context.Context, item *domain.Item) error {
	log := logger.FromContext(ctx)

	if err := validateItem(item); err != nil {
		return err
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	if err := s.items.InsertItem(ctx, item); err != nil {
		return fmt.Errorf(ErrMsgInsertItemFailed, err)
	}

	log.Info(LogMsgItemCreated, "itemID", item.ID, "name", item.Name, "type", item.Type)
	return nil
}

func (s *service) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	if item, ok := s.cache.Get(itemID); ok {
		return item, nil
	}

	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}

	s.cache.Set(item)
	return item, nil
}

func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.items.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	return items, nil
}

func (s *service) UpdateItem(ctx context.Context, item *domain.Item) error {
	log := logger.FromContext(ctx)

	if err := validateItem(item); err != nil {
		return err
	}

	if err := s.items.UpdateItem(ctx, item); err != nil {
		return fmt.Errorf(ErrMsgUpdateItemFailed, err)
	}

	s.cache.Invalidate(item.ID)
	log.Info(LogMsgItemUpdated, "itemID", item.ID)
	return nil
}

func (s *service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.items.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf(ErrMsgDeleteItemFailed, err)
	}

	s.cache.Invalidate(itemID)
	log.Info(LogMsgItemDeleted, "itemID", itemID)
	return nil
}

func (s *service) GetShop(ctx context.Context, shopID uuid.UUID) (*domain.Shop, error) {
	shop, err := s.shops.GetShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetShopFailed, err)
	}
	return shop, nil
}

func (s *service) ListShops(ctx context.Context) ([]domain.Shop, error) {
	return s.shops.ListShops(ctx)
}

// StockShop adds quantity units of an item to a shop's inventory at the
// rarity-derived unit price. The shop's type restriction is enforced
// wherever a shop slot can come into being: here and on the sell path.
func (s *service) StockShop(ctx context.Context, shopID, itemID uuid.UUID, rarity domain.Rarity, quantity int) (*domain.InventorySlot, error) {
	log := logger.FromContext(ctx)

	if !rarity.Valid() {
		return nil, fmt.Errorf(ErrMsgInvalidRarityFmt, string(rarity), domain.ErrInvalidInput)
	}
	if quantity <= 0 || quantity > domain.MaxTradeQuantity {
		return nil, fmt.Errorf(ErrMsgInvalidStockQtyFmt, quantity, domain.ErrInvalidInput)
	}

	shop, err := s.shops.GetShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetShopFailed, err)
	}
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !shop.MayStock(item) {
		return nil, fmt.Errorf(ErrMsgWrongShopTypeFmt, shop.ID, shop.Type, item.Type, domain.ErrWrongShopType)
	}

	inv, err := s.inventory.GetInventory(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetShopInvFailed, err)
	}

	// Existing slot at this rarity accumulates; a new rarity opens a new
	// slot at the derived price. Base price is the item's floor price.
	// The lookup carries the rarity, so other rarities of the same item
	// already on the shelf are not mistaken for the one being stocked.
	existing, err := s.inventory.GetSlotByRarity(ctx, inv.ID, itemID, rarity)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgStockMutationFailed, err)
	}

	var slot *domain.InventorySlot
	if existing != nil {
		slot, err = s.inventory.AdjustQuantity(ctx, inv.ID, itemID, rarity, quantity)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgStockMutationFailed, err)
		}
	} else {
		slot = &domain.InventorySlot{
			InventoryID: inv.ID,
			ItemID:      itemID,
			Rarity:      rarity,
			Quantity:    quantity,
			UnitPrice:   rarity.PriceFor(item.PriceMin),
		}
		if err := s.inventory.CreateSlot(ctx, *slot); err != nil {
			return nil, fmt.Errorf(ErrMsgStockMutationFailed, err)
		}
	}

	log.Info(LogMsgShopStocked, "shopID", shopID, "itemID", itemID, "rarity", rarity, "quantity", quantity)
	return slot, nil
}

func validateItem(item *domain.Item) error {
	if item.Name == "" || !item.Type.Valid() {
		return fmt.Errorf(ErrMsgInvalidItemFmt, domain.ErrInvalidInput)
	}
	if item.PriceMax.LessThan(item.PriceMin) {
		return fmt.Errorf(ErrMsgPriceBoundsFmt, item.PriceMin, item.PriceMax, domain.ErrInvalidInput)
	}
	if item.PriceMin.IsNegative() {
		return fmt.Errorf(ErrMsgInvalidItemFmt, domain.ErrInvalidInput)
	}
	return nil
}
