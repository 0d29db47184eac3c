package catalog

import "time"

// Item cache sizing
const (
	// ItemCacheSize is the maximum number of cached items
	ItemCacheSize = 256

	// ItemCacheTTL is the time-to-live for cached items
	ItemCacheTTL = 5 * time.Minute
)

// ==================== Error Messages ====================

const (
	ErrMsgInvalidItemFmt       = "invalid item definition: %w"
	ErrMsgInvalidRarityFmt     = "unknown rarity %q: %w"
	ErrMsgInvalidStockQtyFmt   = "invalid stock quantity %d: %w"
	ErrMsgWrongShopTypeFmt     = "shop %s trades %s, item is %s: %w"
	ErrMsgPriceBoundsFmt       = "price bounds inverted (%s > %s): %w"
	ErrMsgGetShopFailed        = "failed to get shop: %w"
	ErrMsgGetItemFailed        = "failed to get item: %w"
	ErrMsgListItemsFailed      = "failed to list items: %w"
	ErrMsgInsertItemFailed     = "failed to insert item: %w"
	ErrMsgUpdateItemFailed     = "failed to update item: %w"
	ErrMsgDeleteItemFailed     = "failed to delete item: %w"
	ErrMsgGetShopInvFailed     = "failed to get shop inventory: %w"
	ErrMsgStockMutationFailed  = "failed to apply stock mutation: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgItemCreated  = "Item created"
	LogMsgItemUpdated  = "Item updated"
	LogMsgItemDeleted  = "Item deleted"
	LogMsgShopStocked  = "Shop stocked"
	LogMsgItemCacheHit = "Item cache hit"
)
