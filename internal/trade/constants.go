package trade

// ==================== Error Messages ====================

// Formatted error messages for validation
const (
	ErrMsgInvalidQuantityFmt    = "invalid quantity: %d: %w"
	ErrMsgQuantityExceedsMaxFmt = "quantity %d exceeds maximum allowed (%d): %w"
)

// Formatted error messages for trade preconditions
const (
	ErrMsgItemNotInShopFmt      = "item %s not stocked by shop %s: %w"
	ErrMsgItemNotInInventoryFmt = "item %s not in champion inventory: %w"
	ErrMsgInsufficientStockFmt  = "requested %d but only %d in stock: %w"
	ErrMsgInsufficientFundsFmt  = "cost %s exceeds balance %s: %w"
	ErrMsgNotOwnerFmt           = "champion %s does not belong to caller: %w"
	ErrMsgWrongShopTypeFmt      = "item type %s not accepted by %s shop: %w"
)

// Database operation error messages
const (
	ErrMsgGetShopFailed           = "failed to get shop: %w"
	ErrMsgGetChampionFailed       = "failed to get champion: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgListSlotsFailed         = "failed to list inventory slots: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgPurchaseCalled     = "Purchase called"
	LogMsgPurchaseCommitted  = "Purchase committed"
	LogMsgSellCalled         = "Sell called"
	LogMsgSellCommitted      = "Sell committed"
	LogMsgGetInventoryCalled = "GetInventory called"
	LogMsgTradeRetry         = "Trade conflicted, retrying from fresh reads"
)

// DefaultMaxAttempts bounds how many times a conflicted trade is re-run
// with fresh reads before ErrConflict is surfaced to the caller.
const DefaultMaxAttempts = 3
