package postgres

// PostgreSQL error codes relevant to trade transactions
const (
	// CodeUniqueViolation is raised when a slot insert hits the
	// (inventory, item, rarity) primary key
	CodeUniqueViolation = "23505"
	// CodeSerializationFailure is raised when concurrent transactions conflict
	CodeSerializationFailure = "40001"
	// CodeDeadlockDetected is raised when lock acquisition deadlocks
	CodeDeadlockDetected = "40P01"
	// CodeForeignKeyViolation is raised when deleting a referenced item
	CodeForeignKeyViolation = "23503"
)

// Error message format strings for database operations
const (
	ErrMsgBeginTxFailed        = "failed to begin transaction: %w"
	ErrMsgQuerySlotsFailed     = "failed to query inventory slots: %w"
	ErrMsgScanSlotFailed       = "failed to scan inventory slot: %w"
	ErrMsgGetInventoryFailed   = "failed to get inventory: %w"
	ErrMsgGetChampionFailed    = "failed to get champion: %w"
	ErrMsgGetShopFailed        = "failed to get shop: %w"
	ErrMsgGetItemFailed        = "failed to get item: %w"
	ErrMsgAdjustQuantityFailed = "failed to adjust slot quantity: %w"
	ErrMsgAdjustBalanceFailed  = "failed to adjust balance: %w"
	ErrMsgCreateSlotFailed     = "failed to create inventory slot: %w"
	ErrMsgRemoveSlotFailed     = "failed to remove inventory slot: %w"
	ErrMsgParseMoneyFailed     = "failed to parse money column: %w"
)
