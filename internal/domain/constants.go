package domain

// MaxTradeQuantity bounds a single purchase or sell. Values outside
// [1, MaxTradeQuantity] are a caller error, not a business-rule failure.
const MaxTradeQuantity = 999

// DefaultInventoryCapacity is the number of distinct slots an inventory
// holds unless created with an explicit capacity.
const DefaultInventoryCapacity = 12

// Trade event types published after a committed trade.
const (
	EventTypeTradePurchased = "trade.purchased"
	EventTypeTradeSold      = "trade.sold"
)
