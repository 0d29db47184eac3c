package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest  = "Invalid request body"
	ErrMsgMissingCaller   = "Missing X-User-ID header"
	ErrMsgInvalidCaller   = "Invalid X-User-ID header"
	ErrMsgInvalidShopID   = "Invalid shop ID"
	ErrMsgInvalidOwnerID  = "Invalid owner ID"
	ErrMsgInvalidItemID   = "Invalid item ID"
	ErrMsgInvalidRequestF = "Invalid request: %v"
)

// Success messages for API responses
const (
	MsgItemCreatedSuccess = "Item created successfully"
	MsgItemUpdatedSuccess = "Item updated successfully"
	MsgItemDeletedSuccess = "Item deleted successfully"
	MsgShopStockedSuccess = "Shop stocked successfully"
)
