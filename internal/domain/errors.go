package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgChampionNotFound  = "champion not found"
	ErrMsgShopNotFound      = "shop not found"
	ErrMsgItemNotFound      = "item not found"
	ErrMsgInventoryNotFound = "inventory not found"

	// Trade errors
	ErrMsgItemNotInShop      = "item not stocked by shop"
	ErrMsgItemNotInInventory = "item not in inventory"
	ErrMsgInsufficientStock  = "insufficient stock"
	ErrMsgInsufficientFunds  = "insufficient funds"

	// Inventory errors
	ErrMsgDuplicateSlot    = "slot already exists"
	ErrMsgCapacityExceeded = "inventory capacity exceeded"

	// Authorization errors
	ErrMsgForbidden = "champion not owned by caller"

	// Stocking errors
	ErrMsgWrongShopType = "item type not allowed in shop"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Concurrency errors
	ErrMsgConflict = "transaction conflict"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Lookup errors
	ErrChampionNotFound  = errors.New(ErrMsgChampionNotFound)
	ErrShopNotFound      = errors.New(ErrMsgShopNotFound)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrInventoryNotFound = errors.New(ErrMsgInventoryNotFound)

	// Trade errors
	ErrItemNotInShop      = errors.New(ErrMsgItemNotInShop)
	ErrItemNotInInventory = errors.New(ErrMsgItemNotInInventory)
	ErrInsufficientStock  = errors.New(ErrMsgInsufficientStock)
	ErrInsufficientFunds  = errors.New(ErrMsgInsufficientFunds)

	// Inventory errors
	ErrDuplicateSlot    = errors.New(ErrMsgDuplicateSlot)
	ErrCapacityExceeded = errors.New(ErrMsgCapacityExceeded)

	// Authorization errors
	ErrForbidden = errors.New(ErrMsgForbidden)

	// Stocking errors
	ErrWrongShopType = errors.New(ErrMsgWrongShopType)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Concurrency errors: a trade lost its row locks too many times and the
	// caller may retry the whole operation from scratch.
	ErrConflict = errors.New(ErrMsgConflict)
)
