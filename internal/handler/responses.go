package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/calenfir/bazaar/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "The trade conflicted with concurrent activity. Please retry."
	ErrMsgForbiddenError      = "That champion does not belong to you"
	ErrMsgChampionNotFoundErr = "Champion not found"
	ErrMsgShopNotFoundError   = "Shop not found"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgInventoryNotFound   = "Inventory not found"
	ErrMsgItemNotInShopError  = "The shop does not stock that item"
	ErrMsgNotInInventoryError = "You don't have that item"
	ErrMsgNotEnoughStockError = "Not enough stock"
	ErrMsgNotEnoughMoneyError = "Not enough money"
	ErrMsgDuplicateSlotError  = "That slot already exists"
	ErrMsgInventoryFullError  = "Inventory is full"
	ErrMsgWrongShopTypeError  = "The shop does not trade that kind of item"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Invalid input is 400, ownership failures 403, missing
// resources 404, business conflicts 409, and lock-conflict exhaustion 503
// so well-behaved clients retry.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbiddenError
	case errors.Is(err, domain.ErrChampionNotFound):
		return http.StatusNotFound, ErrMsgChampionNotFoundErr
	case errors.Is(err, domain.ErrShopNotFound):
		return http.StatusNotFound, ErrMsgShopNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInventoryNotFound):
		return http.StatusNotFound, ErrMsgInventoryNotFound
	case errors.Is(err, domain.ErrItemNotInShop):
		return http.StatusConflict, ErrMsgItemNotInShopError
	case errors.Is(err, domain.ErrItemNotInInventory):
		return http.StatusConflict, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict, ErrMsgNotEnoughStockError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrDuplicateSlot):
		return http.StatusConflict, ErrMsgDuplicateSlotError
	case errors.Is(err, domain.ErrCapacityExceeded):
		return http.StatusConflict, ErrMsgInventoryFullError
	case errors.Is(err, domain.ErrWrongShopType):
		return http.StatusConflict, ErrMsgWrongShopTypeError
	case errors.Is(err, domain.ErrConflict):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
