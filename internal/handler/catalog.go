package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/calenfir/bazaar/internal/catalog"
	"github.com/calenfir/bazaar/internal/domain"
	"github.com/calenfir/bazaar/internal/logger"
)

// HandleListItems returns the full item catalog
func HandleListItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		items, err := svc.ListItems(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to list items", "error", err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

// HandleGetItem returns one catalog item
func HandleGetItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
			return
		}

		item, err := svc.GetItem(r.Context(), itemID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to get item", "itemID", itemID, "error", err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: item})
	}
}

// HandleListShops returns all shops
func HandleListShops(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		shops, err := svc.ListShops(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to list shops", "error", err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: shops})
	}
}

// HandleGetShop returns shop metadata
func HandleGetShop(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		shopID, err := uuid.Parse(chi.URLParam(r, "shopID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidShopID)
			return
		}

		shop, err := svc.GetShop(r.Context(), shopID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to get shop", "shopID", shopID, "error", err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: shop})
	}
}

// CreateItemRequest is the admin request to define a catalog item.
type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Type        string `json:"type" validate:"required"`
	PriceMin    string `json:"price_min" validate:"required"`
	PriceMax    string `json:"price_max" validate:"required"`
}

// HandleCreateItem defines a new catalog item (admin)
func HandleCreateItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidRequestF, FormatValidationError(err)))
			return
		}

		priceMin, err := domain.MoneyFromString(req.PriceMin)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		priceMax, err := domain.MoneyFromString(req.PriceMax)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		item := &domain.Item{
			Name:        req.Name,
			Description: req.Description,
			Type:        domain.ItemType(req.Type),
			PriceMin:    priceMin,
			PriceMax:    priceMax,
		}
		if err := svc.CreateItem(r.Context(), item); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to create item", "name", req.Name, "error", err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgItemCreatedSuccess, Data: item})
	}
}

// HandleUpdateItem replaces a catalog item's definition (admin)
func HandleUpdateItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
			return
		}

		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidRequestF, FormatValidationError(err)))
			return
		}

		priceMin, err := domain.MoneyFromString(req.PriceMin)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		priceMax, err := domain.MoneyFromString(req.PriceMax)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		item := &domain.Item{
			ID:          itemID,
			Name:        req.Name,
			Description: req.Description,
			Type:        domain.ItemType(req.Type),
			PriceMin:    priceMin,
			PriceMax:    priceMax,
		}
		if err := svc.UpdateItem(r.Context(), item); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to update item", "itemID", itemID, "error", err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgItemUpdatedSuccess, Data: item})
	}
}

// HandleDeleteItem removes an unreferenced catalog item (admin)
func HandleDeleteItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
			return
		}

		if err := svc.DeleteItem(r.Context(), itemID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to delete item", "itemID", itemID, "error", err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemDeletedSuccess})
	}
}

// StockShopRequest is the admin request to stock a shop.
type StockShopRequest struct {
	ItemID   string `json:"item_id" validate:"required,uuid"`
	Rarity   string `json:"rarity" validate:"required,rarity"`
	Quantity int    `json:"quantity" validate:"min=1,max=999"`
}

// HandleStockShop adds stock to a shop's inventory at a derived price (admin)
func HandleStockShop(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		shopID, err := uuid.Parse(chi.URLParam(r, "shopID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidShopID)
			return
		}

		var req StockShopRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidRequestF, FormatValidationError(err)))
			return
		}

		itemID, err := uuid.Parse(req.ItemID)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
			return
		}

		slot, err := svc.StockShop(r.Context(), shopID, itemID, domain.Rarity(req.Rarity), req.Quantity)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to stock shop", "shopID", shopID, "itemID", itemID, "error", err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgShopStockedSuccess, Data: slot})
	}
}
