package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/calenfir/bazaar/internal/domain"
	"github.com/calenfir/bazaar/internal/logger"
	"github.com/calenfir/bazaar/internal/metrics"
	"github.com/calenfir/bazaar/internal/trade"
)

// CallerHeader carries the authenticated user id, set by the fronting
// auth proxy.
const CallerHeader = "X-User-ID"

// TradeRequest is the shared body of purchase and sell requests.
type TradeRequest struct {
	ChampionID string `json:"champion_id" validate:"required,uuid"`
	ItemID     string `json:"item_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"min=1,max=999"`
}

// tradeOp is the shared shape of Service.Purchase and Service.Sell.
type tradeOp func(ctx context.Context, shopID, callerUserID, championID, itemID uuid.UUID, quantity int) (*domain.InventoryView, error)

// callerID extracts the authenticated user's id from the request headers.
func callerID(r *http.Request) (uuid.UUID, string) {
	raw := r.Header.Get(CallerHeader)
	if raw == "" {
		return uuid.Nil, ErrMsgMissingCaller
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrMsgInvalidCaller
	}
	return id, ""
}

// HandlePurchase moves items from the shop to a champion's inventory
func HandlePurchase(svc trade.Service) http.HandlerFunc {
	return handleTrade(metrics.TradeKindPurchase, svc.Purchase)
}

// HandleSell moves items from a champion's inventory to the shop
func HandleSell(svc trade.Service) http.HandlerFunc {
	return handleTrade(metrics.TradeKindSell, svc.Sell)
}

// handleTrade is the shared decode/validate/execute/respond path of the
// purchase and sell endpoints.
func handleTrade(kind string, op tradeOp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		shopID, err := uuid.Parse(chi.URLParam(r, "shopID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidShopID)
			return
		}

		caller, msg := callerID(r)
		if msg != "" {
			respondError(w, http.StatusUnauthorized, msg)
			return
		}

		var req TradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode trade request", "kind", kind, "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid trade request", "kind", kind, "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidRequestF, FormatValidationError(err)))
			return
		}

		championID, err := uuid.Parse(req.ChampionID)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		itemID, err := uuid.Parse(req.ItemID)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
			return
		}

		start := time.Now()
		view, err := op(r.Context(), shopID, caller, championID, itemID, req.Quantity)
		metrics.RecordTrade(kind, err, start)
		if err != nil {
			status, userMsg := mapServiceErrorToUserMessage(err)
			log.Error("Trade failed", "kind", kind, "shopID", shopID, "championID", championID, "error", err)
			respondError(w, status, userMsg)
			return
		}

		log.Info("Trade completed", "kind", kind, "shopID", shopID, "championID", championID, "quantity", req.Quantity)
		respondJSON(w, http.StatusOK, DataResponse{Data: view})
	}
}
