package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/calenfir/bazaar/internal/logger"
	"github.com/calenfir/bazaar/internal/trade"
)

// HandleGetInventory returns the inventory view of a champion or a shop
func HandleGetInventory(svc trade.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ownerID, err := uuid.Parse(chi.URLParam(r, "ownerID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidOwnerID)
			return
		}

		view, err := svc.GetInventory(r.Context(), ownerID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to get inventory", "ownerID", ownerID, "error", err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: view})
	}
}
