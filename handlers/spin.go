// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/spinwheel/catalog"
	"github.com/danielhkuo/spinwheel/events"
	"github.com/danielhkuo/spinwheel/middleware"
	"github.com/danielhkuo/spinwheel/models"
)

// WinHandler records spin outcomes. The wheel client pre-selects a winner
// locally for the animation, then calls this endpoint to make it real; the
// store re-validates availability atomically, so a stale client can lose
// the race here and must refresh.
type WinHandler struct {
	store  *catalog.Store
	events *events.Broadcaster
}

func NewWinHandler(store *catalog.Store, broadcaster *events.Broadcaster) *WinHandler {
	return &WinHandler{store: store, events: broadcaster}
}

// RecordWin handles POST /prizes/{id}/win (public).
//
// 200 with the updated prize on success, 409 when the prize sold out
// between the client's selection and this call, 404 when the prize no
// longer exists. Both failure codes are recoverable: the client refreshes
// its catalog and re-runs the spin flow.
func (h *WinHandler) RecordWin(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	prize, err := h.store.IncrementWon(r.Context(), id)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Prize not found")
		return
	case errors.Is(err, catalog.ErrQuotaExceeded):
		slog.Info("win rejected, quota exhausted", "prize_id", id)
		middleware.ErrorResponse(w, http.StatusConflict, "Prize quota exceeded")
		return
	case err != nil:
		slog.Error("failed to record win", "error", err, "prize_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record win")
		return
	}

	h.events.Notify()
	slog.Info("win recorded", "prize_id", prize.ID, "won", prize.Won, "quota", prize.Quota)
	middleware.JSONResponse(w, http.StatusOK, models.PrizeResponse{Prize: prize})
}
