// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/danielhkuo/spinwheel/auth"
	"github.com/danielhkuo/spinwheel/catalog"
	"github.com/danielhkuo/spinwheel/events"
	"github.com/danielhkuo/spinwheel/middleware"
	"github.com/danielhkuo/spinwheel/models"
)

var colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}){1,2}$`)

type PrizeHandler struct {
	store  *catalog.Store
	events *events.Broadcaster
}

func NewPrizeHandler(store *catalog.Store, broadcaster *events.Broadcaster) *PrizeHandler {
	return &PrizeHandler{store: store, events: broadcaster}
}

// List handles GET /prizes (public).
func (h *PrizeHandler) List(w http.ResponseWriter, r *http.Request) {
	prizes, err := h.store.List(r.Context())
	if err != nil {
		slog.Error("failed to list prizes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.PrizesResponse{Prizes: prizes})
}

// Create handles POST /prizes (admin).
func (h *PrizeHandler) Create(w http.ResponseWriter, r *http.Request, _ auth.Session) {
	var req models.PrizeInput
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validatePrizeInput(req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	prize, err := h.store.Create(r.Context(), req)
	if err != nil {
		slog.Error("failed to create prize", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create prize")
		return
	}

	h.events.Notify()
	slog.Info("prize created", "prize_id", prize.ID, "name", prize.Name)
	middleware.JSONResponse(w, http.StatusCreated, models.PrizeResponse{Prize: prize})
}

// Update handles PUT /prizes/{id} (admin). Partial: absent fields keep
// their stored value.
func (h *PrizeHandler) Update(w http.ResponseWriter, r *http.Request, _ auth.Session) {
	id := r.PathValue("id")

	var req models.PrizeUpdate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validatePrizeUpdate(req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	prize, err := h.store.Update(r.Context(), id, req)
	if errors.Is(err, catalog.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Prize not found")
		return
	}
	if err != nil {
		slog.Error("failed to update prize", "error", err, "prize_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update prize")
		return
	}

	h.events.Notify()
	middleware.JSONResponse(w, http.StatusOK, models.PrizeResponse{Prize: prize})
}

// Delete handles DELETE /prizes/{id} (admin).
func (h *PrizeHandler) Delete(w http.ResponseWriter, r *http.Request, _ auth.Session) {
	id := r.PathValue("id")

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Prize not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete prize", "error", err, "prize_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete prize")
		return
	}

	h.events.Notify()
	slog.Info("prize deleted", "prize_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// Reorder handles POST /prizes/reorder (admin).
func (h *PrizeHandler) Reorder(w http.ResponseWriter, r *http.Request, _ auth.Session) {
	var req models.ReorderRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Order) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid order payload")
		return
	}
	for _, entry := range req.Order {
		if entry.ID == "" || entry.SortIndex < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid order payload")
			return
		}
	}

	prizes, err := h.store.Reorder(r.Context(), req.Order)
	if errors.Is(err, catalog.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Prize not found")
		return
	}
	if err != nil {
		slog.Error("failed to reorder prizes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reorder prizes")
		return
	}

	h.events.Notify()
	middleware.JSONResponse(w, http.StatusOK, models.PrizesResponse{Prizes: prizes})
}

// Reset handles POST /prizes/reset (admin): zeroes every won counter for
// a fresh event.
func (h *PrizeHandler) Reset(w http.ResponseWriter, r *http.Request, s auth.Session) {
	prizes, err := h.store.ResetWon(r.Context())
	if err != nil {
		slog.Error("failed to reset won counters", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset prizes")
		return
	}

	h.events.Notify()
	slog.Info("won counters reset", "by", s.Username)
	middleware.JSONResponse(w, http.StatusOK, models.PrizesResponse{Prizes: prizes})
}

func validatePrizeInput(req models.PrizeInput) string {
	if len(req.Name) < 1 || len(req.Name) > 120 {
		return "name must be 1-120 characters"
	}
	if !colorPattern.MatchString(req.Color) {
		return "color must be a hex value like #1aa953"
	}
	if req.Quota < 0 {
		return "quota must be non-negative"
	}
	if req.Won != nil && *req.Won < 0 {
		return "won must be non-negative"
	}
	if req.WinPercentage < 0 || req.WinPercentage > 100 {
		return "winPercentage must be between 0 and 100"
	}
	if req.SortIndex != nil && *req.SortIndex < 0 {
		return "sortIndex must be non-negative"
	}
	return ""
}

func validatePrizeUpdate(req models.PrizeUpdate) string {
	if req.Name != nil && (len(*req.Name) < 1 || len(*req.Name) > 120) {
		return "name must be 1-120 characters"
	}
	if req.Color != nil && !colorPattern.MatchString(*req.Color) {
		return "color must be a hex value like #1aa953"
	}
	if req.Quota != nil && *req.Quota < 0 {
		return "quota must be non-negative"
	}
	if req.Won != nil && *req.Won < 0 {
		return "won must be non-negative"
	}
	if req.WinPercentage != nil && (*req.WinPercentage < 0 || *req.WinPercentage > 100) {
		return "winPercentage must be between 0 and 100"
	}
	if req.SortIndex != nil && *req.SortIndex < 0 {
		return "sortIndex must be non-negative"
	}
	return ""
}
