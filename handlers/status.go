// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/spinwheel/middleware"
	"github.com/danielhkuo/spinwheel/models"
)

type StatusHandler struct {
	db      *sql.DB
	started time.Time
}

func NewStatusHandler(db *sql.DB) *StatusHandler {
	return &StatusHandler{db: db, started: time.Now()}
}

// Root handles GET /
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"message":   "Spinwheel API is running",
		"endpoints": []string{"/health", "/prizes", "/auth/login"},
	})
}

// Health handles GET /health
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbOK := h.db.PingContext(r.Context()) == nil
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		OK:       true,
		Database: dbOK,
		Started:  humanize.Time(h.started),
	})
}
