// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/spinwheel/auth"
	"github.com/danielhkuo/spinwheel/catalog"
	"github.com/danielhkuo/spinwheel/cliparse"
	"github.com/danielhkuo/spinwheel/events"
	"github.com/danielhkuo/spinwheel/handlers"
	"github.com/danielhkuo/spinwheel/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, sessions auth.SessionStore) *http.ServeMux {
	mux := http.NewServeMux()

	store := catalog.NewStore(db)
	broadcaster := events.NewBroadcaster()

	// Initialize handlers
	prizeHandler := handlers.NewPrizeHandler(store, broadcaster)
	winHandler := handlers.NewWinHandler(store, broadcaster)
	authHandler := handlers.NewAuthHandler(db, sessions)
	eventsHandler := handlers.NewEventsHandler(broadcaster)
	statusHandler := handlers.NewStatusHandler(db)

	// Service status
	mux.HandleFunc("GET /{$}", middleware.WithLogging(statusHandler.Root))
	mux.HandleFunc("GET /health", middleware.WithLogging(statusHandler.Health))

	// Admin sessions
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /auth/logout", middleware.WithLogging(middleware.RequireAuth(sessions, authHandler.Logout)))
	mux.HandleFunc("GET /auth/me", middleware.WithLogging(middleware.RequireAuth(sessions, authHandler.Me)))
	mux.HandleFunc("POST /auth/password", middleware.WithLogging(middleware.RequireAuth(sessions, authHandler.ChangePassword)))

	// Catalog reads and the spin path (public)
	mux.HandleFunc("GET /prizes", middleware.WithLogging(prizeHandler.List))
	mux.HandleFunc("POST /prizes/{id}/win", middleware.WithLogging(winHandler.RecordWin))
	mux.HandleFunc("GET /prizes/events", eventsHandler.Stream)

	// Catalog mutations (admin operations)
	mux.HandleFunc("POST /prizes", middleware.WithLogging(middleware.RequireAuth(sessions, prizeHandler.Create)))
	mux.HandleFunc("PUT /prizes/{id}", middleware.WithLogging(middleware.RequireAuth(sessions, prizeHandler.Update)))
	mux.HandleFunc("DELETE /prizes/{id}", middleware.WithLogging(middleware.RequireAuth(sessions, prizeHandler.Delete)))
	mux.HandleFunc("POST /prizes/reorder", middleware.WithLogging(middleware.RequireAuth(sessions, prizeHandler.Reorder)))
	mux.HandleFunc("POST /prizes/reset", middleware.WithLogging(middleware.RequireAuth(sessions, prizeHandler.Reset)))

	return mux
}
