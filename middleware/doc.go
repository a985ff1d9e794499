// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Admin Guard

Admin endpoints require a live session:

	mux.HandleFunc("POST /prizes/reset",
		middleware.WithLogging(middleware.RequireAuth(sessions, handler.Reset)))

The bearer token comes from the Authorization header; the resolved
auth.Session is passed to the wrapped handler.

# CORS Middleware

Enable cross-origin requests for the wheel frontend:

	server := http.Server{
		Handler: middleware.CORS(cfg.ClientOrigins, mux),
	}

Only origins on the configured allow-list receive CORS headers.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.PrizeInput
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
