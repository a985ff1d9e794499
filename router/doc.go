// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires HTTP routes to their handlers.

NewRouter builds the full route table on a standard ServeMux using Go
1.22 method patterns. Public routes (catalog listing, the win endpoint,
the SSE feed) are registered bare; admin routes are wrapped in
middleware.RequireAuth so they demand a bearer session token. Everything
except the SSE stream goes through middleware.WithLogging.

CORS is applied by main around the whole mux, not per route.
*/
package router
