// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Spinwheel API.

# Handler Types

Each handler is a struct with its dependencies injected:

  - PrizeHandler: catalog CRUD, reorder, reset
  - WinHandler: the win-recording path
  - AuthHandler: admin login/logout/me/change-password
  - EventsHandler: catalog-changed SSE stream
  - StatusHandler: root banner and health

Handlers are created via constructor functions:

	prizeHandler := handlers.NewPrizeHandler(store, broadcaster)

# Spin Flow

The wheel client picks its winner locally (package wheel) so the
animation starts instantly, then confirms it here:

	POST /prizes/{id}/win → RecordWin

RecordWin delegates to catalog.IncrementWon, the single atomic
read-modify-write that keeps won <= quota. A quota race answers 409 and a
vanished prize answers 404; both tell the client to refresh its pool and
re-run the spin flow.

# Admin Operations

Catalog mutations require a bearer session token (Authorization header):

	POST   /prizes          → Create
	PUT    /prizes/{id}     → Update
	DELETE /prizes/{id}     → Delete
	POST   /prizes/reorder  → Reorder
	POST   /prizes/reset    → Reset

Input validation (name length, hex color, non-negative quota, weight in
[0,100]) happens at this boundary so the selector and the store only ever
see well-formed prizes.

# Change Notifications

Every successful mutation calls Broadcaster.Notify; EventsHandler.Stream
relays the signal to connected clients as a prizes_updated SSE event.
*/
package handlers
