// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Spinwheel API server.

Spinwheel is a prize wheel service: an admin curates a catalog of
weighted prizes with win quotas, and wheel clients spin locally then
record wins against the server, which enforces quotas atomically.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 4000 -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 4000)
  - ADMIN_USERNAME (--admin-user): Bootstrap admin login (default: admin)
  - ADMIN_PASSWORD (--admin-password): Bootstrap admin password
  - SESSION_TTL (--session-ttl): Admin session lifetime (default: 8h)
  - CLIENT_ORIGIN (--client-origin): Allowed CORS origins, comma separated

A warning is logged when the server runs with the default credentials.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (catalog, wins, auth, events, status)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, auth, logging, JSON helpers
  - models: Request/response types
  - wheel: Weighted prize selection, shared with the client
  - catalog: Prize storage on PostgreSQL
  - auth: Password hashing, admin accounts, session store
  - events: Catalog change broadcasting for the SSE feed
  - client: Go wheel client (spin and resolve against a server)
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
