// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4000)
  - DatabaseURL: PostgreSQL connection string (required)
  - AdminUsername/AdminPassword: Admin credentials (default: admin/admin123)
  - SessionTTL: Admin session lifetime (default: 8h)
  - ClientOrigins: CORS allow-list (default: http://localhost:5173)

# CLI Flags

	-p               Server port
	-d               Database URL
	--admin-user     Admin username
	--admin-password Admin password
	--session-ttl    Session lifetime (Go duration)
	--client-origin  Comma-separated CORS origins

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	ADMIN_USERNAME → --admin-user
	ADMIN_PASSWORD → --admin-password
	SESSION_TTL    → --session-ttl
	CLIENT_ORIGIN  → --client-origin

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if DATABASE_URL is missing or SESSION_TTL is
not a positive duration. Admin credentials fall back to dev defaults; the
server logs a warning when UsingDefaultCredentials reports true.
*/
package cliparse
