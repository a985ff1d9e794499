// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: username, password
  - ChangePasswordRequest: current_password, new_password
  - PrizeInput: full prize payload for creation
  - PrizeUpdate: partial prize payload (nil fields unchanged)
  - ReorderRequest: list of id/sortIndex pairs

# Response Types

Types for JSON responses:

  - LoginResponse: token, expiresAt
  - MeResponse: username, expiresAt
  - PrizeResponse: single prize
  - PrizesResponse: prize list in wheel order
  - HealthResponse: ok, database, started
  - ErrorResponse: error, message

# Domain Types

Prize is the one domain type. Its JSON shape is the wire contract shared
with the wheel frontend:

	{id, name, color, quota, won, winPercentage, image?, sortIndex}

The invariant 0 <= won <= quota holds after every successful operation.
Only the catalog store's IncrementWon may raise won.
*/
package models
