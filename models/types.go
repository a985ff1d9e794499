// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// PrizeInput is the create payload. Won and SortIndex are optional:
// Won defaults to 0, SortIndex defaults to the end of the wheel.
type PrizeInput struct {
	Name          string  `json:"name"`
	Color         string  `json:"color"`
	Quota         int     `json:"quota"`
	Won           *int    `json:"won,omitempty"`
	WinPercentage float64 `json:"winPercentage"`
	Image         *string `json:"image,omitempty"`
	SortIndex     *int    `json:"sortIndex,omitempty"`
}

// PrizeUpdate is the partial update payload. Nil fields are left unchanged.
// An empty Image string clears the stored image.
type PrizeUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Color         *string  `json:"color,omitempty"`
	Quota         *int     `json:"quota,omitempty"`
	Won           *int     `json:"won,omitempty"`
	WinPercentage *float64 `json:"winPercentage,omitempty"`
	Image         *string  `json:"image,omitempty"`
	SortIndex     *int     `json:"sortIndex,omitempty"`
}

type PrizeOrder struct {
	ID        string `json:"id"`
	SortIndex int    `json:"sortIndex"`
}

type ReorderRequest struct {
	Order []PrizeOrder `json:"order"`
}

// Response types

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type MeResponse struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type PrizeResponse struct {
	Prize Prize `json:"prize"`
}

type PrizesResponse struct {
	Prizes []Prize `json:"prizes"`
}

type HealthResponse struct {
	OK       bool   `json:"ok"`
	Database bool   `json:"database"`
	Started  string `json:"started"`
}

// Domain types

// Prize is one selectable wheel outcome. Won counts recorded wins and never
// exceeds Quota after a successful operation; WinPercentage is a relative
// weight in [0, 100] and is not required to sum to 100 across the catalog.
type Prize struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Color         string    `json:"color"`
	Quota         int       `json:"quota"`
	Won           int       `json:"won"`
	WinPercentage float64   `json:"winPercentage"`
	Image         *string   `json:"image,omitempty"`
	SortIndex     int       `json:"sortIndex"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// Available reports whether the prize can still be won.
func (p Prize) Available() bool {
	return p.Won < p.Quota
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
