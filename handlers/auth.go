// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/spinwheel/auth"
	"github.com/danielhkuo/spinwheel/middleware"
	"github.com/danielhkuo/spinwheel/models"
)

type AuthHandler struct {
	db       *sql.DB
	sessions auth.SessionStore
}

func NewAuthHandler(db *sql.DB, sessions auth.SessionStore) *AuthHandler {
	return &AuthHandler{db: db, sessions: sessions}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	admin, err := auth.FindAdmin(r.Context(), h.db, req.Username)
	if err != nil {
		slog.Error("failed to look up admin", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !auth.VerifyAdminPassword(admin, req.Password) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	session := h.sessions.Create(admin.Username)
	slog.Info("admin logged in", "username", admin.Username)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, s auth.Session) {
	h.sessions.Delete(s.Token)
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, s auth.Session) {
	middleware.JSONResponse(w, http.StatusOK, models.MeResponse{
		Username:  s.Username,
		ExpiresAt: s.ExpiresAt,
	})
}

// ChangePassword handles POST /auth/password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request, s auth.Session) {
	var req models.ChangePasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.NewPassword) < 8 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "New password must be at least 8 characters")
		return
	}

	admin, err := auth.FindAdmin(r.Context(), h.db, s.Username)
	if err != nil || admin == nil {
		slog.Error("failed to look up admin for password change", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !auth.VerifyAdminPassword(admin, req.CurrentPassword) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	if err := auth.UpdateAdminPassword(r.Context(), h.db, admin.ID, req.NewPassword); err != nil {
		slog.Error("failed to update admin password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update password")
		return
	}

	slog.Info("admin password changed", "username", admin.Username)
	w.WriteHeader(http.StatusNoContent)
}
