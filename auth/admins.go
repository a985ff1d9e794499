// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// Admin is one row of the admins table.
type Admin struct {
	ID       string
	Username string
	Digest   Digest
}

// FindAdmin looks an admin up by username. Returns nil, nil when absent.
func FindAdmin(ctx context.Context, db *sql.DB, username string) (*Admin, error) {
	var a Admin
	err := db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, password_salt FROM admins WHERE username = $1
	`, username).Scan(&a.ID, &a.Username, &a.Digest.Hash, &a.Digest.Salt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &a, nil
}

// EnsureAdmin creates the admin account if it does not exist yet. Called
// once at startup with the configured credentials.
func EnsureAdmin(ctx context.Context, db *sql.DB, username, password string) error {
	admin, err := FindAdmin(ctx, db, username)
	if err != nil {
		return err
	}
	if admin != nil {
		return nil
	}

	digest, err := HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `
		INSERT INTO admins (username, password_hash, password_salt) VALUES ($1, $2, $3)
	`, username, digest.Hash, digest.Salt); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	slog.Info("created default admin account, update the password immediately", "username", username)
	return nil
}

// VerifyAdminPassword checks a login attempt against the stored digest.
func VerifyAdminPassword(admin *Admin, password string) bool {
	if admin == nil {
		return false
	}
	return VerifyPassword(password, admin.Digest)
}

// UpdateAdminPassword replaces the stored digest.
func UpdateAdminPassword(ctx context.Context, db *sql.DB, adminID, newPassword string) error {
	digest, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `
		UPDATE admins SET password_hash = $1, password_salt = $2, updated_at = NOW() WHERE id = $3
	`, digest.Hash, digest.Salt, adminID); err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}
	return nil
}
