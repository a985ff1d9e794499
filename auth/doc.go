// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin authentication: password digests, bearer-token
sessions, and the admins table.

# Passwords

Passwords are stored as scrypt digests (hex salt + hex key) and verified
in constant time:

	digest, err := auth.HashPassword(password)
	ok := auth.VerifyPassword(password, digest)

# Sessions

Logging in yields a random bearer token with a TTL:

	store := auth.NewMemoryStore(8 * time.Hour)
	session := store.Create(username)

SessionStore is an interface so handlers never touch a package-level map;
tests inject the same in-memory implementation with short TTLs, and a
persistent store can be swapped in without touching handler code.

# Admin Accounts

EnsureAdmin bootstraps the configured account at startup. FindAdmin,
VerifyAdminPassword, and UpdateAdminPassword back the login and
change-password endpoints.
*/
package auth
