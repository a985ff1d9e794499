// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters; the digest format is salt and hash as hex strings.
const (
	scryptN   = 16384
	scryptR   = 8
	scryptP   = 1
	keyLength = 64
)

// Digest is a stored password: hex salt plus hex scrypt key.
type Digest struct {
	Salt string
	Hash string
}

// HashPassword derives a fresh digest with a random 16-byte salt.
func HashPassword(password string) (Digest, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return Digest{}, fmt.Errorf("failed to generate salt: %w", err)
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return Digest{}, fmt.Errorf("failed to derive key: %w", err)
	}
	return Digest{
		Salt: hex.EncodeToString(salt),
		Hash: hex.EncodeToString(key),
	}, nil
}

// VerifyPassword re-derives the key and compares in constant time.
func VerifyPassword(password string, digest Digest) bool {
	salt, err := hex.DecodeString(digest.Salt)
	if err != nil {
		return false
	}
	stored, err := hex.DecodeString(digest.Hash)
	if err != nil {
		return false
	}
	derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return false
	}
	return hmac.Equal(stored, derived)
}
