// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - prizes: Prize catalog with quota, won counter, and win weight
  - admins: Admin accounts with scrypt password digests

# Invariants

The prizes table is the single source of truth for won/quota. The won
counter is only ever raised through the catalog store's conditional
increment, which is what keeps won <= quota under concurrent spins.

# Indexes

	prizes.sort_index - wheel segment ordering
	admins.username   - unique
*/
package db
