// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog is the Postgres-backed prize store.

# Store

Store wraps *sql.DB and owns all prize reads and writes:

	store := catalog.NewStore(db)
	prizes, err := store.List(ctx)

Admin mutations (Create, Update, Delete, Reorder, ResetWon) are plain
row-level updates with last-write-wins semantics.

# The Quota Invariant

IncrementWon is the only operation allowed to raise won, and it enforces
won <= quota at the storage layer with a single conditional update:

	UPDATE prizes SET won = won + 1 WHERE id = $1 AND won < quota

When the update matches no row the store probes whether the prize exists
and reports ErrQuotaExceeded (sold out, recoverable) or ErrNotFound
(catalog changed mid-spin, also recoverable). No in-process locking is
needed; Postgres serializes the conditional writes per row.
*/
package catalog
