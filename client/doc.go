// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client implements the wheel-side spin flow against a Spinwheel
server.

The flow is optimistic: Spin picks a winner from the locally cached
catalog (so the wheel animation can start immediately and land on the
right segment), then Resolve confirms the win with the server. The
server re-validates quota atomically, so a concurrent winner can turn a
local win into ErrQuotaConflict; the client refreshes its cache and the
caller spins again.

	c := client.New("http://localhost:4000")
	if err := c.Refresh(ctx); err != nil { ... }

	prize, err := c.Spin(ctx)
	if err != nil { ... }

	// animate toward prize's segment, then:
	confirmed, err := c.Resolve(ctx, prize.ID)
	if errors.Is(err, client.ErrQuotaConflict) {
		// pool changed underneath us; spin again
	}
*/
package client
