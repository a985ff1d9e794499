// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wheel implements weighted prize selection.

# Selection

Pick draws one prize from a pool by win-percentage weight:

	pool := wheel.Eligible(prizes)
	prize, ok := wheel.Pick(pool, rand.Float64)

The function is pure: given the same pool and random source it always
returns the same prize, which is what lets the spin client preview the
winner before the server confirms it. Inject a deterministic rnd in tests.

# Segments

BuildSegments maps the catalog (plus optional filler slices) onto wheel
positions. SegmentIndex finds the slice a spin animation should stop on.
Filler slices are tagged and never eligible for selection.
*/
package wheel
