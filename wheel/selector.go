// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import "github.com/danielhkuo/spinwheel/models"

// Pick selects one prize from pool by win-percentage weight. rnd must
// return values in [0, 1). Returns false only when pool is empty.
//
// Selection rules, in order:
//
//  1. A prize with weight >= 100 always wins (first one in pool order).
//  2. If every weight is 0, each prize is equally likely.
//  3. Otherwise weights are sampled cumulatively, normalized by their sum,
//     so weights need not add up to 100. The admin UI's "100% target" is a
//     hint, not a constraint.
//
// Pick never consults quota or won; restrict pool with Eligible first.
// Both the server and the spin client run this exact function so that the
// previewed winner and the recorded winner only diverge on genuine quota
// races. Pool order is the tie-break at floating-point boundaries and must
// therefore be the shared sort_index order.
func Pick(pool []models.Prize, rnd func() float64) (models.Prize, bool) {
	if len(pool) == 0 {
		return models.Prize{}, false
	}

	for _, p := range pool {
		if p.WinPercentage >= 100 {
			return p, true
		}
	}

	var total float64
	for _, p := range pool {
		total += p.WinPercentage
	}
	if total == 0 {
		return pool[int(rnd()*float64(len(pool)))], true
	}

	r := rnd() * total
	var running float64
	for _, p := range pool {
		running += p.WinPercentage
		if r <= running {
			return p, true
		}
	}

	// Accumulated rounding error let r fall past the final bucket.
	return pool[len(pool)-1], true
}

// Eligible returns the prizes that can still be won, preserving order.
func Eligible(prizes []models.Prize) []models.Prize {
	pool := make([]models.Prize, 0, len(prizes))
	for _, p := range prizes {
		if p.Available() {
			pool = append(pool, p)
		}
	}
	return pool
}
