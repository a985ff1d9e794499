// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/danielhkuo/spinwheel/models"
	"github.com/danielhkuo/spinwheel/wheel"
)

// Client is a wheel client for the Spinwheel API. It caches the prize
// catalog so spins can be selected locally without a round trip, and
// resolves the selected prize against the server, which remains the
// authority on quotas.
type Client struct {
	baseURL string
	http    *http.Client
	rnd     func() float64

	mu     sync.RWMutex
	prizes []models.Prize
}

// New creates a client for the API at baseURL (no trailing slash).
func New(baseURL string) *Client {
	return NewWithRand(baseURL, rand.Float64)
}

// NewWithRand creates a client with an injected randomness source, for
// deterministic tests.
func NewWithRand(baseURL string, rnd func() float64) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		rnd:     rnd,
	}
}

// Refresh fetches the catalog from GET /prizes and replaces the cache.
func (c *Client) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/prizes", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching prizes: unexpected status %d", resp.StatusCode)
	}

	var body models.PrizesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decoding prizes: %w", err)
	}

	c.mu.Lock()
	c.prizes = body.Prizes
	c.mu.Unlock()
	return nil
}

// Prizes returns a copy of the cached catalog in display order.
func (c *Client) Prizes() []models.Prize {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Prize, len(c.prizes))
	copy(out, c.prizes)
	return out
}

// Eligible returns the cached prizes that still have quota remaining.
func (c *Client) Eligible() []models.Prize {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return wheel.Eligible(c.prizes)
}

// Segments returns wheel segments for rendering: the cached catalog in
// order plus fillerCount "Try Again" slices.
func (c *Client) Segments(fillerCount int) []wheel.Segment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return wheel.BuildSegments(c.prizes, fillerCount, "Try Again", "#cccccc")
}

// applyWin merges an authoritative prize record into the cache.
func (c *Client) applyWin(p models.Prize) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.prizes {
		if c.prizes[i].ID == p.ID {
			c.prizes[i] = p
			return
		}
	}
}
