// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielhkuo/spinwheel/models"
	"github.com/danielhkuo/spinwheel/wheel"
)

var (
	// ErrSoldOut means no prize in the catalog has quota remaining.
	ErrSoldOut = errors.New("all prizes sold out")

	// ErrQuotaConflict means the selected prize sold out between the
	// local spin and the server confirmation. The cache has been
	// refreshed; the caller may spin again.
	ErrQuotaConflict = errors.New("prize quota exceeded")

	// ErrPrizeGone means the selected prize was deleted server-side.
	// The cache has been refreshed; the caller may spin again.
	ErrPrizeGone = errors.New("prize no longer exists")
)

// Spin selects a winner from the cached eligible pool using the same
// weighted algorithm the server trusts. It refreshes the cache first if
// it is empty. The selection is optimistic: call Resolve to make it
// count.
func (c *Client) Spin(ctx context.Context) (models.Prize, error) {
	if len(c.Prizes()) == 0 {
		if err := c.Refresh(ctx); err != nil {
			return models.Prize{}, err
		}
	}

	prize, ok := wheel.Pick(c.Eligible(), c.rnd)
	if !ok {
		return models.Prize{}, ErrSoldOut
	}
	return prize, nil
}

// Resolve records a win for the given prize via POST /prizes/{id}/win.
// On success the returned prize is the server's updated record and the
// cache is patched in place. A 409 or 404 refreshes the cache and
// returns ErrQuotaConflict or ErrPrizeGone respectively.
func (c *Client) Resolve(ctx context.Context, prizeID string) (models.Prize, error) {
	url := fmt.Sprintf("%s/prizes/%s/win", c.baseURL, prizeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return models.Prize{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Prize{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body models.PrizeResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return models.Prize{}, fmt.Errorf("decoding win response: %w", err)
		}
		c.applyWin(body.Prize)
		return body.Prize, nil

	case http.StatusConflict:
		if err := c.Refresh(ctx); err != nil {
			return models.Prize{}, err
		}
		return models.Prize{}, ErrQuotaConflict

	case http.StatusNotFound:
		if err := c.Refresh(ctx); err != nil {
			return models.Prize{}, err
		}
		return models.Prize{}, ErrPrizeGone

	default:
		return models.Prize{}, fmt.Errorf("recording win: unexpected status %d", resp.StatusCode)
	}
}
