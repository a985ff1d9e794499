// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/spinwheel/models"
)

// fakeServer serves a mutable catalog and a scripted win endpoint.
type fakeServer struct {
	prizes         atomic.Pointer[[]models.Prize]
	winStatus      atomic.Int32
	catalogFetches atomic.Int32
}

func newFakeServer(prizes []models.Prize) *fakeServer {
	fs := &fakeServer{}
	fs.prizes.Store(&prizes)
	fs.winStatus.Store(http.StatusOK)
	return fs
}

func (fs *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /prizes", func(w http.ResponseWriter, r *http.Request) {
		fs.catalogFetches.Add(1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.PrizesResponse{Prizes: *fs.prizes.Load()})
	})
	mux.HandleFunc("POST /prizes/{id}/win", func(w http.ResponseWriter, r *http.Request) {
		status := int(fs.winStatus.Load())
		if status != http.StatusOK {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: http.StatusText(status)})
			return
		}
		id := r.PathValue("id")
		for _, p := range *fs.prizes.Load() {
			if p.ID == id {
				p.Won++
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(models.PrizeResponse{Prize: p})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	return mux
}

func testPrizes() []models.Prize {
	return []models.Prize{
		{ID: "aaa", Name: "Sticker", Color: "#ff0000", Quota: 10, Won: 0, WinPercentage: 20, SortIndex: 0},
		{ID: "bbb", Name: "Mug", Color: "#00ff00", Quota: 5, Won: 5, WinPercentage: 30, SortIndex: 1},
		{ID: "ccc", Name: "Shirt", Color: "#0000ff", Quota: 3, Won: 1, WinPercentage: 50, SortIndex: 2},
	}
}

func TestRefreshPopulatesCache(t *testing.T) {
	fs := newFakeServer(testPrizes())
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if got := len(c.Prizes()); got != 3 {
		t.Errorf("Expected 3 cached prizes, got %d", got)
	}
	// Mug is sold out (won == quota) and must not be eligible
	for _, p := range c.Eligible() {
		if p.ID == "bbb" {
			t.Error("Sold-out prize appeared in eligible pool")
		}
	}
	if got := len(c.Eligible()); got != 2 {
		t.Errorf("Expected 2 eligible prizes, got %d", got)
	}
}

func TestSpinSelectsFromEligiblePool(t *testing.T) {
	fs := newFakeServer(testPrizes())
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	// rnd = 0.1: eligible total is 70, r = 7, lands on Sticker (weight 20)
	c := NewWithRand(srv.URL, func() float64 { return 0.1 })
	prize, err := c.Spin(context.Background())
	if err != nil {
		t.Fatalf("Spin failed: %v", err)
	}
	if prize.ID != "aaa" {
		t.Errorf("Expected prize aaa, got %s", prize.ID)
	}
}

func TestSpinRefreshesEmptyCache(t *testing.T) {
	fs := newFakeServer(testPrizes())
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	c := NewWithRand(srv.URL, func() float64 { return 0.5 })
	if _, err := c.Spin(context.Background()); err != nil {
		t.Fatalf("Spin failed: %v", err)
	}
	if fs.catalogFetches.Load() == 0 {
		t.Error("Expected Spin to fetch the catalog when cache is empty")
	}
}

func TestSpinAllSoldOut(t *testing.T) {
	fs := newFakeServer([]models.Prize{
		{ID: "aaa", Name: "Sticker", Quota: 1, Won: 1, WinPercentage: 100},
	})
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Spin(context.Background())
	if !errors.Is(err, ErrSoldOut) {
		t.Errorf("Expected ErrSoldOut, got %v", err)
	}
}

func TestResolveSuccessPatchesCache(t *testing.T) {
	fs := newFakeServer(testPrizes())
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	confirmed, err := c.Resolve(context.Background(), "aaa")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if confirmed.Won != 1 {
		t.Errorf("Expected won=1 from server, got %d", confirmed.Won)
	}

	for _, p := range c.Prizes() {
		if p.ID == "aaa" && p.Won != 1 {
			t.Errorf("Expected cache patched to won=1, got %d", p.Won)
		}
	}
}

func TestResolveConflictRefreshes(t *testing.T) {
	fs := newFakeServer(testPrizes())
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	// Server says sold out; the fresh catalog shows the prize exhausted
	fs.winStatus.Store(http.StatusConflict)
	updated := testPrizes()
	updated[0].Won = updated[0].Quota
	fs.prizes.Store(&updated)

	_, err := c.Resolve(context.Background(), "aaa")
	if !errors.Is(err, ErrQuotaConflict) {
		t.Fatalf("Expected ErrQuotaConflict, got %v", err)
	}
	for _, p := range c.Eligible() {
		if p.ID == "aaa" {
			t.Error("Exhausted prize still eligible after refresh")
		}
	}
}

func TestResolvePrizeGone(t *testing.T) {
	fs := newFakeServer(testPrizes())
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	_, err := c.Resolve(context.Background(), "does-not-exist")
	if !errors.Is(err, ErrPrizeGone) {
		t.Errorf("Expected ErrPrizeGone, got %v", err)
	}
}

func TestSegmentsPadWithFillers(t *testing.T) {
	fs := newFakeServer(testPrizes())
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	segments := c.Segments(3)
	if len(segments) != 6 {
		t.Fatalf("Expected 6 segments, got %d", len(segments))
	}
	for _, s := range segments[3:] {
		if !s.Filler {
			t.Error("Expected trailing segments to be fillers")
		}
	}
}
