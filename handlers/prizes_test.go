// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/spinwheel/auth"
	"github.com/danielhkuo/spinwheel/catalog"
	"github.com/danielhkuo/spinwheel/events"
	"github.com/danielhkuo/spinwheel/models"
	"github.com/danielhkuo/spinwheel/testutil"
)

func adminSession() auth.Session {
	return auth.Session{
		Token:     "test-token",
		Username:  "admin",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestListPrizesOrdering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPrizeHandler(catalog.NewStore(db), events.NewBroadcaster())

	// Insert out of order; listing must come back by sort_index
	testutil.CreateTestPrize(t, db, "Third", 5, 0, 10, 2)
	testutil.CreateTestPrize(t, db, "First", 5, 0, 10, 0)
	testutil.CreateTestPrize(t, db, "Second", 5, 0, 10, 1)

	req := testutil.MakeRequest("GET", "/prizes", nil, nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PrizesResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Prizes) != 3 {
		t.Fatalf("Expected 3 prizes, got %d", len(resp.Prizes))
	}
	want := []string{"First", "Second", "Third"}
	for i, name := range want {
		if resp.Prizes[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, resp.Prizes[i].Name)
		}
	}
}

func TestCreatePrize(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPrizeHandler(catalog.NewStore(db), events.NewBroadcaster())

	testutil.CreateTestPrize(t, db, "Existing", 5, 0, 10, 0)

	input := models.PrizeInput{Name: "Mug", Color: "#1aa953", Quota: 10, WinPercentage: 25}
	req := testutil.MakeRequest("POST", "/prizes", input, nil)
	w := httptest.NewRecorder()
	handler.Create(w, req, adminSession())

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.PrizeResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Prize.Name != "Mug" || resp.Prize.Quota != 10 {
		t.Errorf("Unexpected prize: %+v", resp.Prize)
	}
	// No sortIndex given: appended after the existing prize
	if resp.Prize.SortIndex != 1 {
		t.Errorf("Expected sortIndex 1, got %d", resp.Prize.SortIndex)
	}
	if resp.Prize.Won != 0 {
		t.Errorf("Expected won to start at 0, got %d", resp.Prize.Won)
	}
}

func TestCreatePrizeValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPrizeHandler(catalog.NewStore(db), events.NewBroadcaster())

	cases := []struct {
		name  string
		input models.PrizeInput
	}{
		{"empty name", models.PrizeInput{Name: "", Color: "#fff", Quota: 1, WinPercentage: 10}},
		{"bad color", models.PrizeInput{Name: "X", Color: "red", Quota: 1, WinPercentage: 10}},
		{"negative quota", models.PrizeInput{Name: "X", Color: "#fff", Quota: -1, WinPercentage: 10}},
		{"weight over 100", models.PrizeInput{Name: "X", Color: "#fff", Quota: 1, WinPercentage: 101}},
		{"negative weight", models.PrizeInput{Name: "X", Color: "#fff", Quota: 1, WinPercentage: -5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/prizes", tc.input, nil)
			w := httptest.NewRecorder()
			handler.Create(w, req, adminSession())
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestUpdatePrizePartial(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPrizeHandler(catalog.NewStore(db), events.NewBroadcaster())
	id := testutil.CreateTestPrize(t, db, "Sticker", 10, 2, 40, 0)

	newQuota := 20
	req := testutil.MakeRequest("PUT", "/prizes/"+id, models.PrizeUpdate{Quota: &newQuota}, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	handler.Update(w, req, adminSession())

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PrizeResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Prize.Quota != 20 {
		t.Errorf("Expected quota 20, got %d", resp.Prize.Quota)
	}
	// Untouched fields keep their values
	if resp.Prize.Name != "Sticker" || resp.Prize.Won != 2 || resp.Prize.WinPercentage != 40 {
		t.Errorf("Partial update clobbered other fields: %+v", resp.Prize)
	}
}

func TestUpdatePrizeNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPrizeHandler(catalog.NewStore(db), events.NewBroadcaster())

	name := "Ghost"
	req := testutil.MakeRequest("PUT", "/prizes/nonexistent", models.PrizeUpdate{Name: &name}, nil)
	req.SetPathValue("id", "00000000-0000-0000-0000-000000000000")
	w := httptest.NewRecorder()
	handler.Update(w, req, adminSession())

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestDeletePrize(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPrizeHandler(catalog.NewStore(db), events.NewBroadcaster())
	id := testutil.CreateTestPrize(t, db, "Doomed", 1, 0, 10, 0)

	req := testutil.MakeRequest("DELETE", "/prizes/"+id, nil, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	handler.Delete(w, req, adminSession())

	testutil.AssertStatus(t, w, http.StatusNoContent)

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM prizes").Scan(&count); err != nil {
		t.Fatalf("Failed to count prizes: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 prizes after delete, got %d", count)
	}

	// Deleting again is a 404
	w = httptest.NewRecorder()
	handler.Delete(w, req, adminSession())
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestReorderPrizes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPrizeHandler(catalog.NewStore(db), events.NewBroadcaster())
	idA := testutil.CreateTestPrize(t, db, "A", 1, 0, 10, 0)
	idB := testutil.CreateTestPrize(t, db, "B", 1, 0, 10, 1)

	body := models.ReorderRequest{Order: []models.PrizeOrder{
		{ID: idA, SortIndex: 1},
		{ID: idB, SortIndex: 0},
	}}
	req := testutil.MakeRequest("POST", "/prizes/reorder", body, nil)
	w := httptest.NewRecorder()
	handler.Reorder(w, req, adminSession())

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PrizesResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Prizes) != 2 || resp.Prizes[0].Name != "B" || resp.Prizes[1].Name != "A" {
		t.Errorf("Expected order B, A after reorder, got %+v", resp.Prizes)
	}
}

func TestResetWonCounters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPrizeHandler(catalog.NewStore(db), events.NewBroadcaster())
	testutil.CreateTestPrize(t, db, "A", 5, 3, 10, 0)
	testutil.CreateTestPrize(t, db, "B", 5, 5, 10, 1)

	req := testutil.MakeRequest("POST", "/prizes/reset", nil, nil)
	w := httptest.NewRecorder()
	handler.Reset(w, req, adminSession())

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PrizesResponse
	testutil.AssertJSON(t, w, &resp)

	for _, p := range resp.Prizes {
		if p.Won != 0 {
			t.Errorf("Prize %s: expected won 0 after reset, got %d", p.Name, p.Won)
		}
	}

	// Idempotent: a second reset leaves everything at zero
	w = httptest.NewRecorder()
	handler.Reset(w, testutil.MakeRequest("POST", "/prizes/reset", nil, nil), adminSession())
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestMutationsNotifySubscribers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	broadcaster := events.NewBroadcaster()
	handler := NewPrizeHandler(catalog.NewStore(db), broadcaster)

	ch, cancel := broadcaster.Subscribe()
	defer cancel()

	input := models.PrizeInput{Name: "Mug", Color: "#1aa953", Quota: 10, WinPercentage: 25}
	req := testutil.MakeRequest("POST", "/prizes", input, nil)
	w := httptest.NewRecorder()
	handler.Create(w, req, adminSession())
	testutil.AssertStatus(t, w, http.StatusCreated)

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Error("Expected a catalog change notification after create")
	}
}
