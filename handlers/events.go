// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"

	"github.com/danielhkuo/spinwheel/events"
	"github.com/danielhkuo/spinwheel/middleware"
)

type EventsHandler struct {
	events *events.Broadcaster
}

func NewEventsHandler(broadcaster *events.Broadcaster) *EventsHandler {
	return &EventsHandler{events: broadcaster}
}

// Stream handles GET /prizes/events: a server-sent-events feed that emits
// prizes_updated whenever the catalog changes, so clients refetch before
// the next spin instead of spinning against stale quotas.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// Initial comment keeps proxies from buffering the idle stream.
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	ch, cancel := h.events.Subscribe()
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ch:
			fmt.Fprint(w, "event: prizes_updated\ndata: {}\n\n")
			flusher.Flush()
		}
	}
}
