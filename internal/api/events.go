package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/bus"
)

// EventsHandler bridges the change-notification bus to HTTP clients as
// server-sent events, the way the storefront's views subscribe to updates.
type EventsHandler struct {
	Bus *bus.Bus
}

type busEvent struct {
	topic  bus.Topic
	detail bus.Detail
}

// Stream handles GET /api/events.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		jsonError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Slow clients drop notifications rather than block publishers.
	events := make(chan busEvent, 16)
	topics := []bus.Topic{
		bus.InventoryUpdated,
		bus.ProductsUpdated,
		bus.SiteContentUpdated,
		bus.StoreSettingsUpdated,
		bus.CartUpdated,
	}
	subs := make([]*bus.Subscription, 0, len(topics))
	for _, topic := range topics {
		subs = append(subs, h.Bus.Subscribe(topic, func(t bus.Topic, d bus.Detail) {
			select {
			case events <- busEvent{topic: t, detail: d}:
			default:
			}
		}))
	}
	defer func() {
		for _, sub := range subs {
			h.Bus.Unsubscribe(sub)
		}
	}()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-events:
			data, _ := json.Marshal(ev.detail)
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.topic, data)
			flusher.Flush()
		}
	}
}
