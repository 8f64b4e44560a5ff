// Package bus is the change-notification mechanism decoupling writers
// (inventory edits, product edits, content edits) from the independent
// readers that refresh when persisted state changes.
package bus

import "sync"

// Topic names a class of change notification.
type Topic string

// Topics published by the storefront.
const (
	InventoryUpdated     Topic = "inventoryUpdated"
	ProductsUpdated      Topic = "productsUpdated"
	SiteContentUpdated   Topic = "siteContentUpdated"
	StoreSettingsUpdated Topic = "storeSettingsUpdated"
	CartUpdated          Topic = "cartUpdated"
)

// Detail is the optional payload attached to a notification. Subscribers
// must not depend on Type being set.
type Detail struct {
	Type string `json:"type,omitempty"`
}

// Handler receives notifications for a subscribed topic.
type Handler func(topic Topic, detail Detail)

// Subscription identifies a registered handler so it can be removed.
// Handlers themselves are not comparable.
type Subscription struct {
	topic Topic
	id    int
}

// Bus dispatches notifications synchronously to all current subscribers of a
// topic. Delivery is fire-and-forget: there is no ordering guarantee between
// subscribers and no delivery across process restarts (state is re-derived
// from storage on load, not from replayed events).
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[Topic]map[int]Handler
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[Topic]map[int]Handler)}
}

// Subscribe registers a handler for a topic. The returned subscription must
// be passed to Unsubscribe on teardown to avoid leaking handlers.
func (b *Bus) Subscribe(topic Topic, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]Handler)
	}
	b.subs[topic][b.nextID] = h
	return &Subscription{topic: topic, id: b.nextID}
}

// Unsubscribe removes a previously registered handler. Unsubscribing twice
// is a no-op.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subs[sub.topic], sub.id)
}

// Publish notifies all subscribers of the topic with an empty detail.
func (b *Bus) Publish(topic Topic) {
	b.PublishDetail(topic, Detail{})
}

// PublishDetail notifies all subscribers of the topic. Handlers run
// synchronously on the caller's goroutine.
func (b *Bus) PublishDetail(topic Topic, detail Detail) {
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(topic, detail)
	}
}
