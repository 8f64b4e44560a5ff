package bus

import "testing"

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := New()

	first, second := 0, 0
	b.Subscribe(InventoryUpdated, func(Topic, Detail) { first++ })
	b.Subscribe(InventoryUpdated, func(Topic, Detail) { second++ })

	b.Publish(InventoryUpdated)

	if first != 1 || second != 1 {
		t.Errorf("expected both subscribers notified once, got %d and %d", first, second)
	}
}

func TestPublishIsTopicScoped(t *testing.T) {
	b := New()

	calls := 0
	b.Subscribe(ProductsUpdated, func(Topic, Detail) { calls++ })

	b.Publish(InventoryUpdated)
	b.Publish(CartUpdated)

	if calls != 0 {
		t.Errorf("expected no calls for other topics, got %d", calls)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()

	calls := 0
	sub := b.Subscribe(CartUpdated, func(Topic, Detail) { calls++ })

	b.Publish(CartUpdated)
	b.Unsubscribe(sub)
	b.Publish(CartUpdated)

	if calls != 1 {
		t.Errorf("expected 1 call after unsubscribe, got %d", calls)
	}

	// Double unsubscribe and nil are no-ops.
	b.Unsubscribe(sub)
	b.Unsubscribe(nil)
}

func TestDetailIsOptional(t *testing.T) {
	b := New()

	var got []Detail
	b.Subscribe(SiteContentUpdated, func(_ Topic, d Detail) { got = append(got, d) })

	b.Publish(SiteContentUpdated)
	b.PublishDetail(SiteContentUpdated, Detail{Type: "featured"})

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].Type != "" {
		t.Errorf("expected empty detail type, got %q", got[0].Type)
	}
	if got[1].Type != "featured" {
		t.Errorf("expected detail type %q, got %q", "featured", got[1].Type)
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	b := New()
	// Fire-and-forget: no subscribers is fine.
	b.Publish(StoreSettingsUpdated)
}
