package store

import (
	"context"
	"testing"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/model"
)

func TestAddToCartMergesSameProductAndSize(t *testing.T) {
	st, _, _ := newTestStore(t)
	ctx := context.Background()

	st.AddToCart(ctx, model.CartLine{ProductID: "1", Size: "42", Quantity: 1})
	lines, err := st.AddToCart(ctx, model.CartLine{ProductID: "1", Size: "42", Quantity: 2})
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	if len(lines) != 1 {
		t.Fatalf("expected merged line, got %d lines", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", lines[0].Quantity)
	}

	// A different size is a separate line.
	lines, _ = st.AddToCart(ctx, model.CartLine{ProductID: "1", Size: "43", Quantity: 1})
	if len(lines) != 2 {
		t.Errorf("expected 2 lines for distinct sizes, got %d", len(lines))
	}
}

func TestAddToCartDefaultsQuantity(t *testing.T) {
	st, _, _ := newTestStore(t)

	lines, _ := st.AddToCart(context.Background(), model.CartLine{ProductID: "2"})
	if lines[0].Quantity != 1 {
		t.Errorf("expected default quantity 1, got %d", lines[0].Quantity)
	}
}

func TestRemoveFromCart(t *testing.T) {
	st, _, _ := newTestStore(t)
	ctx := context.Background()

	st.AddToCart(ctx, model.CartLine{ProductID: "1", Size: "42", Quantity: 1})
	st.AddToCart(ctx, model.CartLine{ProductID: "1", Size: "43", Quantity: 1})
	st.AddToCart(ctx, model.CartLine{ProductID: "2", Size: "40", Quantity: 1})

	lines, err := st.RemoveFromCart(ctx, "1", "42")
	if err != nil {
		t.Fatalf("RemoveFromCart: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines after size-scoped removal, got %d", len(lines))
	}

	// Empty size removes every line for the product.
	lines, _ = st.RemoveFromCart(ctx, "1", "")
	if len(lines) != 1 || lines[0].ProductID != "2" {
		t.Errorf("expected only product 2 left, got %v", lines)
	}
}

func TestCheckout(t *testing.T) {
	st, _, _ := newTestStore(t)
	ctx := context.Background()

	records := st.LoadInventory(ctx)
	before := records[0].Stock
	id := records[0].ID

	st.AddToCart(ctx, model.CartLine{ProductID: id, Size: "42", Quantity: 2})

	order, err := st.Checkout(ctx, "user@sneakergalaxy.com")
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if order.Total <= 0 {
		t.Errorf("expected positive total, got %v", order.Total)
	}
	if order.Currency != model.DefaultCurrency {
		t.Errorf("expected default currency, got %q", order.Currency)
	}

	// Stock decremented through the mirror path.
	for _, rec := range st.LoadInventory(ctx) {
		if rec.ID == id && rec.Stock != before-2 {
			t.Errorf("expected stock %d, got %d", before-2, rec.Stock)
		}
	}

	// Cart cleared, order recorded.
	if lines := st.LoadCart(ctx); len(lines) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(lines))
	}
	orders := st.LoadOrders(ctx)
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].ID != order.ID {
		t.Errorf("recorded order id %q != returned %q", orders[0].ID, order.ID)
	}
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	st, _, _ := newTestStore(t)

	if _, err := st.Checkout(context.Background(), ""); err == nil {
		t.Error("expected error for empty cart")
	}
}

func TestCheckoutAppliesSaleDiscount(t *testing.T) {
	st, _, _ := newTestStore(t)
	ctx := context.Background()

	st.LoadInventory(ctx)

	// Seed product 3 is on sale: 75 with 20% off.
	st.AddToCart(ctx, model.CartLine{ProductID: "3", Size: "40", Quantity: 1})
	order, err := st.Checkout(ctx, "")
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if order.Total != 60 {
		t.Errorf("expected discounted total 60, got %v", order.Total)
	}
}

func TestSettingsDefaultCurrency(t *testing.T) {
	st, _, _ := newTestStore(t)
	ctx := context.Background()

	settings := st.LoadSettings(ctx)
	if settings.Currency != model.DefaultCurrency {
		t.Errorf("expected default currency, got %q", settings.Currency)
	}

	settings.Currency = "EUR"
	settings.PrimaryColor = "#1a1a2e"
	if err := st.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	reloaded := st.LoadSettings(ctx)
	if reloaded.Currency != "EUR" || reloaded.PrimaryColor != "#1a1a2e" {
		t.Errorf("unexpected settings after save: %+v", reloaded)
	}
}

func TestSaveSiteContentStampsLastUpdated(t *testing.T) {
	st, _, _ := newTestStore(t)
	ctx := context.Background()

	if err := st.SaveSiteContent(ctx, model.SiteContent{HeroTitle: "New drops"}); err != nil {
		t.Fatalf("SaveSiteContent: %v", err)
	}

	content := st.LoadSiteContent(ctx)
	if content.HeroTitle != "New drops" {
		t.Errorf("expected hero title to persist, got %q", content.HeroTitle)
	}
	if content.LastUpdated == "" {
		t.Error("expected lastUpdated to be stamped")
	}
}
