package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/bus"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/model"
)

// LoadSiteContent returns the site content, or an empty value if none is
// persisted.
func (s *Store) LoadSiteContent(ctx context.Context) model.SiteContent {
	var content model.SiteContent
	s.loadJSON(ctx, keySiteContent, &content)
	return content
}

// SaveSiteContent stamps lastUpdated, persists the content, and publishes
// siteContentUpdated.
func (s *Store) SaveSiteContent(ctx context.Context, content model.SiteContent) error {
	content.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	if err := s.storeJSON(ctx, keySiteContent, content); err != nil {
		return err
	}
	s.bus.Publish(bus.SiteContentUpdated)
	return nil
}

// LoadSettings returns the store settings with the currency defaulted.
func (s *Store) LoadSettings(ctx context.Context) model.StoreSettings {
	var settings model.StoreSettings
	s.loadJSON(ctx, keyStoreSettings, &settings)
	if settings.Currency == "" {
		settings.Currency = model.DefaultCurrency
	}
	return settings
}

// SaveSettings persists the store settings and publishes
// storeSettingsUpdated.
func (s *Store) SaveSettings(ctx context.Context, settings model.StoreSettings) error {
	if settings.Currency == "" {
		settings.Currency = model.DefaultCurrency
	}
	if err := s.storeJSON(ctx, keyStoreSettings, settings); err != nil {
		return err
	}
	s.bus.Publish(bus.StoreSettingsUpdated)
	return nil
}

// LoadCart returns the current cart lines.
func (s *Store) LoadCart(ctx context.Context) []model.CartLine {
	var lines []model.CartLine
	s.loadJSON(ctx, keyCart, &lines)
	return lines
}

// AddToCart adds a line to the cart. A line for the same (product, size)
// pair merges quantities instead of duplicating the entry.
func (s *Store) AddToCart(ctx context.Context, line model.CartLine) ([]model.CartLine, error) {
	if line.Quantity <= 0 {
		line.Quantity = 1
	}

	lines := s.LoadCart(ctx)
	merged := false
	for i := range lines {
		if lines[i].ProductID == line.ProductID && lines[i].Size == line.Size {
			lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, line)
	}

	if err := s.storeJSON(ctx, keyCart, lines); err != nil {
		return nil, err
	}
	s.bus.PublishDetail(bus.CartUpdated, bus.Detail{Type: "add"})
	return lines, nil
}

// RemoveFromCart removes the line for (product, size). An empty size removes
// every line for the product.
func (s *Store) RemoveFromCart(ctx context.Context, productID, size string) ([]model.CartLine, error) {
	lines := s.LoadCart(ctx)
	kept := lines[:0]
	for _, l := range lines {
		if l.ProductID == productID && (size == "" || l.Size == size) {
			continue
		}
		kept = append(kept, l)
	}

	if err := s.storeJSON(ctx, keyCart, kept); err != nil {
		return nil, err
	}
	s.bus.PublishDetail(bus.CartUpdated, bus.Detail{Type: "remove"})
	return kept, nil
}

// ClearCart empties the cart.
func (s *Store) ClearCart(ctx context.Context) error {
	if err := s.storeJSON(ctx, keyCart, []model.CartLine{}); err != nil {
		return err
	}
	s.bus.PublishDetail(bus.CartUpdated, bus.Detail{Type: "clear"})
	return nil
}

// LoadOrders returns all recorded orders.
func (s *Store) LoadOrders(ctx context.Context) []model.Order {
	var orders []model.Order
	s.loadJSON(ctx, keyOrders, &orders)
	return orders
}

// Checkout turns the current cart into an order: totals the lines at their
// effective prices, decrements stock for each purchased product, records the
// order, and clears the cart. The attempt is single-shot; validation
// failures leave storage untouched.
func (s *Store) Checkout(ctx context.Context, customer string) (*model.Order, error) {
	lines := s.LoadCart(ctx)
	if len(lines) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	products := s.LoadProducts(ctx)
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var total float64
	for _, l := range lines {
		p, ok := byID[l.ProductID]
		if !ok {
			return nil, fmt.Errorf("product %s not found", l.ProductID)
		}
		total += p.EffectivePrice() * float64(l.Quantity)
	}

	records := s.LoadInventory(ctx)
	for i := range records {
		for _, l := range lines {
			if records[i].ID != l.ProductID {
				continue
			}
			records[i].Stock -= l.Quantity
			if records[i].Stock < 0 {
				records[i].Stock = 0
			}
		}
	}
	if err := s.SaveInventory(ctx, records); err != nil {
		return nil, err
	}

	order := model.Order{
		ID:        newOrderID(),
		Lines:     lines,
		Total:     total,
		Currency:  s.LoadSettings(ctx).Currency,
		Customer:  customer,
		CreatedAt: time.Now().UTC(),
	}
	orders := append(s.LoadOrders(ctx), order)
	if err := s.storeJSON(ctx, keyOrders, orders); err != nil {
		return nil, err
	}

	if err := s.ClearCart(ctx); err != nil {
		return nil, err
	}
	return &order, nil
}

func newOrderID() string {
	buf := make([]byte, 8)
	rand.Read(buf)
	return "ORD-" + hex.EncodeToString(buf)
}
