// Package sizes maintains the optional per-size stock breakdown for
// products and folds edits back into each product's total stock.
package sizes

import (
	"context"
	"fmt"
	"sync"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/store"
)

// Aggregator tracks per-size stock per product. The breakdown is held in
// memory only; the folded total is written through to the inventory store.
// Multiple products may be expanded at once.
type Aggregator struct {
	mu    sync.Mutex
	store *store.Store
	stock map[string]map[string]int
}

// New creates an aggregator writing through to the given store.
func New(st *store.Store) *Aggregator {
	return &Aggregator{store: st, stock: make(map[string]map[string]int)}
}

// Expand returns the per-size stock map for a product. On first expansion
// the product's total stock is split evenly across its known sizes using
// floor division; the remainder is dropped. That is an accepted
// approximation carried over from the storefront, not a rounding bug.
// Re-expanding returns the existing breakdown untouched.
func (a *Aggregator) Expand(ctx context.Context, productID string) (map[string]int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.expandLocked(ctx, productID)
}

func (a *Aggregator) expandLocked(ctx context.Context, productID string) (map[string]int, error) {
	if m, ok := a.stock[productID]; ok {
		return cloneMap(m), nil
	}

	var total int
	var labels []string
	found := false
	for _, r := range a.store.LoadInventory(ctx) {
		if r.ID == productID {
			total = r.Stock
			labels = r.Sizes
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("product %s not found", productID)
	}

	m := make(map[string]int, len(labels))
	if len(labels) > 0 {
		per := total / len(labels)
		for _, size := range labels {
			m[size] = per
		}
	}
	a.stock[productID] = m
	return cloneMap(m), nil
}

// SetSizeStock sets the stock for one size of a product, recomputes the
// product's total as the sum across all tracked sizes, and writes the new
// total through to the inventory store (which re-derives the status).
// Negative input clamps to zero. Returns the new total.
func (a *Aggregator) SetSizeStock(ctx context.Context, productID, size string, value int) (int, error) {
	if value < 0 {
		value = 0
	}

	a.mu.Lock()
	m, ok := a.stock[productID]
	if !ok {
		var err error
		if m, err = a.expandLocked(ctx, productID); err != nil {
			a.mu.Unlock()
			return 0, err
		}
		a.stock[productID] = m
	}
	m[size] = value
	total := 0
	for _, v := range m {
		total += v
	}
	a.mu.Unlock()

	rec, err := a.store.UpdateStock(ctx, productID, &total, nil)
	if err != nil {
		return 0, err
	}
	if rec == nil {
		return 0, fmt.Errorf("product %s not found", productID)
	}
	return total, nil
}

// Collapse drops the tracked breakdown for a product. The next Expand
// recomputes an even split from the persisted total.
func (a *Aggregator) Collapse(productID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.stock, productID)
}

func cloneMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
