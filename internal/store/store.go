// Package store is the persistence adapter for the storefront. It keeps the
// two parallel lists (products and inventory) in sync: every write to one
// list mirrors the shared fields into the other, persists both, and
// publishes change notifications.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand/v2"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/bus"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/kv"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/model"
)

// Persisted state keys.
const (
	keyInventory     = "inventory"
	keyProducts      = "products"
	keySiteContent   = "siteContent"
	keyStoreSettings = "storeSettings"
	keyCart          = "cart"
	keyOrders        = "orders"
)

// Seed stock bounds for newly derived inventory records.
const (
	seedStockMin = 5
	seedStockMax = 50
)

// Store mediates all reads and writes of persisted storefront state.
type Store struct {
	kv   kv.Store
	bus  *bus.Bus
	seed []model.Product
}

// New creates a store over the given key-value backend. The seed catalog is
// used as fallback data when storage is empty or unparsable.
func New(backend kv.Store, b *bus.Bus, seed []model.Product) *Store {
	return &Store{kv: backend, bus: b, seed: seed}
}

// LoadProducts returns the product catalog. Missing or malformed persisted
// data is treated as absent: the seed catalog is persisted and returned
// instead, so subsequent loads are stable.
func (s *Store) LoadProducts(ctx context.Context) []model.Product {
	var products []model.Product
	if s.loadJSON(ctx, keyProducts, &products) {
		return products
	}

	products = make([]model.Product, len(s.seed))
	copy(products, s.seed)
	for i := range products {
		products[i].Normalize()
	}
	if err := s.storeJSON(ctx, keyProducts, products); err != nil {
		slog.Error("persisting seed catalog", "error", err)
	}
	return products
}

// LoadInventory returns the inventory list. Missing or malformed persisted
// data triggers the fallback seeding path: an initial inventory is derived
// from the product catalog (pseudo-random stock, default threshold, derived
// SKU) and persisted immediately so repeat loads return the same records.
func (s *Store) LoadInventory(ctx context.Context) []model.InventoryRecord {
	var records []model.InventoryRecord
	if s.loadJSON(ctx, keyInventory, &records) {
		return records
	}
	return s.seedInventory(ctx)
}

func (s *Store) seedInventory(ctx context.Context) []model.InventoryRecord {
	products := s.LoadProducts(ctx)

	records := make([]model.InventoryRecord, 0, len(products))
	for _, p := range products {
		rec := model.InventoryRecord{
			ID:                p.ID,
			Name:              p.Name,
			Brand:             p.Brand,
			Stock:             seedStockMin + rand.IntN(seedStockMax-seedStockMin+1),
			LowStockThreshold: model.DefaultLowStockThreshold,
			SKU:               model.DeriveSKU(p.ID),
			Sizes:             p.Sizes,
			Images:            p.Images,
		}
		rec.Status = model.CalculateStatus(rec.Stock, rec.LowStockThreshold)
		records = append(records, rec)
	}

	if err := s.SaveInventory(ctx, records); err != nil {
		slog.Error("persisting seeded inventory", "error", err)
	}
	return records
}

// SaveInventory normalizes and persists the inventory list, mirrors the
// shared fields into the products list, and publishes inventoryUpdated and
// productsUpdated.
func (s *Store) SaveInventory(ctx context.Context, records []model.InventoryRecord) error {
	for i := range records {
		records[i].Normalize()
	}
	if err := s.storeJSON(ctx, keyInventory, records); err != nil {
		return err
	}

	products := s.LoadProducts(ctx)
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	for _, rec := range records {
		if i, ok := byID[rec.ID]; ok {
			products[i].Name = rec.Name
			products[i].Brand = rec.Brand
			products[i].Stock = rec.Stock
			products[i].LowStockThreshold = rec.LowStockThreshold
			products[i].Status = rec.Status
			products[i].Sizes = rec.Sizes
			products[i].Images = rec.Images
			continue
		}
		p := model.Product{
			ID:                rec.ID,
			Name:              rec.Name,
			Brand:             rec.Brand,
			Stock:             rec.Stock,
			LowStockThreshold: rec.LowStockThreshold,
			Sizes:             rec.Sizes,
			Images:            rec.Images,
			Active:            true,
		}
		p.Normalize()
		products = append(products, p)
	}
	if err := s.storeJSON(ctx, keyProducts, products); err != nil {
		return err
	}

	s.bus.PublishDetail(bus.InventoryUpdated, bus.Detail{Type: "save"})
	s.bus.PublishDetail(bus.ProductsUpdated, bus.Detail{Type: "mirror"})
	return nil
}

// SaveProducts normalizes and persists the product catalog, mirrors the
// shared fields back into the inventory list, and publishes productsUpdated
// and inventoryUpdated.
func (s *Store) SaveProducts(ctx context.Context, products []model.Product) error {
	for i := range products {
		products[i].Normalize()
	}
	if err := s.storeJSON(ctx, keyProducts, products); err != nil {
		return err
	}

	records := s.LoadInventory(ctx)
	byID := make(map[string]int, len(records))
	for i, rec := range records {
		byID[rec.ID] = i
	}
	for _, p := range products {
		if i, ok := byID[p.ID]; ok {
			records[i].Name = p.Name
			records[i].Brand = p.Brand
			records[i].Stock = p.Stock
			records[i].LowStockThreshold = p.LowStockThreshold
			records[i].Status = p.Status
			records[i].Sizes = p.Sizes
			records[i].Images = p.Images
			continue
		}
		rec := model.InventoryRecord{
			ID:                p.ID,
			Name:              p.Name,
			Brand:             p.Brand,
			Stock:             p.Stock,
			LowStockThreshold: p.LowStockThreshold,
			Sizes:             p.Sizes,
			Images:            p.Images,
		}
		rec.Normalize()
		records = append(records, rec)
	}
	if err := s.storeJSON(ctx, keyInventory, records); err != nil {
		return err
	}

	s.bus.PublishDetail(bus.ProductsUpdated, bus.Detail{Type: "save"})
	s.bus.PublishDetail(bus.InventoryUpdated, bus.Detail{Type: "mirror"})
	return nil
}

// GetProduct returns the product with the given ID, or nil if absent.
func (s *Store) GetProduct(ctx context.Context, id string) *model.Product {
	for _, p := range s.LoadProducts(ctx) {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// UpsertProduct creates or replaces a single product and syncs both lists.
func (s *Store) UpsertProduct(ctx context.Context, product model.Product) error {
	products := s.LoadProducts(ctx)
	replaced := false
	for i, p := range products {
		if p.ID == product.ID {
			products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, product)
	}
	return s.SaveProducts(ctx, products)
}

// DeleteProduct removes a product from both the products list and the
// inventory list. Returns false if the ID was not present in either.
func (s *Store) DeleteProduct(ctx context.Context, id string) (bool, error) {
	products := s.LoadProducts(ctx)
	records := s.LoadInventory(ctx)

	found := false
	kept := products[:0]
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	keptRecords := records[:0]
	for _, rec := range records {
		if rec.ID == id {
			found = true
			continue
		}
		keptRecords = append(keptRecords, rec)
	}
	if !found {
		return false, nil
	}

	if err := s.storeJSON(ctx, keyProducts, kept); err != nil {
		return false, err
	}
	if err := s.storeJSON(ctx, keyInventory, keptRecords); err != nil {
		return false, err
	}

	s.bus.PublishDetail(bus.ProductsUpdated, bus.Detail{Type: "delete"})
	s.bus.PublishDetail(bus.InventoryUpdated, bus.Detail{Type: "delete"})
	return true, nil
}

// UpdateStock sets a record's stock and/or threshold (nil leaves a field
// unchanged), re-derives the status, and saves through the mirror path.
// Returns the updated record, or nil if the ID is unknown.
func (s *Store) UpdateStock(ctx context.Context, id string, stock, threshold *int) (*model.InventoryRecord, error) {
	records := s.LoadInventory(ctx)
	for i := range records {
		if records[i].ID != id {
			continue
		}
		if stock != nil {
			records[i].Stock = *stock
		}
		if threshold != nil {
			records[i].LowStockThreshold = *threshold
		}
		records[i].Status = model.CalculateStatus(records[i].Stock, records[i].LowStockThreshold)
		if err := s.SaveInventory(ctx, records); err != nil {
			return nil, err
		}
		return &records[i], nil
	}
	return nil, nil
}

// loadJSON reads and unmarshals a key. Malformed persisted data is treated
// as absent data (fail open, not fatal).
func (s *Store) loadJSON(ctx context.Context, key string, target any) bool {
	data, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		slog.Error("reading persisted state", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		slog.Warn("discarding malformed persisted state", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Store) storeJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, data)
}
