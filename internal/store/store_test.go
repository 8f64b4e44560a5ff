package store

import (
	"bytes"
	"context"
	"testing"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/bus"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/kv"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/model"
)

func newTestStore(t *testing.T) (*Store, *kv.Memory, *bus.Bus) {
	t.Helper()
	backend := kv.NewMemory()
	b := bus.New()
	return New(backend, b, SeedCatalog()), backend, b
}

func TestLoadInventorySeedsOnEmptyStorage(t *testing.T) {
	st, _, _ := newTestStore(t)
	ctx := context.Background()

	records := st.LoadInventory(ctx)
	if len(records) != len(SeedCatalog()) {
		t.Fatalf("expected %d seeded records, got %d", len(SeedCatalog()), len(records))
	}

	for _, rec := range records {
		if rec.Stock <= 0 {
			t.Errorf("record %s: expected positive seeded stock, got %d", rec.ID, rec.Stock)
		}
		if rec.LowStockThreshold != model.DefaultLowStockThreshold {
			t.Errorf("record %s: expected default threshold, got %d", rec.ID, rec.LowStockThreshold)
		}
		if rec.SKU != model.DeriveSKU(rec.ID) {
			t.Errorf("record %s: expected derived SKU, got %q", rec.ID, rec.SKU)
		}
		if rec.Status != model.CalculateStatus(rec.Stock, rec.LowStockThreshold) {
			t.Errorf("record %s: status %q inconsistent with stock %d", rec.ID, rec.Status, rec.Stock)
		}
	}
}

func TestSeedingIsStableAcrossLoads(t *testing.T) {
	st, _, _ := newTestStore(t)
	ctx := context.Background()

	first := st.LoadInventory(ctx)
	second := st.LoadInventory(ctx)

	if len(first) != len(second) {
		t.Fatalf("expected same record count, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("record %d: id changed between loads: %q vs %q", i, first[i].ID, second[i].ID)
		}
		// Initial stock is randomized only once, then persisted.
		if first[i].Stock != second[i].Stock {
			t.Errorf("record %s: stock changed between loads: %d vs %d", first[i].ID, first[i].Stock, second[i].Stock)
		}
	}
}

func TestSaveLoadIsIdempotent(t *testing.T) {
	st, backend, _ := newTestStore(t)
	ctx := context.Background()

	records := st.LoadInventory(ctx)
	before, _, _ := backend.Get(ctx, keyInventory)

	if err := st.SaveInventory(ctx, records); err != nil {
		t.Fatalf("SaveInventory: %v", err)
	}

	after, _, _ := backend.Get(ctx, keyInventory)
	if !bytes.Equal(before, after) {
		t.Errorf("save(load()) changed persisted content:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestSaveInventoryMirrorsIntoProducts(t *testing.T) {
	st, _, _ := newTestStore(t)
	ctx := context.Background()

	records := st.LoadInventory(ctx)
	records[0].Stock = 3
	records[0].LowStockThreshold = 10

	if err := st.SaveInventory(ctx, records); err != nil {
		t.Fatalf("SaveInventory: %v", err)
	}

	products := st.LoadProducts(ctx)
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, rec := range records {
		p, ok := byID[rec.ID]
		if !ok {
			t.Fatalf("record %s has no mirrored product", rec.ID)
		}
		if p.Stock != rec.Stock || p.Status != rec.Status {
			t.Errorf("record %s: product stock/status (%d, %q) != inventory (%d, %q)",
				rec.ID, p.Stock, p.Status, rec.Stock, rec.Status)
		}
	}

	if byID[records[0].ID].Status != model.StatusLowStock {
		t.Errorf("expected mirrored low-stock status, got %q", byID[records[0].ID].Status)
	}
}

func TestSaveInventoryPublishesBothTopics(t *testing.T) {
	st, _, b := newTestStore(t)
	ctx := context.Background()

	records := st.LoadInventory(ctx)

	var topics []bus.Topic
	b.Subscribe(bus.InventoryUpdated, func(topic bus.Topic, _ bus.Detail) { topics = append(topics, topic) })
	b.Subscribe(bus.ProductsUpdated, func(topic bus.Topic, _ bus.Detail) { topics = append(topics, topic) })

	if err := st.SaveInventory(ctx, records); err != nil {
		t.Fatalf("SaveInventory: %v", err)
	}

	if len(topics) != 2 {
		t.Fatalf("expected 2 notifications, got %d: %v", len(topics), topics)
	}
}

func TestMalformedPersistedDataTriggersReseed(t *testing.T) {
	st, backend, _ := newTestStore(t)
	ctx := context.Background()

	backend.Set(ctx, keyInventory, []byte(`{not json`))

	// Fail open: malformed data is treated as absent and reseeded.
	records := st.LoadInventory(ctx)
	if len(records) != len(SeedCatalog()) {
		t.Fatalf("expected reseeded inventory, got %d records", len(records))
	}

	// The reseed was persisted, replacing the malformed value.
	data, _, _ := backend.Get(ctx, keyInventory)
	if bytes.HasPrefix(data, []byte(`{not`)) {
		t.Error("expected malformed value to be replaced")
	}
}

func TestSaveProductsMirrorsIntoInventory(t *testing.T) {
	st, _, _ := newTestStore(t)
	ctx := context.Background()

	products := st.LoadProducts(ctx)
	st.LoadInventory(ctx)

	products[0].Stock = 0
	if err := st.SaveProducts(ctx, products); err != nil {
		t.Fatalf("SaveProducts: %v", err)
	}

	for _, rec := range st.LoadInventory(ctx) {
		if rec.ID != products[0].ID {
			continue
		}
		if rec.Stock != 0 || rec.Status != model.StatusOutOfStock {
			t.Errorf("expected mirrored (0, out-of-stock), got (%d, %q)", rec.Stock, rec.Status)
		}
		return
	}
	t.Fatal("product missing from inventory")
}

func TestUpsertProductCreatesInventoryRecord(t *testing.T) {
	st, _, _ := newTestStore(t)
	ctx := context.Background()

	st.LoadInventory(ctx)

	product := model.Product{ID: "99", Name: "Gel-Kayano 30", Brand: "Asics", Price: 160, Stock: 12, Active: true}
	if err := st.UpsertProduct(ctx, product); err != nil {
		t.Fatalf("UpsertProduct: %v", err)
	}

	for _, rec := range st.LoadInventory(ctx) {
		if rec.ID == "99" {
			if rec.SKU != "SKU-099" {
				t.Errorf("expected derived SKU, got %q", rec.SKU)
			}
			if rec.Stock != 12 {
				t.Errorf("expected stock 12, got %d", rec.Stock)
			}
			return
		}
	}
	t.Fatal("expected inventory record for new product")
}

func TestDeleteProductRemovesFromBothLists(t *testing.T) {
	st, _, _ := newTestStore(t)
	ctx := context.Background()

	st.LoadInventory(ctx)
	id := SeedCatalog()[0].ID

	found, err := st.DeleteProduct(ctx, id)
	if err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if !found {
		t.Fatal("expected product to be found")
	}

	for _, p := range st.LoadProducts(ctx) {
		if p.ID == id {
			t.Error("product still present in catalog")
		}
	}
	for _, rec := range st.LoadInventory(ctx) {
		if rec.ID == id {
			t.Error("product still present in inventory")
		}
	}

	found, err = st.DeleteProduct(ctx, id)
	if err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if found {
		t.Error("expected second delete to report not found")
	}
}

func TestUpdateStockReDerivesStatus(t *testing.T) {
	st, _, _ := newTestStore(t)
	ctx := context.Background()

	st.LoadInventory(ctx)
	id := SeedCatalog()[0].ID

	stock := 0
	rec, err := st.UpdateStock(ctx, id, &stock, nil)
	if err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}
	if rec.Status != model.StatusOutOfStock {
		t.Errorf("expected out-of-stock, got %q", rec.Status)
	}

	stock = 4
	threshold := 5
	rec, err = st.UpdateStock(ctx, id, &stock, &threshold)
	if err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}
	if rec.Status != model.StatusLowStock {
		t.Errorf("expected low-stock, got %q", rec.Status)
	}

	rec, err = st.UpdateStock(ctx, "missing", &stock, nil)
	if err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}
	if rec != nil {
		t.Error("expected nil for unknown product")
	}
}
