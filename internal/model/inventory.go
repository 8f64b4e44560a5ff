package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Stock statuses derived from (stock, threshold).
const (
	StatusInStock    = "in-stock"
	StatusLowStock   = "low-stock"
	StatusOutOfStock = "out-of-stock"
)

// DefaultLowStockThreshold is applied when a record carries no threshold.
const DefaultLowStockThreshold = 10

// CalculateStatus derives the stock status from the current stock count and
// the low-stock threshold. A stock count equal to the threshold still counts
// as low-stock (the boundary is inclusive on the low side).
func CalculateStatus(stock, threshold int) string {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock <= threshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// SizeList is an ordered list of size labels. Persisted catalogs carry sizes
// as a mix of numbers and strings, so unmarshalling accepts both and
// normalizes everything to strings.
type SizeList []string

func (s *SizeList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(SizeList, 0, len(raw))
	for _, r := range raw {
		var label string
		if err := json.Unmarshal(r, &label); err == nil {
			out = append(out, label)
			continue
		}
		var num float64
		if err := json.Unmarshal(r, &num); err != nil {
			return fmt.Errorf("size must be a string or number, got %s", r)
		}
		out = append(out, strconv.FormatFloat(num, 'f', -1, 64))
	}
	*s = out
	return nil
}

// Contains reports whether the list includes the given size label.
func (s SizeList) Contains(label string) bool {
	for _, l := range s {
		if l == label {
			return true
		}
	}
	return false
}

// InventoryRecord is the stock-tracking view of a product. It shares its ID
// with the catalog Product entity.
type InventoryRecord struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Brand             string   `json:"brand"`
	Stock             int      `json:"stock"`
	LowStockThreshold int      `json:"lowStockThreshold"`
	Status            string   `json:"status"`
	SKU               string   `json:"sku"`
	Sizes             SizeList `json:"sizes,omitempty"`
	Images            []string `json:"images,omitempty"`
}

// Normalize fills in defaults and re-derives the status. Status is never
// authoritative: it must be recomputed after every stock or threshold change.
func (r *InventoryRecord) Normalize() {
	if r.LowStockThreshold <= 0 {
		r.LowStockThreshold = DefaultLowStockThreshold
	}
	if r.SKU == "" {
		r.SKU = DeriveSKU(r.ID)
	}
	r.Status = CalculateStatus(r.Stock, r.LowStockThreshold)
}

// DeriveSKU builds a deterministic SKU from a product ID by zero-padding the
// ID to at least three characters.
func DeriveSKU(id string) string {
	for len(id) < 3 {
		id = "0" + id
	}
	return "SKU-" + id
}
