// Package catalog is the pure filter/sort pipeline for the storefront
// product grid. Views are recomputed from the full list on every change;
// there is no indexing.
package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/model"
)

// Sort keys.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

// Filter describes the view constraints. Empty fields mean "no constraint".
type Filter struct {
	Brand string // exact match
	Size  string // membership test against a product's size list
	Price string // "min-max" half-open range; "min-" means no upper bound
	Sort  string
}

// Apply produces the filtered, sorted view list. The input list is never
// mutated.
func Apply(products []model.Product, f Filter) []model.Product {
	priceMin, priceMax, priceOK := ParsePriceRange(f.Price)

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		if f.Size != "" && !p.Sizes.Contains(f.Size) {
			continue
		}
		if priceOK && (p.Price < priceMin || p.Price >= priceMax) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, f.Sort)
	return out
}

// ParsePriceRange parses a combined "min-max" price bracket into the
// half-open range [min, max). A missing upper bound ("150-") means no upper
// bound. Returns ok=false for an empty or malformed key.
func ParsePriceRange(key string) (min, max float64, ok bool) {
	if key == "" {
		return 0, 0, false
	}

	parts := strings.SplitN(key, "-", 2)
	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}

	max = math.Inf(1)
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		max, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return 0, 0, false
		}
	}
	return min, max, true
}

// sortProducts sorts in place. All sorts are stable so ties preserve the
// original order; name sorts use locale-aware collation.
func sortProducts(products []model.Product, key string) {
	switch key {
	case SortFeatured:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNameAsc:
		c := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortNameDesc:
		c := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) > 0
		})
	}
}
