package model

// Display locations controlling which storefront section shows a product.
const (
	DisplayHomepage  = "homepage"
	DisplayBanner    = "banner"
	DisplayHighlight = "highlight"
	DisplayCatalog   = "catalog"
)

// Product is the catalog-facing view of an item. It overlaps with
// InventoryRecord (shared ID, stock, status) and adds pricing and display
// fields. The two lists are kept in sync by the store adapter.
type Product struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Brand             string   `json:"brand"`
	Price             float64  `json:"price"`
	Currency          string   `json:"currency,omitempty"`
	Colors            []string `json:"colors,omitempty"`
	Description       string   `json:"description,omitempty"`
	Sizes             SizeList `json:"sizes,omitempty"`
	Images            []string `json:"images,omitempty"`
	Featured          bool     `json:"featured"`
	OnSale            bool     `json:"onSale"`
	Discount          int      `json:"discount,omitempty"`
	DisplayLocation   string   `json:"displayLocation,omitempty"`
	Active            bool     `json:"active"`
	Stock             int      `json:"stock"`
	LowStockThreshold int      `json:"lowStockThreshold,omitempty"`
	Status            string   `json:"status"`
}

// Normalize fills in display defaults and re-derives the stock status.
func (p *Product) Normalize() {
	if p.DisplayLocation == "" {
		p.DisplayLocation = DisplayCatalog
	}
	if p.LowStockThreshold <= 0 {
		p.LowStockThreshold = DefaultLowStockThreshold
	}
	p.Status = CalculateStatus(p.Stock, p.LowStockThreshold)
}

// Thumbnail returns the primary image URL, or an empty string if the product
// has no images.
func (p Product) Thumbnail() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// EffectivePrice returns the price after applying the sale discount.
func (p Product) EffectivePrice() float64 {
	if p.OnSale && p.Discount > 0 {
		return p.Price * (1 - float64(p.Discount)/100)
	}
	return p.Price
}
