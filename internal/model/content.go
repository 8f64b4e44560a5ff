package model

import "time"

// DefaultCurrency is used when store settings carry no currency.
const DefaultCurrency = "USD"

// SiteContent holds the homepage text fields and the featured product list
// managed from the admin panel.
type SiteContent struct {
	FeaturedProducts []string `json:"featuredProducts"`
	HeroTitle        string   `json:"heroTitle,omitempty"`
	HeroSubtitle     string   `json:"heroSubtitle,omitempty"`
	AboutText        string   `json:"aboutText,omitempty"`
	LastUpdated      string   `json:"lastUpdated,omitempty"`
}

// StoreSettings holds store-wide presentation settings.
type StoreSettings struct {
	Currency       string            `json:"currency"`
	PrimaryColor   string            `json:"primaryColor,omitempty"`
	SecondaryColor string            `json:"secondaryColor,omitempty"`
	SocialLinks    map[string]string `json:"socialLinks,omitempty"`
}

// CartLine is a single entry in the shopping cart. Lines are keyed by
// (product, size): adding the same pair again merges quantities.
type CartLine struct {
	ProductID string `json:"productId"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

// Order is the result of a simulated checkout.
type Order struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"lines"`
	Total     float64    `json:"total"`
	Currency  string     `json:"currency"`
	Customer  string     `json:"customer,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
