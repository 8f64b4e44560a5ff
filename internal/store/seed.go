package store

import "github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/model"

// SeedCatalog is the static fallback catalog used when no products have been
// persisted yet. IDs are stable so inventory seeding stays deterministic in
// content across loads.
func SeedCatalog() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Air Max 270",
			Brand:       "Nike",
			Price:       150,
			Colors:      []string{"black", "white"},
			Description: "Lifestyle runner with a full-length visible air unit.",
			Sizes:       model.SizeList{"38", "39", "40", "41", "42", "43"},
			Images:      []string{"/images/air-max-270.jpg"},
			Featured:    true,
			Active:      true,
		},
		{
			ID:          "2",
			Name:        "Ultraboost 22",
			Brand:       "Adidas",
			Price:       180,
			Colors:      []string{"white", "grey"},
			Description: "Responsive daily trainer with a knit upper.",
			Sizes:       model.SizeList{"39", "40", "41", "42", "43", "44"},
			Images:      []string{"/images/ultraboost-22.jpg"},
			Featured:    true,
			Active:      true,
		},
		{
			ID:              "3",
			Name:            "Suede Classic",
			Brand:           "Puma",
			Price:           75,
			Colors:          []string{"red", "blue"},
			Description:     "Archive court shoe with a suede upper.",
			Sizes:           model.SizeList{"38", "39", "40", "41", "42"},
			Images:          []string{"/images/suede-classic.jpg"},
			OnSale:          true,
			Discount:        20,
			DisplayLocation: model.DisplayHomepage,
			Active:          true,
		},
		{
			ID:          "4",
			Name:        "990v6",
			Brand:       "New Balance",
			Price:       200,
			Colors:      []string{"grey"},
			Description: "Made-in-USA premium runner.",
			Sizes:       model.SizeList{"40", "41", "42", "43", "44", "45"},
			Images:      []string{"/images/990v6.jpg"},
			Active:      true,
		},
		{
			ID:              "5",
			Name:            "Chuck 70 High",
			Brand:           "Converse",
			Price:           95,
			Colors:          []string{"black", "parchment"},
			Description:     "Heritage canvas high-top.",
			Sizes:           model.SizeList{"37", "38", "39", "40", "41", "42", "43"},
			Images:          []string{"/images/chuck-70.jpg"},
			DisplayLocation: model.DisplayBanner,
			Active:          true,
		},
		{
			ID:          "6",
			Name:        "Old Skool",
			Brand:       "Vans",
			Price:       70,
			Colors:      []string{"black", "white"},
			Description: "Skate classic with the side stripe.",
			Sizes:       model.SizeList{"38", "39", "40", "41", "42", "43", "44"},
			Images:      []string{"/images/old-skool.jpg"},
			OnSale:      true,
			Discount:    10,
			Active:      true,
		},
	}
}
