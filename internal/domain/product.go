package domain

// Product is a catalog entry. Products are defined once at start-up and never
// mutated.
type Product struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Price       int64  `json:"price"` // currency-agnostic units
	Image       string `json:"image"`
	Description string `json:"description"`
	Details     string `json:"details,omitempty"`
}

// Promotion is a static promotional offer shown on the storefront home page.
type Promotion struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// SortKey selects an ordering for product listings.
type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
)
