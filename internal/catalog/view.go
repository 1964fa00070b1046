package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/DhruvsOLaNkiI/Minimal-store/internal/domain"
)

// Search returns the products whose name or description contains query,
// ignoring case. Input order is preserved. An empty query returns products
// unchanged.
func Search(query string, products []domain.Product) []domain.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// ParseSortKey maps a query value to a SortKey. Unknown values map to
// SortDefault.
func ParseSortKey(s string) domain.SortKey {
	switch k := domain.SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case domain.SortPriceLow, domain.SortPriceHigh, domain.SortName:
		return k
	default:
		return domain.SortDefault
	}
}

// Sort returns a new slice ordered by key. The sort is stable, and any key
// other than price-low, price-high or name leaves the order as it was.
func Sort(products []domain.Product, key domain.SortKey) []domain.Product {
	out := slices.Clone(products)

	switch key {
	case domain.SortPriceLow:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case domain.SortPriceHigh:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case domain.SortName:
		// Collators keep scratch buffers, so each call gets its own.
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	}
	return out
}
