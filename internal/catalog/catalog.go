// Package catalog holds the fixed storefront product set and the pure
// search and sort views derived from it.
package catalog

import (
	"slices"

	"github.com/DhruvsOLaNkiI/Minimal-store/internal/domain"
	apperrors "github.com/DhruvsOLaNkiI/Minimal-store/pkg/errors"
	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/slug"
)

// Catalog is an immutable product list. It is safe for concurrent use since
// nothing mutates it after construction.
type Catalog struct {
	products   []domain.Product
	byID       map[string]int
	bySlug     map[string]int
	trending   []string
	promotions []domain.Promotion
}

// New returns the storefront catalog built from the seed data.
func New() *Catalog {
	return NewFrom(seedProducts, seedTrending, seedPromotions)
}

// NewFrom builds a catalog from the given products. Products without a slug
// get one derived from their name. Trending IDs that do not name a product
// are ignored. When two products share an ID or slug the first wins.
func NewFrom(products []domain.Product, trending []string, promotions []domain.Promotion) *Catalog {
	c := &Catalog{
		products:   slices.Clone(products),
		byID:       make(map[string]int, len(products)),
		bySlug:     make(map[string]int, len(products)),
		promotions: slices.Clone(promotions),
	}
	for i := range c.products {
		p := &c.products[i]
		if p.Slug == "" {
			p.Slug = slug.Generate(p.Name)
		}
		if _, dup := c.byID[p.ID]; !dup {
			c.byID[p.ID] = i
		}
		if _, dup := c.bySlug[p.Slug]; !dup && p.Slug != "" {
			c.bySlug[p.Slug] = i
		}
	}
	for _, id := range trending {
		if _, ok := c.byID[id]; ok {
			c.trending = append(c.trending, id)
		}
	}
	return c
}

// ListAll returns every product in seed order. The slice is a fresh copy.
func (c *Catalog) ListAll() []domain.Product {
	return slices.Clone(c.products)
}

// FindByID returns the product with the given id or a NOT_FOUND AppError.
func (c *Catalog) FindByID(id string) (domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, apperrors.NotFound("product", id)
	}
	return c.products[i], nil
}

// FindBySlug returns the product whose URL slug matches or a NOT_FOUND
// AppError.
func (c *Catalog) FindBySlug(s string) (domain.Product, error) {
	i, ok := c.bySlug[s]
	if !ok {
		return domain.Product{}, apperrors.NotFound("product", s)
	}
	return c.products[i], nil
}

// Trending returns the featured products shown on the home page.
func (c *Catalog) Trending() []domain.Product {
	out := make([]domain.Product, 0, len(c.trending))
	for _, id := range c.trending {
		out = append(out, c.products[c.byID[id]])
	}
	return out
}

// Promotions returns the static promotional offers.
func (c *Catalog) Promotions() []domain.Promotion {
	return slices.Clone(c.promotions)
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
