package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DhruvsOLaNkiI/Minimal-store/internal/catalog"
	"github.com/DhruvsOLaNkiI/Minimal-store/internal/domain"
	apperrors "github.com/DhruvsOLaNkiI/Minimal-store/pkg/errors"
)

// CatalogService serves product listings and lookups.
type CatalogService struct {
	catalog ProductCatalog
	logger  *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(c ProductCatalog, logger *slog.Logger) *CatalogService {
	return &CatalogService{catalog: c, logger: logger}
}

// ListProducts filters the catalog by query and orders the result by sortKey.
func (s *CatalogService) ListProducts(ctx context.Context, query, sortKey string) []domain.Product {
	key := catalog.ParseSortKey(sortKey)
	products := catalog.Sort(catalog.Search(query, s.catalog.ListAll()), key)

	s.logger.DebugContext(ctx, "products listed",
		slog.String("query", query),
		slog.String("sort", string(key)),
		slog.Int("count", len(products)),
	)
	return products
}

// GetProduct returns the product with the given ID, falling back to a slug
// match, or a NOT_FOUND error.
func (s *CatalogService) GetProduct(ctx context.Context, idOrSlug string) (domain.Product, error) {
	p, err := s.catalog.FindByID(idOrSlug)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}

	if p, err := s.catalog.FindBySlug(idOrSlug); err == nil {
		return p, nil
	}
	s.logger.DebugContext(ctx, "product lookup missed", slog.String("product", idOrSlug))
	return domain.Product{}, err
}

// Trending returns the featured products in display order.
func (s *CatalogService) Trending(ctx context.Context) []domain.Product {
	return s.catalog.Trending()
}

// Promotions returns the static home page offers.
func (s *CatalogService) Promotions(ctx context.Context) []domain.Promotion {
	return s.catalog.Promotions()
}
