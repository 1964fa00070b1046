// Package service holds the storefront application services. They sit
// between the HTTP adapter and the in-memory catalog, cart and session
// components, adding logging, metrics, tracing and error mapping.
package service

import (
	"github.com/DhruvsOLaNkiI/Minimal-store/internal/domain"
	"github.com/DhruvsOLaNkiI/Minimal-store/internal/session"
)

// ProductCatalog is the read side of the product catalog.
type ProductCatalog interface {
	ListAll() []domain.Product
	FindByID(id string) (domain.Product, error)
	FindBySlug(slug string) (domain.Product, error)
	Trending() []domain.Product
	Promotions() []domain.Promotion
}

// SessionLookup resolves a session ID to its live session.
type SessionLookup interface {
	Get(id string) (*session.Session, error)
}
