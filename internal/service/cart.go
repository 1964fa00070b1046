package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DhruvsOLaNkiI/Minimal-store/internal/cart"
	"github.com/DhruvsOLaNkiI/Minimal-store/internal/domain"
	apperrors "github.com/DhruvsOLaNkiI/Minimal-store/pkg/errors"
)

// CartService implements the business logic for cart operations. Every
// method works on the cart owned by the given session.
type CartService struct {
	catalog  ProductCatalog
	sessions SessionLookup
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(c ProductCatalog, sessions SessionLookup, logger *slog.Logger) *CartService {
	return &CartService{
		catalog:  c,
		sessions: sessions,
		logger:   logger,
	}
}

// GetCart returns the current cart view.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (domain.CartView, error) {
	store, err := s.cartFor(sessionID)
	if err != nil {
		return domain.CartView{}, err
	}
	return store.View(), nil
}

// AddItem adds one unit of the catalog product to the cart. Unknown products
// yield NOT_FOUND and leave the cart untouched.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string) (domain.CartView, error) {
	if productID == "" {
		return domain.CartView{}, apperrors.InvalidInput("product id is required")
	}

	store, err := s.cartFor(sessionID)
	if err != nil {
		return domain.CartView{}, err
	}

	product, err := s.catalog.FindByID(productID)
	if err != nil {
		return domain.CartView{}, fmt.Errorf("add item: %w", err)
	}

	store.Add(product)
	cartOperationsTotal.WithLabelValues(opAdd).Inc()

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
		slog.Int("quantity", store.Quantity(productID)),
	)
	return store.View(), nil
}

// RemoveItem deletes the product's line. Removing an absent line succeeds.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (domain.CartView, error) {
	store, err := s.cartFor(sessionID)
	if err != nil {
		return domain.CartView{}, err
	}

	store.Remove(productID)
	cartOperationsTotal.WithLabelValues(opRemove).Inc()

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
	)
	return store.View(), nil
}

// UpdateItemQuantity sets the line quantity, clamping negatives to zero. A
// zero quantity removes the line and an absent line is left alone.
func (s *CartService) UpdateItemQuantity(ctx context.Context, sessionID, productID string, quantity int) (domain.CartView, error) {
	store, err := s.cartFor(sessionID)
	if err != nil {
		return domain.CartView{}, err
	}

	store.UpdateQuantity(productID, quantity)
	cartOperationsTotal.WithLabelValues(opUpdate).Inc()

	s.logger.InfoContext(ctx, "cart item quantity updated",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
		slog.Int("requested", quantity),
		slog.Int("quantity", store.Quantity(productID)),
	)
	return store.View(), nil
}

// ClearCart empties the cart.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	store, err := s.cartFor(sessionID)
	if err != nil {
		return err
	}

	store.Clear()
	cartOperationsTotal.WithLabelValues(opClear).Inc()

	s.logger.InfoContext(ctx, "cart cleared", slog.String("session_id", sessionID))
	return nil
}

func (s *CartService) cartFor(sessionID string) (*cart.Store, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess.Cart, nil
}
