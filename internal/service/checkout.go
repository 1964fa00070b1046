package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/DhruvsOLaNkiI/Minimal-store/internal/domain"
	apperrors "github.com/DhruvsOLaNkiI/Minimal-store/pkg/errors"
	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/tracing"
	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/validator"
)

// CheckoutService turns a session's cart into an order acknowledgement. No
// payment is taken and no order is stored.
type CheckoutService struct {
	sessions SessionLookup
	logger   *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(sessions SessionLookup, logger *slog.Logger) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
		logger:   logger,
		tracer:   tracing.Tracer("checkout"),
		now:      time.Now,
	}
}

// Summary returns the order summary for the cart, or EMPTY_CART when there is
// nothing to check out.
func (s *CheckoutService) Summary(ctx context.Context, sessionID string) (domain.CartView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return domain.CartView{}, fmt.Errorf("get session: %w", err)
	}

	view := sess.Cart.View()
	if !view.CheckoutAllowed {
		return domain.CartView{}, apperrors.EmptyCart()
	}
	return view, nil
}

// PlaceOrder validates the form, acknowledges the order and clears the cart.
// An empty cart is rejected before the form is looked at, and a form that
// fails validation leaves the cart as it was.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, form domain.CheckoutForm) (*domain.OrderConfirmation, error) {
	ctx, span := s.tracer.Start(ctx, "checkout.PlaceOrder")
	defer span.End()

	conf, err := s.placeOrder(ctx, sessionID, form)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("order.id", conf.ID),
		attribute.Int64("order.total", conf.Total),
		attribute.Int("order.item_count", conf.ItemCount),
		attribute.String("order.payment_method", conf.PaymentMethod),
	)
	return conf, nil
}

func (s *CheckoutService) placeOrder(ctx context.Context, sessionID string, form domain.CheckoutForm) (*domain.OrderConfirmation, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if sess.Cart.IsEmpty() {
		return nil, apperrors.EmptyCart()
	}

	form.Normalize()
	if err := validator.Validate(form); err != nil {
		return nil, err
	}

	lines := sess.Cart.Drain()
	if len(lines) == 0 {
		// Another request emptied the cart after the check above.
		return nil, apperrors.EmptyCart()
	}

	conf := &domain.OrderConfirmation{
		ID:            uuid.New().String(),
		Lines:         lines,
		Total:         domain.TotalOf(lines),
		ItemCount:     domain.ItemCountOf(lines),
		PaymentMethod: form.PaymentMethod,
		PlacedAt:      s.now().UTC(),
		Title:         domain.OrderPlacedTitle,
		Message:       domain.OrderPlacedMessage,
	}

	ordersPlacedTotal.WithLabelValues(conf.PaymentMethod).Inc()
	orderValue.Observe(float64(conf.Total))

	s.logger.InfoContext(ctx, "order placed",
		slog.String("session_id", sessionID),
		slog.String("order_id", conf.ID),
		slog.Int64("total", conf.Total),
		slog.Int("item_count", conf.ItemCount),
		slog.String("payment_method", conf.PaymentMethod),
	)
	return conf, nil
}
