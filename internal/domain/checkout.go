package domain

import (
	"strings"
	"time"
)

// Payment methods accepted at checkout.
const (
	PaymentCOD = "cod"
	PaymentUPI = "upi"
)

// Acknowledgement text returned once an order is placed.
const (
	OrderPlacedTitle   = "Order placed successfully!"
	OrderPlacedMessage = "You will receive a confirmation email shortly."
)

// CheckoutForm is the shipping and payment information submitted at checkout.
type CheckoutForm struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,phone"`
	Address       string `json:"address" validate:"required,max=500"`
	City          string `json:"city" validate:"required,max=100"`
	State         string `json:"state" validate:"required,max=100"`
	Pincode       string `json:"pincode" validate:"required,pincode"`
	PaymentMethod string `json:"payment_method" validate:"oneof=cod upi"`
}

// Normalize trims every field and defaults the payment method to cash on
// delivery.
func (f *CheckoutForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Address = strings.TrimSpace(f.Address)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Pincode = strings.TrimSpace(f.Pincode)
	f.PaymentMethod = strings.ToLower(strings.TrimSpace(f.PaymentMethod))
	if f.PaymentMethod == "" {
		f.PaymentMethod = PaymentCOD
	}
}

// OrderConfirmation acknowledges a placed order. It is returned to the caller
// and not stored anywhere.
type OrderConfirmation struct {
	ID            string     `json:"id"`
	Lines         []CartLine `json:"lines"`
	Total         int64      `json:"total"`
	ItemCount     int        `json:"item_count"`
	PaymentMethod string     `json:"payment_method"`
	PlacedAt      time.Time  `json:"placed_at"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
}
