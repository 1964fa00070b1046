package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// CartLine / totals
// ============================================================================

func TestSubtotal(t *testing.T) {
	l := CartLine{Product: Product{ID: "1", Price: 299}, Quantity: 3}
	assert.Equal(t, int64(897), l.Subtotal())
}

func TestTotalOf_MultipleLines(t *testing.T) {
	lines := []CartLine{
		{Product: Product{Price: 1000}, Quantity: 2},
		{Product: Product{Price: 500}, Quantity: 3},
		{Product: Product{Price: 2500}, Quantity: 1},
	}
	// 2000 + 1500 + 2500 = 6000
	assert.Equal(t, int64(6000), TotalOf(lines))
	assert.Equal(t, 6, ItemCountOf(lines))
}

func TestNewCartView_Empty(t *testing.T) {
	v := NewCartView(nil)
	assert.NotNil(t, v.Lines)
	assert.Empty(t, v.Lines)
	assert.Equal(t, int64(0), v.Total)
	assert.Equal(t, 0, v.ItemCount)
	assert.False(t, v.CheckoutAllowed)
}

func TestNewCartView_NonEmpty(t *testing.T) {
	v := NewCartView([]CartLine{{Product: Product{ID: "2", Price: 129}, Quantity: 2}})
	assert.Equal(t, int64(258), v.Total)
	assert.Equal(t, 2, v.ItemCount)
	assert.True(t, v.CheckoutAllowed)
}

// ============================================================================
// CheckoutForm.Normalize
// ============================================================================

func TestNormalize_DefaultsPaymentMethod(t *testing.T) {
	f := CheckoutForm{Name: "  Asha  ", PaymentMethod: ""}
	f.Normalize()
	assert.Equal(t, "Asha", f.Name)
	assert.Equal(t, PaymentCOD, f.PaymentMethod)
}

func TestNormalize_LowercasesPaymentMethod(t *testing.T) {
	f := CheckoutForm{PaymentMethod: " UPI "}
	f.Normalize()
	assert.Equal(t, PaymentUPI, f.PaymentMethod)
}
