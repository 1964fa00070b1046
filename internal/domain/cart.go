package domain

// CartLine pairs a product snapshot with a quantity. A cart holds at most one
// line per product ID and never a line with quantity below 1.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns Price * Quantity.
func (l CartLine) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// CartView is the read model of a cart handed to the presentation layer.
type CartView struct {
	Lines           []CartLine `json:"lines"`
	Total           int64      `json:"total"`
	ItemCount       int        `json:"item_count"`
	CheckoutAllowed bool       `json:"checkout_allowed"`
}

// NewCartView derives totals from lines. Nothing is cached.
func NewCartView(lines []CartLine) CartView {
	if lines == nil {
		lines = []CartLine{}
	}
	return CartView{
		Lines:           lines,
		Total:           TotalOf(lines),
		ItemCount:       ItemCountOf(lines),
		CheckoutAllowed: len(lines) > 0,
	}
}

// TotalOf sums the line subtotals.
func TotalOf(lines []CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCountOf sums the line quantities.
func ItemCountOf(lines []CartLine) int {
	var n int
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
