// Package cart implements the per-session cart store. A Store holds only
// lines with quantity of at least one; setting a quantity to zero removes
// the line.
package cart

import (
	"slices"
	"sync"

	"github.com/DhruvsOLaNkiI/Minimal-store/internal/domain"
)

// Store is one session's cart. All methods are safe for concurrent use and
// each runs to completion before the next starts.
type Store struct {
	mu    sync.Mutex
	lines []domain.CartLine
}

// New returns an empty cart.
func New() *Store {
	return &Store{}
}

// Add puts one unit of p in the cart, appending a new line if p is not there
// yet.
func (s *Store) Add(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		s.lines[i].Quantity++
		return
	}
	s.lines = append(s.lines, domain.CartLine{Product: p, Quantity: 1})
}

// Remove deletes the line for productID. Unknown IDs are ignored.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

// UpdateQuantity sets the line quantity to max(0, n). Zero removes the line.
// Unknown IDs are ignored.
func (s *Store) UpdateQuantity(productID string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	if n <= 0 {
		s.removeLocked(productID)
		return
	}
	s.lines[i].Quantity = n
}

// Total recomputes the sum of price times quantity over all lines.
func (s *Store) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.TotalOf(s.lines)
}

// Lines returns a copy of the lines in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lines)
}

// ItemCount returns the number of units across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ItemCountOf(s.lines)
}

// IsEmpty reports whether the cart holds no lines.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// Quantity returns the quantity held for productID, or 0.
func (s *Store) Quantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(productID); i >= 0 {
		return s.lines[i].Quantity
	}
	return 0
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// View returns lines and derived totals from a single consistent snapshot.
func (s *Store) View() domain.CartView {
	return domain.NewCartView(s.Lines())
}

// Drain returns the current lines and empties the cart in one step.
func (s *Store) Drain() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.lines
	s.lines = nil
	return lines
}

func (s *Store) indexOf(productID string) int {
	return slices.IndexFunc(s.lines, func(l domain.CartLine) bool {
		return l.Product.ID == productID
	})
}

func (s *Store) removeLocked(productID string) {
	if i := s.indexOf(productID); i >= 0 {
		s.lines = slices.Delete(s.lines, i, i+1)
	}
	if len(s.lines) == 0 {
		s.lines = nil
	}
}
