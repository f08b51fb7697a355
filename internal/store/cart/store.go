package cart

import (
	"encoding/json"
	"sync"

	"storefront-sync/internal/domain"
	"storefront-sync/internal/variant"
)

// Store is the in-memory authoritative view of the shopper's cart. All
// mutations are optimistic: they apply immediately and a change hook lets
// the sync scheduler pick them up afterwards.
type Store struct {
	mu         sync.Mutex
	lines      []domain.CartLine
	totalQty   int
	totalCents int64
	onChange   func()
}

func New() *Store {
	return &Store{}
}

// SetOnChange registers the hook fired after every mutation. The hook runs
// outside the store lock, so it may call back into the store.
func (s *Store) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Add merges qty into an existing line with the same variant key or
// appends a new line. A qty below 1 counts as 1.
func (s *Store) Add(line domain.CartLine, qty int) {
	if qty < 1 {
		qty = 1
	}
	if line.VariantKey == "" {
		line.VariantKey = variant.KeyFromDimensions(line.ProductID, line.Dimensions)
	}
	line.Quantity = qty

	s.mu.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].VariantKey == line.VariantKey {
			s.lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, line)
	}
	s.recompute()
	fn := s.onChange
	s.mu.Unlock()
	notify(fn)
}

// UpdateQuantity sets the quantity of the line with the given variant key.
// A qty below 1 deletes the line; zero-quantity lines are never stored.
func (s *Store) UpdateQuantity(key string, qty int) {
	s.mu.Lock()
	if qty < 1 {
		s.removeLocked(key)
	} else {
		for i := range s.lines {
			if s.lines[i].VariantKey == key {
				s.lines[i].Quantity = qty
				break
			}
		}
	}
	s.recompute()
	fn := s.onChange
	s.mu.Unlock()
	notify(fn)
}

// Remove deletes the line with the given variant key, if present.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	s.removeLocked(key)
	s.recompute()
	fn := s.onChange
	s.mu.Unlock()
	notify(fn)
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.recompute()
	fn := s.onChange
	s.mu.Unlock()
	notify(fn)
}

// ReplaceAll swaps in canonical state, typically the server's normalized
// response. This is the only operation allowed to reorder, shrink, or grow
// the list arbitrarily. Input passes through the dedup engine first.
func (s *Store) ReplaceAll(lines []domain.CartLine) {
	merged := variant.MergeLines(lines)
	s.mu.Lock()
	s.lines = merged
	s.recompute()
	fn := s.onChange
	s.mu.Unlock()
	notify(fn)
}

// Items returns a copy of the current line list.
func (s *Store) Items() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalQuantity is the sum of all line quantities.
func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalQty
}

// TotalPriceCents is the sum of all extended line prices.
func (s *Store) TotalPriceCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalCents
}

// Snapshot serializes the current line list. The scheduler compares
// snapshots to detect no-op mutations before arming the debounce timer.
func (s *Store) Snapshot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := json.Marshal(s.lines)
	if err != nil {
		return ""
	}
	return string(b)
}

func (s *Store) removeLocked(key string) {
	for i := range s.lines {
		if s.lines[i].VariantKey == key {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// recompute derives the aggregates from the line list. Aggregates are
// never cached independently of the list.
func (s *Store) recompute() {
	qty := 0
	var cents int64
	for _, l := range s.lines {
		qty += l.Quantity
		cents += l.TotalCents()
	}
	s.totalQty = qty
	s.totalCents = cents
}

func notify(fn func()) {
	if fn != nil {
		fn()
	}
}
