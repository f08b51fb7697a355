package wishlist

import (
	"sync"
	"time"

	"storefront-sync/internal/domain"
	"storefront-sync/internal/variant"
)

// Store is the in-memory list of wishlist entries. Entries are either a
// bare Reference to a variant-less product or a Snapshot frozen at save
// time. Unlike the cart, wishlist writes go to the server directly per
// action, so the store carries no change hook.
type Store struct {
	mu      sync.Mutex
	entries []domain.WishlistEntry
}

func New() *Store {
	return &Store{}
}

// AddReference appends a bare reference for a variant-less product.
// Returns false when an entry for the product already blocks it.
func (s *Store) AddReference(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.matchLocked(productID, "", nil) {
		return false
	}
	s.entries = append(s.entries, domain.WishlistEntry{
		Kind:      domain.EntryReference,
		ProductID: productID,
		SavedAt:   time.Now().UTC(),
	})
	return true
}

// AddSnapshot appends a frozen variant snapshot unless an existing entry
// matches it. Dimension maps are normalized before comparison or storage.
func (s *Store) AddSnapshot(entry domain.WishlistEntry) bool {
	entry.Kind = domain.EntrySnapshot
	entry.Dimensions = variant.Normalize(variant.Selection{Dimensions: entry.Dimensions})
	if entry.SavedAt.IsZero() {
		entry.SavedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.matchLocked(entry.ProductID, entry.VariantID, entry.Dimensions) {
		return false
	}
	s.entries = append(s.entries, entry)
	return true
}

// Remove deletes entries for a product. With a variantID only matching
// snapshot entries go; without one every entry for the product goes,
// sibling variants and the bare reference included.
func (s *Store) Remove(productID, variantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ProductID != productID {
			kept = append(kept, e)
			continue
		}
		if variantID != "" && e.VariantID != variantID {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

// Clear empties the list.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
}

// ReplaceAll swaps in the server's canonical entry list.
func (s *Store) ReplaceAll(entries []domain.WishlistEntry) {
	normalized := make([]domain.WishlistEntry, len(entries))
	for i, e := range entries {
		e.Dimensions = variant.Normalize(variant.Selection{Dimensions: e.Dimensions})
		normalized[i] = e
	}
	s.mu.Lock()
	s.entries = normalized
	s.mu.Unlock()
}

// Contains answers "is the currently selected variant already saved?" for
// a product plus its merged dimension map.
func (s *Store) Contains(productID string, dims map[string]string) bool {
	dims = variant.Normalize(variant.Selection{Dimensions: dims})
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matchLocked(productID, "", dims)
}

// ContainsVariant is Contains for callers that know the variant id.
func (s *Store) ContainsVariant(productID, variantID string, dims map[string]string) bool {
	dims = variant.Normalize(variant.Selection{Dimensions: dims})
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matchLocked(productID, variantID, dims)
}

// Entries returns a copy of the current list.
func (s *Store) Entries() []domain.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.WishlistEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len is the number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// matchLocked applies the dedup rules: (a) both sides carry a variant id
// and they are equal, (b) dimension maps are equal key by key, which for
// two empty maps also covers (c) bare references to the same product.
func (s *Store) matchLocked(productID, variantID string, dims map[string]string) bool {
	for _, e := range s.entries {
		if e.ProductID != productID {
			continue
		}
		if variantID != "" && e.VariantID != "" && e.VariantID == variantID {
			return true
		}
		if variant.DimensionsEqual(e.Dimensions, dims) {
			return true
		}
	}
	return false
}
