package domain

import "time"

// WishlistEntryKind tags the two wishlist entry shapes.
type WishlistEntryKind string

const (
	// EntryReference is a bare pointer to a variant-less product.
	EntryReference WishlistEntryKind = "reference"
	// EntrySnapshot freezes variant display data at save time, because the
	// live catalog entry may later change or vanish.
	EntrySnapshot WishlistEntryKind = "snapshot"
)

// WishlistEntry is either a Reference {ProductID} or a Snapshot carrying
// the frozen variant fields. Kind decides which fields are meaningful.
type WishlistEntry struct {
	Kind       WishlistEntryKind `json:"type"`
	ProductID  string            `json:"productId"`
	VariantID  string            `json:"variantId,omitempty"`
	Dimensions map[string]string `json:"dimensions,omitempty"`
	Name       string            `json:"name,omitempty"`
	PriceCents int64             `json:"priceCents,omitempty"`
	Image      string            `json:"image,omitempty"`
	SavedAt    time.Time         `json:"savedAt,omitempty"`
}
