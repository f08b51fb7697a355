package remote

import (
	"encoding/json"
	"time"

	"storefront-sync/internal/domain"
	"storefront-sync/internal/variant"
)

type wireProduct struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	PriceCents int64  `json:"priceCents,omitempty"`
	Image      string `json:"image,omitempty"`
}

// productRef is the duck-typed product field on server payloads: either a
// populated product object or a bare id string. Decoding always yields
// exactly one well-defined shape before anything enters a store.
type productRef struct {
	ID        string
	Populated *wireProduct
}

func (p *productRef) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &p.ID)
	}
	var obj wireProduct
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	p.Populated = &obj
	p.ID = obj.ID
	return nil
}

func (p productRef) MarshalJSON() ([]byte, error) {
	if p.Populated != nil {
		return json.Marshal(p.Populated)
	}
	return json.Marshal(p.ID)
}

type cartItemWire struct {
	VariantKey string            `json:"variantKey,omitempty"`
	ProductID  string            `json:"productId,omitempty"`
	Product    *productRef       `json:"product,omitempty"`
	Name       string            `json:"name,omitempty"`
	PriceCents int64             `json:"priceCents,omitempty"`
	Quantity   int               `json:"quantity"`
	Dimensions map[string]string `json:"dimensions,omitempty"`
	Image      string            `json:"image,omitempty"`
}

type cartEnvelope struct {
	Items      []cartItemWire `json:"items"`
	GuestToken string         `json:"guestToken,omitempty"`
}

// toCartLine flattens a wire item into the local shape, defaulting
// missing name/price/image from the embedded product when present.
func (w cartItemWire) toCartLine() domain.CartLine {
	line := domain.CartLine{
		VariantKey:     w.VariantKey,
		ProductID:      w.ProductID,
		Name:           w.Name,
		UnitPriceCents: w.PriceCents,
		Quantity:       w.Quantity,
		Dimensions:     variant.Normalize(variant.Selection{Dimensions: w.Dimensions}),
		Image:          w.Image,
	}
	if w.Product != nil {
		if line.ProductID == "" {
			line.ProductID = w.Product.ID
		}
		if p := w.Product.Populated; p != nil {
			if line.Name == "" {
				line.Name = p.Name
			}
			if line.UnitPriceCents == 0 {
				line.UnitPriceCents = p.PriceCents
			}
			if line.Image == "" {
				line.Image = p.Image
			}
		}
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	if line.VariantKey == "" {
		line.VariantKey = variant.KeyFromDimensions(line.ProductID, line.Dimensions)
	}
	return line
}

func fromCartLine(l domain.CartLine) cartItemWire {
	return cartItemWire{
		VariantKey: l.VariantKey,
		ProductID:  l.ProductID,
		Name:       l.Name,
		PriceCents: l.UnitPriceCents,
		Quantity:   l.Quantity,
		Dimensions: l.Dimensions,
		Image:      l.Image,
	}
}

func normalizeCartItems(items []cartItemWire) []domain.CartLine {
	if len(items) == 0 {
		return nil
	}
	lines := make([]domain.CartLine, len(items))
	for i, it := range items {
		lines[i] = it.toCartLine()
	}
	return variant.MergeLines(lines)
}

type wishlistItemWire struct {
	Type       string            `json:"type,omitempty"`
	ProductID  string            `json:"productId,omitempty"`
	Product    *productRef       `json:"product,omitempty"`
	VariantID  string            `json:"variantId,omitempty"`
	Dimensions map[string]string `json:"dimensions,omitempty"`
	Name       string            `json:"name,omitempty"`
	PriceCents int64             `json:"priceCents,omitempty"`
	Image      string            `json:"image,omitempty"`
	SavedAt    time.Time         `json:"savedAt,omitempty"`
}

type wishlistEnvelope struct {
	Items      []wishlistItemWire `json:"items"`
	GuestToken string             `json:"guestToken,omitempty"`
}

// toEntry tags a wire entry as snapshot or reference so the local
// matching predicate keeps working after every round-trip. Untagged
// entries carrying variant data count as snapshots.
func (w wishlistItemWire) toEntry() domain.WishlistEntry {
	e := domain.WishlistEntry{
		ProductID:  w.ProductID,
		VariantID:  w.VariantID,
		Dimensions: variant.Normalize(variant.Selection{Dimensions: w.Dimensions}),
		Name:       w.Name,
		PriceCents: w.PriceCents,
		Image:      w.Image,
		SavedAt:    w.SavedAt,
	}
	if w.Product != nil {
		if e.ProductID == "" {
			e.ProductID = w.Product.ID
		}
		if p := w.Product.Populated; p != nil {
			if e.Name == "" {
				e.Name = p.Name
			}
			if e.PriceCents == 0 {
				e.PriceCents = p.PriceCents
			}
			if e.Image == "" {
				e.Image = p.Image
			}
		}
	}
	switch w.Type {
	case string(domain.EntrySnapshot):
		e.Kind = domain.EntrySnapshot
	case string(domain.EntryReference):
		e.Kind = domain.EntryReference
	default:
		if e.VariantID != "" || len(e.Dimensions) > 0 {
			e.Kind = domain.EntrySnapshot
		} else {
			e.Kind = domain.EntryReference
		}
	}
	return e
}

func normalizeWishlistItems(items []wishlistItemWire) []domain.WishlistEntry {
	if len(items) == 0 {
		return nil
	}
	entries := make([]domain.WishlistEntry, len(items))
	for i, it := range items {
		entries[i] = it.toEntry()
	}
	return entries
}

// wishlistSaveRequest is the POST /wishlist body: a bare productId for a
// reference save, plus a frozen snapshot for variant products.
type wishlistSaveRequest struct {
	ProductID string                `json:"productId"`
	Snapshot  *wishlistSnapshotWire `json:"snapshot,omitempty"`
}

type wishlistSnapshotWire struct {
	VariantID  string            `json:"variantId,omitempty"`
	Dimensions map[string]string `json:"dimensions,omitempty"`
	Name       string            `json:"name,omitempty"`
	PriceCents int64             `json:"priceCents,omitempty"`
	Image      string            `json:"image,omitempty"`
}
