package httpserver

import (
	"time"

	"storefront-sync/internal/domain"
	"storefront-sync/internal/variant"
)

type productView struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	PriceCents int64  `json:"priceCents,omitempty"`
	Image      string `json:"image,omitempty"`
}

type cartItemView struct {
	VariantKey string            `json:"variantKey"`
	ProductID  string            `json:"productId,omitempty"`
	Product    *productView      `json:"product,omitempty"`
	Name       string            `json:"name,omitempty"`
	PriceCents int64             `json:"priceCents,omitempty"`
	Quantity   int               `json:"quantity"`
	Dimensions map[string]string `json:"dimensions,omitempty"`
	Image      string            `json:"image,omitempty"`
}

type cartResponse struct {
	Items      []cartItemView `json:"items"`
	GuestToken string         `json:"guestToken,omitempty"`
}

// toCartItemView renders a stored line. Lines carrying display data
// embed a populated product object; rows without it surface the bare
// product id, so clients see both shapes the contract allows.
func toCartItemView(l domain.CartLine) cartItemView {
	if l.Name != "" {
		return cartItemView{
			VariantKey: l.VariantKey,
			Product: &productView{
				ID:         l.ProductID,
				Name:       l.Name,
				PriceCents: l.UnitPriceCents,
				Image:      l.Image,
			},
			Quantity:   l.Quantity,
			Dimensions: l.Dimensions,
		}
	}
	return cartItemView{
		VariantKey: l.VariantKey,
		ProductID:  l.ProductID,
		PriceCents: l.UnitPriceCents,
		Quantity:   l.Quantity,
		Dimensions: l.Dimensions,
		Image:      l.Image,
	}
}

func toCartResponse(lines []domain.CartLine, guestToken string) cartResponse {
	items := make([]cartItemView, 0, len(lines))
	for _, l := range lines {
		items = append(items, toCartItemView(l))
	}
	return cartResponse{Items: items, GuestToken: guestToken}
}

type cartItemPayload struct {
	VariantKey string            `json:"variantKey"`
	ProductID  string            `json:"productId"`
	Name       string            `json:"name"`
	PriceCents int64             `json:"priceCents"`
	Quantity   int               `json:"quantity"`
	Dimensions map[string]string `json:"dimensions"`
	Image      string            `json:"image"`
}

func (p cartItemPayload) toLine() domain.CartLine {
	line := domain.CartLine{
		VariantKey:     p.VariantKey,
		ProductID:      p.ProductID,
		Name:           p.Name,
		UnitPriceCents: p.PriceCents,
		Quantity:       p.Quantity,
		Dimensions:     variant.Normalize(variant.Selection{Dimensions: p.Dimensions}),
		Image:          p.Image,
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	if line.VariantKey == "" {
		line.VariantKey = variant.KeyFromDimensions(line.ProductID, line.Dimensions)
	}
	return line
}

type syncCartRequest struct {
	Items []cartItemPayload `json:"items"`
}

type wishlistItemView struct {
	Type       string            `json:"type"`
	ProductID  string            `json:"productId"`
	VariantID  string            `json:"variantId,omitempty"`
	Dimensions map[string]string `json:"dimensions,omitempty"`
	Name       string            `json:"name,omitempty"`
	PriceCents int64             `json:"priceCents,omitempty"`
	Image      string            `json:"image,omitempty"`
	SavedAt    time.Time         `json:"savedAt,omitempty"`
}

type wishlistResponse struct {
	Items      []wishlistItemView `json:"items"`
	GuestToken string             `json:"guestToken,omitempty"`
}

func toWishlistResponse(entries []domain.WishlistEntry, guestToken string) wishlistResponse {
	items := make([]wishlistItemView, 0, len(entries))
	for _, e := range entries {
		items = append(items, wishlistItemView{
			Type:       string(e.Kind),
			ProductID:  e.ProductID,
			VariantID:  e.VariantID,
			Dimensions: e.Dimensions,
			Name:       e.Name,
			PriceCents: e.PriceCents,
			Image:      e.Image,
			SavedAt:    e.SavedAt,
		})
	}
	return wishlistResponse{Items: items, GuestToken: guestToken}
}

type snapshotPayload struct {
	VariantID  string            `json:"variantId"`
	Dimensions map[string]string `json:"dimensions"`
	Name       string            `json:"name"`
	PriceCents int64             `json:"priceCents"`
	Image      string            `json:"image"`
}

type saveWishlistRequest struct {
	ProductID string           `json:"productId" binding:"required"`
	Snapshot  *snapshotPayload `json:"snapshot"`
}
