package domain

// Product is the catalog view this core consumes: enough display data to
// freeze into cart lines and wishlist snapshots. Catalog management
// itself is an external collaborator.
type Product struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	PriceCents int64             `json:"priceCents"`
	Image      string            `json:"image,omitempty"`
	Dimensions map[string]string `json:"dimensions,omitempty"`
}

// HasVariants reports whether the product carries variant dimensions.
// Only variant-less products may be wishlisted as bare references.
func (p Product) HasVariants() bool {
	return len(p.Dimensions) > 0
}
