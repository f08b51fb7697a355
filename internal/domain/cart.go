package domain

// CartLine is one line item in the local cart. Lines are unique by
// VariantKey within a cart; a line whose quantity would drop below 1 is
// removed rather than stored at zero.
type CartLine struct {
	VariantKey     string            `json:"variantKey"`
	ProductID      string            `json:"productId"`
	Name           string            `json:"name"`
	UnitPriceCents int64             `json:"unitPriceCents"`
	Quantity       int               `json:"quantity"`
	Dimensions     map[string]string `json:"dimensions,omitempty"`
	Image          string            `json:"image,omitempty"`
}

// TotalCents is the extended price of the line.
func (l CartLine) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}
