package variant

import (
	"sort"
	"strings"
)

// Selection carries the option choices made for a product. Size and Color
// are shorthand for the two most common dimensions and fold into the same
// namespace as the named Dimensions map.
type Selection struct {
	Size       string
	Color      string
	Dimensions map[string]string
}

// Normalize flattens a Selection into a single dimension map. Blank values
// are dropped; an explicit Dimensions entry wins over the shorthand fields.
func Normalize(sel Selection) map[string]string {
	out := make(map[string]string, len(sel.Dimensions)+2)
	if v := strings.TrimSpace(sel.Size); v != "" {
		out["size"] = v
	}
	if v := strings.TrimSpace(sel.Color); v != "" {
		out["color"] = v
	}
	for k, v := range sel.Dimensions {
		k = strings.TrimSpace(strings.ToLower(k))
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Key builds the deterministic identity string for a product plus its
// selected options. Call-site ordering never changes the result: dimension
// pairs are serialized in sorted order. A product with no dimensions keys
// on its id alone.
func Key(productID string, sel Selection) string {
	return KeyFromDimensions(productID, Normalize(sel))
}

// KeyFromDimensions is Key for an already-normalized dimension map.
func KeyFromDimensions(productID string, dims map[string]string) string {
	if len(dims) == 0 {
		return productID
	}
	names := make([]string, 0, len(dims))
	for k := range dims {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(productID)
	for _, k := range names {
		b.WriteString("|")
		b.WriteString(k)
		b.WriteString(":")
		b.WriteString(dims[k])
	}
	return b.String()
}

// DimensionsEqual reports whether two dimension maps match key by key.
// Nil and empty maps compare equal.
func DimensionsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
