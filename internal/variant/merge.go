package variant

import "storefront-sync/internal/domain"

// MergeLines collapses cart lines that resolve to the same variant key,
// summing quantities. First-seen order is preserved. Every list entering a
// store or leaving for the server passes through here, so duplicates
// produced by racing mutations never survive a round-trip.
func MergeLines(lines []domain.CartLine) []domain.CartLine {
	if len(lines) == 0 {
		return nil
	}
	out := make([]domain.CartLine, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, line := range lines {
		key := line.VariantKey
		if key == "" {
			key = KeyFromDimensions(line.ProductID, line.Dimensions)
			line.VariantKey = key
		}
		if i, ok := index[key]; ok {
			out[i].Quantity += line.Quantity
			continue
		}
		index[key] = len(out)
		out = append(out, line)
	}
	return out
}
