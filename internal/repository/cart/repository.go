package cart

import (
	"context"

	"storefront-sync/internal/domain"
)

// Repository stores one flat line list per owner (guest or customer).
// Writes are full-list replacements; the sync protocol never applies
// diffs.
type Repository interface {
	GetLines(ctx context.Context, ownerID string) ([]domain.CartLine, error)
	ReplaceLines(ctx context.Context, ownerID string, lines []domain.CartLine) ([]domain.CartLine, error)
	Clear(ctx context.Context, ownerID string) error
}
