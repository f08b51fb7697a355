package wishlist

import (
	"context"

	"storefront-sync/internal/domain"
)

// Repository stores tagged wishlist entries per owner. Dedup decisions
// live in the service layer; the repository only persists.
type Repository interface {
	List(ctx context.Context, ownerID string) ([]domain.WishlistEntry, error)
	Insert(ctx context.Context, ownerID string, entry domain.WishlistEntry) error
	Delete(ctx context.Context, ownerID, productID, variantID string) error
	Clear(ctx context.Context, ownerID string) error
}
