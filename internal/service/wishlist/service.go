package wishlist

import (
	"context"
	"log"

	"storefront-sync/internal/domain"
	"storefront-sync/internal/variant"

	wishliststore "storefront-sync/internal/store/wishlist"
)

// remoteClient is the slice of the reconciliation client the wishlist
// engine needs. Wishlist writes go to the server directly per action,
// without debouncing.
type remoteClient interface {
	FetchWishlist(ctx context.Context) []domain.WishlistEntry
	AddWishlistItem(ctx context.Context, productID string, snapshot *domain.WishlistEntry) ([]domain.WishlistEntry, error)
	RemoveWishlistItem(ctx context.Context, productID, variantID string) ([]domain.WishlistEntry, error)
	ClearWishlist(ctx context.Context) ([]domain.WishlistEntry, error)
}

// Engine is the wishlist surface exposed to the UI layer. All writes are
// user-awaited, so failures are surfaced; the optimistic local entry is
// kept regardless.
type Engine struct {
	store  *wishliststore.Store
	remote remoteClient
	logger *log.Logger
}

func New(store *wishliststore.Store, remote remoteClient, logger *log.Logger) *Engine {
	return &Engine{store: store, remote: remote, logger: logger}
}

// Hydrate replaces local state with the server's view.
func (e *Engine) Hydrate(ctx context.Context) {
	e.store.ReplaceAll(e.remote.FetchWishlist(ctx))
}

// Save picks the entry shape for a product: a bare reference when the
// product has no variant dimensions and nothing was selected, otherwise a
// snapshot freezing the product's display data for the selection.
func (e *Engine) Save(ctx context.Context, p domain.Product, sel variant.Selection, variantID string) error {
	dims := variant.Normalize(sel)
	if !p.HasVariants() && variantID == "" && len(dims) == 0 {
		return e.SaveReference(ctx, p.ID)
	}
	return e.SaveSnapshot(ctx, domain.WishlistEntry{
		ProductID:  p.ID,
		VariantID:  variantID,
		Dimensions: dims,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Image:      p.Image,
	})
}

// SaveReference saves a bare reference to a variant-less product. An
// already-saved product is a silent no-op.
func (e *Engine) SaveReference(ctx context.Context, productID string) error {
	if !e.store.AddReference(productID) {
		return nil
	}
	canonical, err := e.remote.AddWishlistItem(ctx, productID, nil)
	if err != nil {
		return err
	}
	e.store.ReplaceAll(canonical)
	return nil
}

// SaveSnapshot freezes the entry's display data at save time and stores
// it. Duplicates of an already-saved variant are silent no-ops.
func (e *Engine) SaveSnapshot(ctx context.Context, entry domain.WishlistEntry) error {
	entry.Dimensions = variant.Normalize(variant.Selection{Dimensions: entry.Dimensions})
	if !e.store.AddSnapshot(entry) {
		return nil
	}
	canonical, err := e.remote.AddWishlistItem(ctx, entry.ProductID, &entry)
	if err != nil {
		return err
	}
	e.store.ReplaceAll(canonical)
	return nil
}

// Remove deletes saved entries for a product; a variantID scopes the
// removal to that variant, leaving siblings intact.
func (e *Engine) Remove(ctx context.Context, productID, variantID string) error {
	e.store.Remove(productID, variantID)
	canonical, err := e.remote.RemoveWishlistItem(ctx, productID, variantID)
	if err != nil {
		return err
	}
	e.store.ReplaceAll(canonical)
	return nil
}

// Clear empties the wishlist locally and on the server.
func (e *Engine) Clear(ctx context.Context) error {
	e.store.Clear()
	if _, err := e.remote.ClearWishlist(ctx); err != nil {
		return err
	}
	return nil
}

// Saved answers whether the selected variant of a product is already on
// the wishlist.
func (e *Engine) Saved(productID string, dims map[string]string) bool {
	return e.store.Contains(productID, dims)
}

// SavedVariant is Saved for callers that know the variant id.
func (e *Engine) SavedVariant(productID, variantID string, dims map[string]string) bool {
	return e.store.ContainsVariant(productID, variantID, dims)
}

// Entries returns a copy of the current entry list.
func (e *Engine) Entries() []domain.WishlistEntry {
	return e.store.Entries()
}

// Len is the number of saved entries.
func (e *Engine) Len() int {
	return e.store.Len()
}
