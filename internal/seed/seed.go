package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-sync/internal/domain"
	"storefront-sync/internal/variant"

	cartrepo "storefront-sync/internal/repository/cart"
	tokenrepo "storefront-sync/internal/repository/token"
	wishlistrepo "storefront-sync/internal/repository/wishlist"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DemoToken is the well-known guest token the seed data hangs off, so a
// manual tester can hit the API with a predictable identity.
const DemoToken = "demo-guest-token"

const demoOwnerID = "00000000-0000-0000-0000-000000000001"

const demoOwner = "guest:" + demoOwnerID

// Apply inserts demo cart and wishlist data for manual testing. It is
// idempotent: the demo owner's state is replaced wholesale on each run.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	tokens := tokenrepo.NewPostgres(pool)
	err := tokens.Create(ctx, tokenrepo.Token{
		Token:     DemoToken,
		OwnerID:   demoOwnerID,
		ExpiresAt: time.Now().Add(365 * 24 * time.Hour),
	})
	if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("ensure demo token: %w", err)
	}

	lines := []domain.CartLine{
		{
			ProductID:      "demo-shirt",
			Name:           "Demo T-Shirt",
			UnitPriceCents: 1999,
			Quantity:       2,
			Dimensions:     map[string]string{"size": "M", "color": "navy"},
		},
		{
			ProductID:      "demo-mug",
			Name:           "Demo Mug",
			UnitPriceCents: 1299,
			Quantity:       1,
		},
	}
	for i := range lines {
		lines[i].VariantKey = variant.KeyFromDimensions(lines[i].ProductID, lines[i].Dimensions)
	}
	if _, err := cartrepo.NewPostgres(pool).ReplaceLines(ctx, demoOwner, lines); err != nil {
		return fmt.Errorf("seed cart: %w", err)
	}

	wishlists := wishlistrepo.NewPostgres(pool)
	if err := wishlists.Clear(ctx, demoOwner); err != nil {
		return fmt.Errorf("reset wishlist: %w", err)
	}
	entries := []domain.WishlistEntry{
		{Kind: domain.EntryReference, ProductID: "demo-poster"},
		{
			Kind:       domain.EntrySnapshot,
			ProductID:  "demo-shirt",
			VariantID:  "demo-shirt-navy-l",
			Dimensions: map[string]string{"size": "L", "color": "navy"},
			Name:       "Demo T-Shirt",
			PriceCents: 1999,
		},
	}
	for _, e := range entries {
		if err := wishlists.Insert(ctx, demoOwner, e); err != nil {
			return fmt.Errorf("seed wishlist entry %s: %w", e.ProductID, err)
		}
	}

	return nil
}
