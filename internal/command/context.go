package command

import (
	"log"
	"os"
	"path/filepath"

	"storefront-sync/internal/config"
	"storefront-sync/internal/identity"
	"storefront-sync/internal/remote"

	cartsvc "storefront-sync/internal/service/cart"
	wishlistsvc "storefront-sync/internal/service/wishlist"
	cartstore "storefront-sync/internal/store/cart"
	wishliststore "storefront-sync/internal/store/wishlist"

	"github.com/spf13/cobra"
)

// cliContext carries the wired sync client for one command invocation.
// The CLI is short-lived, so commands flush pending writes before Close.
type cliContext struct {
	Cart     *cartsvc.Engine
	Wishlist *wishlistsvc.Engine
	Resolver *identity.Resolver
	profile  *identity.SQLiteStore
}

func getContext(cmd *cobra.Command) (*cliContext, error) {
	cfg := config.FromEnv()
	logger := log.New(os.Stderr, "[shopctl] ", log.LstdFlags)

	var store identity.TokenStore
	var profile *identity.SQLiteStore
	if err := os.MkdirAll(filepath.Dir(cfg.ProfilePath), 0o755); err == nil {
		profile, err = identity.OpenSQLite(cfg.ProfilePath)
		if err == nil {
			store = profile
		}
	}
	if store == nil {
		// Identity degrades to in-memory; the guest token just won't
		// survive this invocation.
		logger.Printf("profile store unavailable at %s", cfg.ProfilePath)
		store = identity.NewMemoryStore()
	}

	resolver := identity.NewResolver(store, logger)
	if bearer, _ := cmd.Flags().GetString("as-user"); bearer != "" {
		resolver.SetCredential(bearer)
	}

	client := remote.New(cfg.APIBaseURL, nil, resolver, logger)
	cart := cartsvc.New(cartstore.New(), client, cfg.DebounceWindow, logger)
	wishlist := wishlistsvc.New(wishliststore.New(), client, logger)

	return &cliContext{
		Cart:     cart,
		Wishlist: wishlist,
		Resolver: resolver,
		profile:  profile,
	}, nil
}

// Close flushes any pending cart write and releases the profile store.
func (c *cliContext) Close() {
	c.Cart.SyncNow()
	c.Cart.Close()
	if c.profile != nil {
		c.profile.Close()
	}
}
