package cart

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"storefront-sync/internal/domain"
	"storefront-sync/internal/scheduler"
	"storefront-sync/internal/variant"

	cartstore "storefront-sync/internal/store/cart"
)

// remoteClient is the slice of the reconciliation client the cart engine
// needs.
type remoteClient interface {
	FetchCart(ctx context.Context) []domain.CartLine
	SyncCart(ctx context.Context, lines []domain.CartLine) ([]domain.CartLine, error)
	ClearCart(ctx context.Context) ([]domain.CartLine, error)
}

// Engine is the cart surface exposed to the UI layer. Mutations apply to
// the local store synchronously and are pushed to the server by the
// debounced scheduler; failed background writes keep the optimistic local
// state and retry on the next debounce cycle.
type Engine struct {
	store    *cartstore.Store
	remote   remoteClient
	deb      *scheduler.Debouncer
	logger   *log.Logger
	adopting atomic.Bool
}

func New(store *cartstore.Store, remote remoteClient, window time.Duration, logger *log.Logger) *Engine {
	e := &Engine{store: store, remote: remote, logger: logger}
	e.deb = scheduler.New(window, e.flush)
	store.SetOnChange(func() {
		// Adopting canonical server state must not schedule another
		// write of that same state.
		if !e.adopting.Load() {
			e.deb.Trigger(store.Snapshot())
		}
	})
	return e
}

// Hydrate replaces local state with the server's view, on load or after
// an identity change. A failed fetch hydrates an empty cart.
func (e *Engine) Hydrate(ctx context.Context) {
	e.adopt(e.remote.FetchCart(ctx))
	e.deb.Reset(e.store.Snapshot())
}

// Add puts qty of a line into the cart, merging with an existing line of
// the same variant.
func (e *Engine) Add(line domain.CartLine, qty int) {
	e.store.Add(line, qty)
}

// AddProduct freezes a product's display data into a cart line for the
// selected options and adds it.
func (e *Engine) AddProduct(p domain.Product, sel variant.Selection, qty int) {
	dims := variant.Normalize(sel)
	e.store.Add(domain.CartLine{
		VariantKey:     variant.KeyFromDimensions(p.ID, dims),
		ProductID:      p.ID,
		Name:           p.Name,
		UnitPriceCents: p.PriceCents,
		Dimensions:     dims,
		Image:          p.Image,
	}, qty)
}

// UpdateQuantity sets a line's quantity; below 1 removes the line.
func (e *Engine) UpdateQuantity(variantKey string, qty int) {
	e.store.UpdateQuantity(variantKey, qty)
}

// Remove deletes a line.
func (e *Engine) Remove(variantKey string) {
	e.store.Remove(variantKey)
}

// Clear empties the cart locally and deletes the server cart. This is a
// user-awaited write, so the failure is surfaced; the local cart stays
// empty either way and the next debounce cycle retries.
func (e *Engine) Clear(ctx context.Context) error {
	e.store.Clear()
	canonical, err := e.remote.ClearCart(ctx)
	if err != nil {
		return err
	}
	e.adopt(canonical)
	e.deb.Reset(e.store.Snapshot())
	return nil
}

// SyncNow flushes any pending write immediately, for callers that need a
// guarantee before e.g. checkout.
func (e *Engine) SyncNow() {
	e.deb.Flush()
}

// Close drops any pending debounce timer without a final flush.
func (e *Engine) Close() {
	e.deb.Stop()
}

// Items returns a copy of the current cart lines.
func (e *Engine) Items() []domain.CartLine {
	return e.store.Items()
}

// TotalQuantity is the sum of all line quantities.
func (e *Engine) TotalQuantity() int {
	return e.store.TotalQuantity()
}

// TotalPriceCents is the sum of all extended line prices.
func (e *Engine) TotalPriceCents() int64 {
	return e.store.TotalPriceCents()
}

// flush is the scheduler callback: full-list replacement with whatever is
// in the store right now, never a diff, because network completions may
// arrive out of order.
func (e *Engine) flush() (string, bool) {
	canonical, err := e.remote.SyncCart(context.Background(), e.store.Items())
	if err != nil {
		e.logger.Printf("cart sync: %v (keeping local state)", err)
		return "", false
	}
	e.adopt(canonical)
	return e.store.Snapshot(), true
}

func (e *Engine) adopt(lines []domain.CartLine) {
	e.adopting.Store(true)
	e.store.ReplaceAll(lines)
	e.adopting.Store(false)
}
