package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"storefront-sync/internal/domain"
	"storefront-sync/internal/identity"
	"storefront-sync/internal/variant"
)

// Client talks to the persistence service and normalizes its
// heterogeneous payload shapes into the flat local ones. Reads never
// propagate errors; a failed fetch reads as "nothing saved yet".
type Client struct {
	baseURL  string
	http     *http.Client
	identity *identity.Resolver
	logger   *log.Logger
}

func New(baseURL string, httpClient *http.Client, res *identity.Resolver, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, http: httpClient, identity: res, logger: logger}
}

// FetchCart returns the current identity's cart, or an empty list on any
// network or parse failure.
func (c *Client) FetchCart(ctx context.Context) []domain.CartLine {
	var env cartEnvelope
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &env); err != nil {
		c.logger.Printf("fetch cart: %v", err)
		return nil
	}
	return normalizeCartItems(env.Items)
}

// SyncCart sends the full deduped line list and returns the server's
// canonical state. The input passes through the dedup engine first, so
// the server never receives duplicate lines even if a race produced them
// locally. On error the caller keeps its optimistic state.
func (c *Client) SyncCart(ctx context.Context, lines []domain.CartLine) ([]domain.CartLine, error) {
	merged := variant.MergeLines(lines)
	items := make([]cartItemWire, len(merged))
	for i, l := range merged {
		items[i] = fromCartLine(l)
	}
	var env cartEnvelope
	if err := c.do(ctx, http.MethodPost, "/cart", cartEnvelope{Items: items}, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSyncFailed, err)
	}
	return normalizeCartItems(env.Items), nil
}

// ClearCart deletes the server cart and adopts the (expected empty)
// response, or an empty list on failure.
func (c *Client) ClearCart(ctx context.Context) ([]domain.CartLine, error) {
	var env cartEnvelope
	if err := c.do(ctx, http.MethodDelete, "/cart", nil, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSyncFailed, err)
	}
	return normalizeCartItems(env.Items), nil
}

// FetchWishlist returns the current identity's wishlist, or an empty list
// on any failure.
func (c *Client) FetchWishlist(ctx context.Context) []domain.WishlistEntry {
	var env wishlistEnvelope
	if err := c.do(ctx, http.MethodGet, "/wishlist", nil, &env); err != nil {
		c.logger.Printf("fetch wishlist: %v", err)
		return nil
	}
	return normalizeWishlistItems(env.Items)
}

// AddWishlistItem saves a product, with a frozen snapshot for variant
// products, and returns the full canonical tagged list.
func (c *Client) AddWishlistItem(ctx context.Context, productID string, snapshot *domain.WishlistEntry) ([]domain.WishlistEntry, error) {
	req := wishlistSaveRequest{ProductID: productID}
	if snapshot != nil {
		req.Snapshot = &wishlistSnapshotWire{
			VariantID:  snapshot.VariantID,
			Dimensions: snapshot.Dimensions,
			Name:       snapshot.Name,
			PriceCents: snapshot.PriceCents,
			Image:      snapshot.Image,
		}
	}
	var env wishlistEnvelope
	if err := c.do(ctx, http.MethodPost, "/wishlist", req, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSyncFailed, err)
	}
	return normalizeWishlistItems(env.Items), nil
}

// RemoveWishlistItem removes entries for a product, scoped to one variant
// when variantID is set, and returns the canonical list.
func (c *Client) RemoveWishlistItem(ctx context.Context, productID, variantID string) ([]domain.WishlistEntry, error) {
	path := "/wishlist/" + url.PathEscape(productID)
	if variantID != "" {
		path += "?variantId=" + url.QueryEscape(variantID)
	}
	var env wishlistEnvelope
	if err := c.do(ctx, http.MethodDelete, path, nil, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSyncFailed, err)
	}
	return normalizeWishlistItems(env.Items), nil
}

// ClearWishlist empties the server wishlist.
func (c *Client) ClearWishlist(ctx context.Context) ([]domain.WishlistEntry, error) {
	var env wishlistEnvelope
	if err := c.do(ctx, http.MethodDelete, "/wishlist", nil, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSyncFailed, err)
	}
	return normalizeWishlistItems(env.Items), nil
}

// do runs one request. Identity headers are attached on the way out and
// every response, error responses included, is inspected for a refreshed
// guest token.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.identity.Attach(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	c.identity.Capture(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Error payloads may still deliver a refreshed token.
		var failure struct {
			GuestToken string `json:"guestToken"`
		}
		if json.NewDecoder(resp.Body).Decode(&failure) == nil {
			c.identity.CaptureToken(failure.GuestToken)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	switch env := out.(type) {
	case *cartEnvelope:
		c.identity.CaptureToken(env.GuestToken)
	case *wishlistEnvelope:
		c.identity.CaptureToken(env.GuestToken)
	}
	return nil
}
