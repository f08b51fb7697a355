package httpserver

import (
	"net/http"

	"storefront-sync/internal/domain"
	"storefront-sync/internal/variant"

	wishliststore "storefront-sync/internal/store/wishlist"

	"github.com/gin-gonic/gin"
)

func getWishlistHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := deps.WishlistRepo.List(c.Request.Context(), requestOwner(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "wishlist unavailable", "guestToken": requestGuestToken(c)})
			return
		}
		c.JSON(http.StatusOK, toWishlistResponse(entries, requestGuestToken(c)))
	}
}

// saveWishlistHandler inserts a reference or snapshot entry unless an
// equivalent one is already saved, then responds with the full canonical
// list. Dedup applies the same matching rules clients use locally.
func saveWishlistHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req saveWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required", "guestToken": requestGuestToken(c)})
			return
		}

		entry := domain.WishlistEntry{Kind: domain.EntryReference, ProductID: req.ProductID}
		if snap := req.Snapshot; snap != nil {
			entry = domain.WishlistEntry{
				Kind:       domain.EntrySnapshot,
				ProductID:  req.ProductID,
				VariantID:  snap.VariantID,
				Dimensions: variant.Normalize(variant.Selection{Dimensions: snap.Dimensions}),
				Name:       snap.Name,
				PriceCents: snap.PriceCents,
				Image:      snap.Image,
			}
		}

		ctx := c.Request.Context()
		owner := requestOwner(c)
		existing, err := deps.WishlistRepo.List(ctx, owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "wishlist unavailable", "guestToken": requestGuestToken(c)})
			return
		}

		matcher := wishliststore.New()
		matcher.ReplaceAll(existing)
		if !matcher.ContainsVariant(entry.ProductID, entry.VariantID, entry.Dimensions) {
			if err := deps.WishlistRepo.Insert(ctx, owner, entry); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "wishlist write failed", "guestToken": requestGuestToken(c)})
				return
			}
		}

		entries, err := deps.WishlistRepo.List(ctx, owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "wishlist unavailable", "guestToken": requestGuestToken(c)})
			return
		}
		c.JSON(http.StatusOK, toWishlistResponse(entries, requestGuestToken(c)))
	}
}

func removeWishlistHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		owner := requestOwner(c)
		productID := c.Param("productId")
		variantID := c.Query("variantId")

		if err := deps.WishlistRepo.Delete(ctx, owner, productID, variantID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "wishlist write failed", "guestToken": requestGuestToken(c)})
			return
		}
		entries, err := deps.WishlistRepo.List(ctx, owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "wishlist unavailable", "guestToken": requestGuestToken(c)})
			return
		}
		c.JSON(http.StatusOK, toWishlistResponse(entries, requestGuestToken(c)))
	}
}

func clearWishlistHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.WishlistRepo.Clear(c.Request.Context(), requestOwner(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "wishlist write failed", "guestToken": requestGuestToken(c)})
			return
		}
		c.JSON(http.StatusOK, toWishlistResponse(nil, requestGuestToken(c)))
	}
}
