package httpserver

import (
	"net/http"

	"storefront-sync/internal/domain"

	"github.com/gin-gonic/gin"
)

func getCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := requestOwner(c)
		lines, err := deps.CartRepo.GetLines(c.Request.Context(), owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable", "guestToken": requestGuestToken(c)})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(lines, requestGuestToken(c)))
	}
}

// syncCartHandler is the full-list replacement write: the client always
// sends its entire cart and adopts whatever comes back.
func syncCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req syncCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "guestToken": requestGuestToken(c)})
			return
		}
		lines := make([]domain.CartLine, 0, len(req.Items))
		for _, item := range req.Items {
			if item.ProductID == "" {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "productId required", "guestToken": requestGuestToken(c)})
				return
			}
			lines = append(lines, item.toLine())
		}

		canonical, err := deps.CartRepo.ReplaceLines(c.Request.Context(), requestOwner(c), lines)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart write failed", "guestToken": requestGuestToken(c)})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(canonical, requestGuestToken(c)))
	}
}

func clearCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.CartRepo.Clear(c.Request.Context(), requestOwner(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart clear failed", "guestToken": requestGuestToken(c)})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(nil, requestGuestToken(c)))
	}
}
