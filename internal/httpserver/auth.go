package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strings"

	anonymoussvc "storefront-sync/internal/service/anonymous"

	"storefront-sync/internal/identity"

	"github.com/gin-gonic/gin"
)

const (
	ownerCtxKey      = "owner"
	guestTokenCtxKey = "guestToken"
	guestCookieName  = "guest_token"
)

// identityMiddleware resolves the request owner. A bearer credential
// takes precedence and scopes state by the authenticated session; a
// guest token scopes by its anonymous owner. A missing or invalid guest
// token gets a fresh mint, delivered on every response via header,
// cookie, and payload field so clients can capture it anywhere.
func identityMiddleware(anon *anonymoussvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			cred := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if cred != "" {
				c.Set(ownerCtxKey, "user:"+cred)
				c.Next()
				return
			}
		}

		ctx := c.Request.Context()
		tok := c.GetHeader(identity.GuestTokenHeader)
		if tok == "" {
			if cookie, err := c.Cookie(guestCookieName); err == nil {
				tok = cookie
			}
		}

		var ownerID string
		if tok != "" {
			id, err := anon.Resolve(ctx, tok)
			switch {
			case err == nil:
				ownerID = id
			case errors.Is(err, anonymoussvc.ErrInvalidToken):
				tok = ""
			default:
				logger.Printf("resolve guest token: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "identity unavailable"})
				return
			}
		}
		if ownerID == "" {
			minted, id, err := anon.Issue(ctx)
			if err != nil {
				logger.Printf("issue guest token: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "identity unavailable"})
				return
			}
			tok, ownerID = minted, id
		}

		c.Header(identity.GuestTokenHeader, tok)
		c.SetCookie(guestCookieName, tok, anon.TTLSeconds(), "/", "", false, true)
		c.Set(ownerCtxKey, "guest:"+ownerID)
		c.Set(guestTokenCtxKey, tok)
		c.Next()
	}
}

func requestOwner(c *gin.Context) string {
	return c.GetString(ownerCtxKey)
}

func requestGuestToken(c *gin.Context) string {
	return c.GetString(guestTokenCtxKey)
}
