package httpserver

import (
	"log"

	cartrepo "storefront-sync/internal/repository/cart"
	wishlistrepo "storefront-sync/internal/repository/wishlist"
	anonymoussvc "storefront-sync/internal/service/anonymous"

	"storefront-sync/internal/identity"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the wired dependencies for the router.
type Deps struct {
	CartRepo     cartrepo.Repository
	WishlistRepo wishlistrepo.Repository
	AnonymousSvc *anonymoussvc.Service
}

// buildRouter wires routes for the persistence API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", identity.GuestTokenHeader)
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, identity.GuestTokenHeader)
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("", identityMiddleware(deps.AnonymousSvc, logger))
	api.GET("/cart", getCartHandler(deps))
	api.POST("/cart", syncCartHandler(deps))
	api.DELETE("/cart", clearCartHandler(deps))
	api.GET("/wishlist", getWishlistHandler(deps))
	api.POST("/wishlist", saveWishlistHandler(deps))
	api.DELETE("/wishlist/:productId", removeWishlistHandler(deps))
	api.DELETE("/wishlist", clearWishlistHandler(deps))

	return router
}
