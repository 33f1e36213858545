// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pricewatch/internal/delivery/http/middleware"
	"pricewatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	CatalogHandler   *handler.CatalogHandler
	ProductHandler   *handler.ProductHandler
	PriceHandler     *handler.PriceHandler
	ProviderHandler  *handler.ProviderHandler
	WatchlistHandler *handler.WatchlistHandler
	ScrapeHandler    *handler.ScrapeHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	catalogHandler   *handler.CatalogHandler
	productHandler   *handler.ProductHandler
	priceHandler     *handler.PriceHandler
	providerHandler  *handler.ProviderHandler
	watchlistHandler *handler.WatchlistHandler
	scrapeHandler    *handler.ScrapeHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		catalogHandler:   params.CatalogHandler,
		productHandler:   params.ProductHandler,
		priceHandler:     params.PriceHandler,
		providerHandler:  params.ProviderHandler,
		watchlistHandler: params.WatchlistHandler,
		scrapeHandler:    params.ScrapeHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads are public; every mutation requires an authenticated ADMIN, and the
// watchlist requires authentication only.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authenticated := r.authMiddleware.Authenticate
	admin := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin}

	// Current user
	api.GET("/auth/user", r.userHandler.GetCurrentUser, authenticated)

	// Category taxonomy
	api.GET("/categories", r.catalogHandler.ListCategories)
	api.GET("/categories/:id", r.catalogHandler.GetCategory)
	api.POST("/categories", r.catalogHandler.CreateCategory, admin...)
	api.GET("/subcategories", r.catalogHandler.ListSubcategories)
	api.POST("/subcategories", r.catalogHandler.CreateSubcategory, admin...)

	// Products and variants
	api.GET("/products", r.productHandler.ListProducts)
	api.GET("/products/:id", r.productHandler.GetProduct)
	api.POST("/products", r.productHandler.CreateProduct, admin...)
	api.PUT("/products/:id", r.productHandler.UpdateProduct, admin...)
	api.GET("/products/:id/variants", r.productHandler.ListVariants)
	api.POST("/variants", r.productHandler.CreateVariant, admin...)
	api.POST("/product-providers", r.productHandler.LinkProvider, admin...)

	// Prices
	api.GET("/products/:id/prices", r.priceHandler.ListPrices)
	api.GET("/products/:id/price-history", r.priceHandler.GetPriceHistory)
	api.POST("/prices", r.priceHandler.CreatePrice, admin...)

	// Providers and locations
	api.GET("/providers", r.providerHandler.ListProviders)
	api.POST("/providers", r.providerHandler.CreateProvider, admin...)
	api.GET("/locations", r.providerHandler.ListLocations)
	api.POST("/locations", r.providerHandler.CreateLocation, admin...)

	// Watchlist
	api.GET("/watchlist", r.watchlistHandler.GetWatchlist, authenticated)
	api.POST("/watchlist", r.watchlistHandler.AddToWatchlist, authenticated)
	api.DELETE("/watchlist/:productId", r.watchlistHandler.RemoveFromWatchlist, authenticated)

	// Scrape trigger
	api.POST("/scrape/:productId", r.scrapeHandler.TriggerScrape, admin...)
}
