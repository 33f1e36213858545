package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pricewatch/internal/delivery/http/middleware"
	"pricewatch/internal/delivery/http/response"
	"pricewatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WatchlistHandlerParams holds dependencies for WatchlistHandler, injected by Fx.
type WatchlistHandlerParams struct {
	fx.In

	WatchlistUC usecase.WatchlistUsecase
	Logger      *slog.Logger
}

// WatchlistHandler holds dependencies for watchlist handlers. The acting
// user always comes from the token, never from the request body.
type WatchlistHandler struct {
	watchlistUC usecase.WatchlistUsecase
	logger      *slog.Logger
}

// NewWatchlistHandler is the constructor for WatchlistHandler
func NewWatchlistHandler(params WatchlistHandlerParams) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistUC: params.WatchlistUC,
		logger:      params.Logger,
	}
}

// AddToWatchlistRequest represents the request body for watching a product
type AddToWatchlistRequest struct {
	ProductID int `json:"productId" validate:"required"`
}

// GetWatchlist handles listing the caller's watchlist
func (h *WatchlistHandler) GetWatchlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entries, err := h.watchlistUC.GetWatchlist(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries, "Watchlist retrieved successfully")
}

// AddToWatchlist handles putting a product on the caller's watchlist
func (h *WatchlistHandler) AddToWatchlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddToWatchlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid watchlist input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	entry, err := h.watchlistUC.AddToWatchlist(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry, "Product added to watchlist")
}

// RemoveFromWatchlist handles taking a product off the caller's watchlist.
// Removing a product that was never added still returns 204.
func (h *WatchlistHandler) RemoveFromWatchlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.watchlistUC.RemoveFromWatchlist(c.Request().Context(), userID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
