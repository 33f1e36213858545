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

// ScrapeHandlerParams holds dependencies for ScrapeHandler, injected by Fx.
type ScrapeHandlerParams struct {
	fx.In

	ScrapeUC usecase.ScrapeUsecase
	Logger   *slog.Logger
}

// ScrapeHandler holds dependencies for the scrape trigger handler
type ScrapeHandler struct {
	scrapeUC usecase.ScrapeUsecase
	logger   *slog.Logger
}

// NewScrapeHandler is the constructor for ScrapeHandler
func NewScrapeHandler(params ScrapeHandlerParams) *ScrapeHandler {
	return &ScrapeHandler{
		scrapeUC: params.ScrapeUC,
		logger:   params.Logger,
	}
}

// TriggerScrape handles queueing a scrape for one product. The
// acknowledgement is synchronous; no scrape result is awaited.
func (h *ScrapeHandler) TriggerScrape(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	ack, err := h.scrapeUC.TriggerScrape(c.Request().Context(), productID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, ack)
}
