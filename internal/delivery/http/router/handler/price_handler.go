package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pricewatch/internal/delivery/http/response"
	"pricewatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PriceHandlerParams holds dependencies for PriceHandler, injected by Fx.
type PriceHandlerParams struct {
	fx.In

	PriceUC usecase.PriceUsecase
	Logger  *slog.Logger
}

// PriceHandler holds dependencies for price-related handlers
type PriceHandler struct {
	priceUC usecase.PriceUsecase
	logger  *slog.Logger
}

// NewPriceHandler is the constructor for PriceHandler
func NewPriceHandler(params PriceHandlerParams) *PriceHandler {
	return &PriceHandler{
		priceUC: params.PriceUC,
		logger:  params.Logger,
	}
}

// ListPrices handles listing prices for a product, newest first
func (h *PriceHandler) ListPrices(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var variantID *int
	if raw := c.QueryParam("variantId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
		}
		variantID = &id
	}

	prices, err := h.priceUC.ListPrices(c.Request().Context(), productID, variantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prices, "Prices retrieved successfully")
}

// GetPriceHistory handles listing prices within a trailing day window,
// newest first
func (h *PriceHandler) GetPriceHistory(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var days *int
	if raw := c.QueryParam("days"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid days value")
		}
		days = &d
	}

	prices, err := h.priceUC.GetPriceHistory(c.Request().Context(), productID, days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prices, "Price history retrieved successfully")
}

// CreatePrice handles appending a new price observation
func (h *PriceHandler) CreatePrice(c echo.Context) error {
	var input usecase.CreatePriceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid price input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	price, err := h.priceUC.CreatePrice(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, price, "Price created successfully")
}
