package handler

import (
	"log/slog"
	"net/http"

	"pricewatch/internal/delivery/http/response"
	"pricewatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProviderHandlerParams holds dependencies for ProviderHandler, injected by Fx.
type ProviderHandlerParams struct {
	fx.In

	ProviderUC usecase.ProviderUsecase
	Logger     *slog.Logger
}

// ProviderHandler holds dependencies for provider and location handlers
type ProviderHandler struct {
	providerUC usecase.ProviderUsecase
	logger     *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler
func NewProviderHandler(params ProviderHandlerParams) *ProviderHandler {
	return &ProviderHandler{
		providerUC: params.ProviderUC,
		logger:     params.Logger,
	}
}

// ListProviders handles listing every provider
func (h *ProviderHandler) ListProviders(c echo.Context) error {
	providers, err := h.providerUC.ListProviders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, providers, "Providers retrieved successfully")
}

// CreateProvider handles adding a new provider
func (h *ProviderHandler) CreateProvider(c echo.Context) error {
	var input usecase.CreateProviderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid provider input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	provider, err := h.providerUC.CreateProvider(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, provider, "Provider created successfully")
}

// ListLocations handles listing every location
func (h *ProviderHandler) ListLocations(c echo.Context) error {
	locations, err := h.providerUC.ListLocations(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// CreateLocation handles adding a new location
func (h *ProviderHandler) CreateLocation(c echo.Context) error {
	var input usecase.CreateLocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := h.providerUC.CreateLocation(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, location, "Location created successfully")
}
