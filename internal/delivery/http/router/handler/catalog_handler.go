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

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for category taxonomy handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListCategories handles listing every category
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// GetCategory handles fetching one category by id
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	category, err := h.catalogUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category, "Category retrieved successfully")
}

// CreateCategory handles adding a new category
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var input usecase.CreateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// ListSubcategories handles listing subcategories, optionally filtered by
// parent category
func (h *CatalogHandler) ListSubcategories(c echo.Context) error {
	var categoryID *int
	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
		}
		categoryID = &id
	}

	subcategories, err := h.catalogUC.ListSubcategories(c.Request().Context(), categoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subcategories, "Subcategories retrieved successfully")
}

// CreateSubcategory handles adding a new subcategory
func (h *CatalogHandler) CreateSubcategory(c echo.Context) error {
	var input usecase.CreateSubcategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	subcategory, err := h.catalogUC.CreateSubcategory(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subcategory, "Subcategory created successfully")
}
