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

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ListProducts handles listing products. A subcategory filter wins over a
// category filter when both are supplied.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	var categoryID, subcategoryID *int

	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
		}
		categoryID = &id
	}

	if raw := c.QueryParam("subcategoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid subcategory ID")
		}
		subcategoryID = &id
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), categoryID, subcategoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct handles fetching one product by id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// CreateProduct handles adding a new product
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles a partial product update
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// ListVariants handles listing every variant of a product
func (h *ProductHandler) ListVariants(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	variants, err := h.productUC.ListVariants(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, variants, "Variants retrieved successfully")
}

// CreateVariant handles adding a new variant
func (h *ProductHandler) CreateVariant(c echo.Context) error {
	var input usecase.CreateVariantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid variant input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	variant, err := h.productUC.CreateVariant(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, variant, "Variant created successfully")
}

// LinkProvider handles linking a product to a provider under a SKU
func (h *ProductHandler) LinkProvider(c echo.Context) error {
	var input usecase.CreateProductProviderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product provider input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	link, err := h.productUC.LinkProvider(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, link, "Product provider created successfully")
}
