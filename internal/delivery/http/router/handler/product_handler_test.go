package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pricewatch/internal/delivery/http/validator"
	"pricewatch/internal/domain/entity"
	domainerrors "pricewatch/internal/domain/errors"
	mockUC "pricewatch/internal/mocks/usecase"
	"pricewatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductHandlerForTest(t *testing.T) (*ProductHandler, *mockUC.MockProductUsecase, *echo.Echo) {
	t.Helper()

	productUC := mockUC.NewMockProductUsecase(t)
	h := &ProductHandler{
		productUC: productUC,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	e.Validator = validator.New()

	return h, productUC, e
}

func TestProductHandler_ListProducts_SubcategoryFilter(t *testing.T) {
	h, productUC, e := newProductHandlerForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products?categoryId=2&subcategoryId=7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	categoryID := 2
	subcategoryID := 7
	productUC.EXPECT().
		ListProducts(req.Context(), &categoryID, &subcategoryID).
		Return([]*entity.Product{{ID: 1, Name: "Olive Oil"}}, nil)

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_ListProducts_InvalidCategoryID(t *testing.T) {
	h, _, e := newProductHandlerForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products?categoryId=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	h, productUC, e := newProductHandlerForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	productUC.EXPECT().
		GetProduct(req.Context(), 42).
		Return(nil, domainerrors.ErrProductNotFound)

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestProductHandler_CreateProduct(t *testing.T) {
	h, productUC, e := newProductHandlerForTest(t)

	body := `{"name":"Olive Oil","categoryId":2,"subcategoryId":7,"brand":"Borges"}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	productUC.EXPECT().
		CreateProduct(req.Context(), &usecase.CreateProductInput{
			Name:          "Olive Oil",
			CategoryID:    2,
			SubcategoryID: 7,
			Brand:         "Borges",
		}).
		Return(&entity.Product{ID: 11, Name: "Olive Oil", CategoryID: 2, SubcategoryID: 7, Brand: "Borges"}, nil)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProductHandler_CreateProduct_MissingName(t *testing.T) {
	h, _, e := newProductHandlerForTest(t)

	body := `{"categoryId":2,"subcategoryId":7}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestProductHandler_CreateProduct_CategoryMismatch(t *testing.T) {
	h, productUC, e := newProductHandlerForTest(t)

	body := `{"name":"Olive Oil","categoryId":2,"subcategoryId":7}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	productUC.EXPECT().
		CreateProduct(req.Context(), &usecase.CreateProductInput{
			Name:          "Olive Oil",
			CategoryID:    2,
			SubcategoryID: 7,
		}).
		Return(nil, domainerrors.ErrCategoryMismatch)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "CATEGORY_MISMATCH")
}

func TestProductHandler_UpdateProduct_PartialBody(t *testing.T) {
	h, productUC, e := newProductHandlerForTest(t)

	body := `{"brand":"Gallo"}`
	req := httptest.NewRequest(http.MethodPut, "/api/products/11", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("11")

	brand := "Gallo"
	productUC.EXPECT().
		UpdateProduct(req.Context(), 11, &usecase.UpdateProductInput{Brand: &brand}).
		Return(&entity.Product{ID: 11, Brand: brand}, nil)

	require.NoError(t, h.UpdateProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
