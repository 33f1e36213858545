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
	mockUC "pricewatch/internal/mocks/usecase"
	"pricewatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPriceHandlerForTest(t *testing.T) (*PriceHandler, *mockUC.MockPriceUsecase, *echo.Echo) {
	t.Helper()

	priceUC := mockUC.NewMockPriceUsecase(t)
	h := &PriceHandler{
		priceUC: priceUC,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	e.Validator = validator.New()

	return h, priceUC, e
}

func TestPriceHandler_ListPrices_VariantFilter(t *testing.T) {
	h, priceUC, e := newPriceHandlerForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/11/prices?variantId=3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("11")

	variantID := 3
	priceUC.EXPECT().
		ListPrices(req.Context(), 11, &variantID).
		Return([]*entity.Price{}, nil)

	require.NoError(t, h.ListPrices(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPriceHandler_GetPriceHistory_DaysQueryParam(t *testing.T) {
	h, priceUC, e := newPriceHandlerForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/11/price-history?days=7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("11")

	days := 7
	priceUC.EXPECT().
		GetPriceHistory(req.Context(), 11, &days).
		Return([]*entity.Price{}, nil)

	require.NoError(t, h.GetPriceHistory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPriceHandler_GetPriceHistory_NoDaysParam(t *testing.T) {
	h, priceUC, e := newPriceHandlerForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/11/price-history", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("11")

	priceUC.EXPECT().
		GetPriceHistory(req.Context(), 11, (*int)(nil)).
		Return([]*entity.Price{}, nil)

	require.NoError(t, h.GetPriceHistory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPriceHandler_CreatePrice(t *testing.T) {
	h, priceUC, e := newPriceHandlerForTest(t)

	body := `{"productId":11,"providerId":3,"originalPrice":"4.00","discount":"0.50","finalPrice":"3.50"}`
	req := httptest.NewRequest(http.MethodPost, "/api/prices", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	priceUC.EXPECT().
		CreatePrice(req.Context(), &usecase.CreatePriceInput{
			ProductID:     11,
			ProviderID:    3,
			OriginalPrice: "4.00",
			Discount:      "0.50",
			FinalPrice:    "3.50",
		}).
		Return(&entity.Price{ID: 1, ProductID: 11, ProviderID: 3}, nil)

	require.NoError(t, h.CreatePrice(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPriceHandler_CreatePrice_MissingFinalPrice(t *testing.T) {
	h, _, e := newPriceHandlerForTest(t)

	body := `{"productId":11,"providerId":3,"originalPrice":"4.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/prices", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreatePrice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}
