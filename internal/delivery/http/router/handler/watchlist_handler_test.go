package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pricewatch/internal/delivery/http/middleware"
	"pricewatch/internal/delivery/http/validator"
	"pricewatch/internal/domain/entity"
	mockUC "pricewatch/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWatchlistHandlerForTest(t *testing.T) (*WatchlistHandler, *mockUC.MockWatchlistUsecase, *echo.Echo) {
	t.Helper()

	watchlistUC := mockUC.NewMockWatchlistUsecase(t)
	h := &WatchlistHandler{
		watchlistUC: watchlistUC,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	e.Validator = validator.New()

	return h, watchlistUC, e
}

func TestWatchlistHandler_GetWatchlist(t *testing.T) {
	h, watchlistUC, e := newWatchlistHandlerForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, "user-1")

	watchlistUC.EXPECT().
		GetWatchlist(req.Context(), "user-1").
		Return([]*entity.WatchlistEntry{{ID: 1, UserID: "user-1", ProductID: 11}}, nil)

	require.NoError(t, h.GetWatchlist(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"productId":11`)
}

func TestWatchlistHandler_GetWatchlist_MissingUser(t *testing.T) {
	h, _, e := newWatchlistHandlerForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetWatchlist(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWatchlistHandler_AddToWatchlist(t *testing.T) {
	h, watchlistUC, e := newWatchlistHandlerForTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/watchlist", strings.NewReader(`{"productId":11}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, "user-1")

	watchlistUC.EXPECT().
		AddToWatchlist(req.Context(), "user-1", 11).
		Return(&entity.WatchlistEntry{ID: 1, UserID: "user-1", ProductID: 11}, nil)

	require.NoError(t, h.AddToWatchlist(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestWatchlistHandler_AddToWatchlist_MissingProductID(t *testing.T) {
	h, _, e := newWatchlistHandlerForTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/watchlist", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, "user-1")

	require.NoError(t, h.AddToWatchlist(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWatchlistHandler_RemoveFromWatchlist_Returns204(t *testing.T) {
	h, watchlistUC, e := newWatchlistHandlerForTest(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/watchlist/11", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("productId")
	c.SetParamValues("11")
	c.Set(middleware.ContextKeyUserID, "user-1")

	watchlistUC.EXPECT().
		RemoveFromWatchlist(req.Context(), "user-1", 11).
		Return(nil)

	require.NoError(t, h.RemoveFromWatchlist(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestWatchlistHandler_RemoveFromWatchlist_InvalidProductID(t *testing.T) {
	h, _, e := newWatchlistHandlerForTest(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/watchlist/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("productId")
	c.SetParamValues("abc")
	c.Set(middleware.ContextKeyUserID, "user-1")

	require.NoError(t, h.RemoveFromWatchlist(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
