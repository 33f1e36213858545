package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pricewatch/internal/delivery/http/middleware"
	mockUC "pricewatch/internal/mocks/usecase"
	"pricewatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScrapeHandlerForTest(t *testing.T) (*ScrapeHandler, *mockUC.MockScrapeUsecase, *echo.Echo) {
	t.Helper()

	scrapeUC := mockUC.NewMockScrapeUsecase(t)
	h := &ScrapeHandler{
		scrapeUC: scrapeUC,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return h, scrapeUC, echo.New()
}

func TestScrapeHandler_TriggerScrape(t *testing.T) {
	h, scrapeUC, e := newScrapeHandlerForTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/scrape/11", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("productId")
	c.SetParamValues("11")
	c.Set(middleware.ContextKeyUserID, "admin-1")

	scrapeUC.EXPECT().
		TriggerScrape(req.Context(), 11, "admin-1").
		Return(&usecase.ScrapeAck{
			Message:   "Scraping task queued successfully",
			ProductID: 11,
			Status:    "queued",
		}, nil)

	require.NoError(t, h.TriggerScrape(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Scraping task queued successfully", body["message"])
	assert.Equal(t, float64(11), body["productId"])
	assert.Equal(t, "queued", body["status"])
}

func TestScrapeHandler_TriggerScrape_InvalidProductID(t *testing.T) {
	h, _, e := newScrapeHandlerForTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/scrape/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("productId")
	c.SetParamValues("abc")
	c.Set(middleware.ContextKeyUserID, "admin-1")

	require.NoError(t, h.TriggerScrape(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
