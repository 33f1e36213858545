package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pricewatch/internal/domain/service"
	mockSvc "pricewatch/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newScrapeServiceForTest(t *testing.T) (*scrapeService, *mockSvc.MockEventPublisher) {
	t.Helper()

	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewScrapeService(ScrapeServiceParams{
		Publisher: publisher,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*scrapeService)

	return svc, publisher
}

func TestScrapeService_TriggerScrape_PublishesEventAndAcks(t *testing.T) {
	svc, publisher := newScrapeServiceForTest(t)
	ctx := context.Background()

	fixed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	var captured *service.ScrapeRequestedEvent
	publisher.EXPECT().
		PublishScrapeRequested(ctx, mock.Anything).
		Run(func(ctx context.Context, event *service.ScrapeRequestedEvent) {
			captured = event
		}).
		Return(nil)

	ack, err := svc.TriggerScrape(ctx, 11, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Scraping task queued successfully", ack.Message)
	assert.Equal(t, 11, ack.ProductID)
	assert.Equal(t, "queued", ack.Status)

	require.NotNil(t, captured)
	assert.NotEmpty(t, captured.RequestID)
	assert.Equal(t, 11, captured.ProductID)
	assert.Equal(t, "user-1", captured.RequestedBy)
	assert.Equal(t, "2026-08-28T12:00:00Z", captured.RequestedAt)
}

func TestScrapeService_TriggerScrape_AcksEvenWhenPublishFails(t *testing.T) {
	svc, publisher := newScrapeServiceForTest(t)
	ctx := context.Background()

	publisher.EXPECT().
		PublishScrapeRequested(ctx, mock.Anything).
		Return(errors.New("broker unavailable"))

	ack, err := svc.TriggerScrape(ctx, 11, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "queued", ack.Status)
	assert.Equal(t, 11, ack.ProductID)
}
