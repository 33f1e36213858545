package impl

import (
	"context"
	"log/slog"
	"time"

	"pricewatch/internal/domain/service"
	"pricewatch/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const scrapeQueuedStatus = "queued"

type scrapeService struct {
	publisher service.EventPublisher
	logger    *slog.Logger

	now func() time.Time
}

// ScrapeServiceParams holds dependencies for ScrapeService, injected by Fx.
type ScrapeServiceParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewScrapeService creates a new scrape service instance
func NewScrapeService(params ScrapeServiceParams) usecase.ScrapeUsecase {
	return &scrapeService{
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// TriggerScrape queues a scrape for the product and acknowledges
// immediately. The event publish is best effort; a failed publish is logged
// and the caller still gets the acknowledgement.
func (s *scrapeService) TriggerScrape(ctx context.Context, productID int, requestedBy string) (*usecase.ScrapeAck, error) {
	event := &service.ScrapeRequestedEvent{
		RequestID:   uuid.NewString(),
		ProductID:   productID,
		RequestedBy: requestedBy,
		RequestedAt: s.now().UTC().Format(time.RFC3339),
	}

	if err := s.publisher.PublishScrapeRequested(ctx, event); err != nil {
		s.logger.Error("Failed to publish scrape request",
			slog.String("request_id", event.RequestID),
			slog.Int("product_id", productID),
			slog.String("error", err.Error()),
		)
	}

	return &usecase.ScrapeAck{
		Message:   "Scraping task queued successfully",
		ProductID: productID,
		Status:    scrapeQueuedStatus,
	}, nil
}
