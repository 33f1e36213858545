package usecase

import (
	"context"
)

// ScrapeAck is the acknowledgement returned when a scrape is queued.
type ScrapeAck struct {
	Message   string `json:"message"`
	ProductID int    `json:"productId"`
	Status    string `json:"status"`
}

// ScrapeUsecase queues provider scrapes for fresh price data.
type ScrapeUsecase interface {
	// TriggerScrape queues a scrape for the product and acknowledges
	// immediately. Delivery to the scrape worker is best effort; a publish
	// failure never fails the acknowledgement.
	TriggerScrape(ctx context.Context, productID int, requestedBy string) (*ScrapeAck, error)
}
