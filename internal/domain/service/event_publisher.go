package service

import (
	"context"
)

// ScrapeRequestedEvent is handed to the (external) scraping pipeline when an
// admin triggers a scrape. This service only defines the producing side of
// the contract; nothing here awaits a result.
type ScrapeRequestedEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	ProductID   int    `json:"product_id"`
	RequestedBy string `json:"requested_by"` // Admin user id
	RequestedAt string `json:"requested_at"` // RFC3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishScrapeRequested publishes a scrape-trigger event for async processing
	PublishScrapeRequested(ctx context.Context, event *ScrapeRequestedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
