// Package delivery defines the contract every transport entrypoint
// implements so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP, worker, ...).
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
