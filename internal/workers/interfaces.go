// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-http-consumer/models"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Run must return promptly: long-running work belongs in a goroutine that
// exits when ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go func() {
//	        <-ctx.Done()
//	    }()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// StatusSource reports the current listener status.
type StatusSource interface {
	Status() models.ListenerStatus
}

// ExchangeCounter counts persisted exchanges of a route.
type ExchangeCounter interface {
	CountExchanges(ctx context.Context, routeID string) (int, error)
}
