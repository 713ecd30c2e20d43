package server

import (
	"context"
	"time"

	"github.com/MKhiriev/go-http-consumer/models"
)

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// Consumer is the started listener whose lifetime bounds the process.
type Consumer interface {
	// Done is closed once the listener reaches STOPPED.
	Done() <-chan struct{}

	// Stop drains in-flight requests for at most timeout.
	Stop(timeout time.Duration) (models.DrainResult, error)
}

// transport is one control API server run under the server's errgroup.
type transport interface {
	serve() error
	shutdown(ctx context.Context) error
	name() string
}
