package pipeline

import (
	"context"

	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/models"
)

// Options selects the steps of a pipeline assembled by Build.
type Options struct {
	// BodyPrefix, when set, is prepended to the body first.
	BodyPrefix string

	// Remote, when set, is called with RemoteOperation and RemoteParams.
	Remote          RemoteCaller
	RemoteOperation string
	RemoteParams    models.RemoteParams

	// Recorder, when set, persists the final body.
	Recorder ExchangeRecorder
}

// Build assembles the standard consumer pipeline: prefix, remote call,
// persistence, in that order. Completed and failed exchanges are logged.
func Build(routeID string, opts Options, log *logger.Logger) *Pipeline {
	var steps []Processor
	if opts.BodyPrefix != "" {
		steps = append(steps, PrependBody(opts.BodyPrefix))
	}
	if opts.Remote != nil {
		steps = append(steps, CallRemote(opts.Remote, opts.RemoteOperation, opts.RemoteParams))
	}
	if opts.Recorder != nil {
		steps = append(steps, Persist(opts.Recorder))
	}

	p := New(routeID, log, steps...)
	p.OnCompletion(func(_ context.Context, ex Exchange) {
		id, _ := ex.Property(PropertyExchangeID)
		p.log.Debug().
			Str("correlation_id", ex.Request.CorrelationID).
			Interface("exchange_id", id).
			Int("bytes", len(ex.Body)).
			Msg("exchange completed")
	})
	p.OnFailure(func(_ context.Context, ex Exchange, err error) {
		p.log.Warn().Err(err).
			Str("correlation_id", ex.Request.CorrelationID).
			Msg("exchange failed")
	})

	return p
}
