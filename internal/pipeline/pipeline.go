package pipeline

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/models"
)

// CompletionFunc runs after an exchange finished successfully. It receives a
// copy of the exchange.
type CompletionFunc func(ctx context.Context, ex Exchange)

// FailureFunc runs after a processor aborted an exchange.
type FailureFunc func(ctx context.Context, ex Exchange, err error)

// Pipeline applies processors in order. The first failing processor aborts
// the exchange.
type Pipeline struct {
	routeID    string
	processors []Processor
	onComplete []CompletionFunc
	onFailure  []FailureFunc
	log        *logger.Logger
}

// New returns a pipeline for routeID.
func New(routeID string, log *logger.Logger, processors ...Processor) *Pipeline {
	return &Pipeline{
		routeID:    routeID,
		processors: processors,
		log:        log.ForRoute(routeID),
	}
}

// OnCompletion registers fn to run after every successful exchange.
// Callbacks cannot change the response; their panics are logged.
func (p *Pipeline) OnCompletion(fn CompletionFunc) *Pipeline {
	p.onComplete = append(p.onComplete, fn)
	return p
}

// OnFailure registers fn to run after every failed exchange.
func (p *Pipeline) OnFailure(fn FailureFunc) *Pipeline {
	p.onFailure = append(p.onFailure, fn)
	return p
}

// Invoke runs req through the pipeline.
func (p *Pipeline) Invoke(ctx context.Context, req models.Request) (models.Response, error) {
	ex := newExchange(req)

	for i, proc := range p.processors {
		if err := proc.Process(ctx, ex); err != nil {
			err = fmt.Errorf("%w: route %s step %d: %w", ErrProcessorFailed, p.routeID, i, err)
			p.failed(ctx, ex, err)
			return models.Response{}, err
		}
	}

	p.completed(ctx, ex)
	return ex.Response(), nil
}

func (p *Pipeline) completed(ctx context.Context, ex *Exchange) {
	for _, fn := range p.onComplete {
		snap := ex.snapshot()
		p.safely(func() { fn(ctx, snap) })
	}
}

func (p *Pipeline) failed(ctx context.Context, ex *Exchange, err error) {
	for _, fn := range p.onFailure {
		snap := ex.snapshot()
		p.safely(func() { fn(ctx, snap, err) })
	}
}

func (p *Pipeline) safely(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Str("func", "*Pipeline.safely").Msg("completion callback panicked")
		}
	}()
	fn()
}
