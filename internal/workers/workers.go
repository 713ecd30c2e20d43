package workers

import (
	"context"

	"github.com/MKhiriev/go-http-consumer/internal/config"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by cfg. counter may be
// nil when persistence is disabled.
func NewWorkers(cfg config.Workers, status StatusSource, counter ExchangeCounter, routeIDs []string, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.StatsInterval > 0 {
		w.workers = append(w.workers, NewStatsReporter(cfg.StatsInterval, status, counter, routeIDs, logger))
	}
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
