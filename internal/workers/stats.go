package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-http-consumer/internal/logger"
)

// StatsReporter periodically logs the listener status and, when persistence
// is enabled, the number of stored exchanges per route.
type StatsReporter struct {
	interval time.Duration
	status   StatusSource
	counter  ExchangeCounter
	routeIDs []string

	logger *logger.Logger
}

func NewStatsReporter(interval time.Duration, status StatusSource, counter ExchangeCounter, routeIDs []string, logger *logger.Logger) *StatsReporter {
	return &StatsReporter{
		interval: interval,
		status:   status,
		counter:  counter,
		routeIDs: routeIDs,
		logger:   logger,
	}
}

// Run starts the reporting loop. It stops when ctx is done.
func (s *StatsReporter) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.report(ctx)
			}
		}
	}()
}

func (s *StatsReporter) report(ctx context.Context) {
	st := s.status.Status()
	event := s.logger.Info().
		Str("state", st.State).
		Str("address", st.Address).
		Int("in_flight", st.InFlight)

	if s.counter != nil {
		counts := make(map[string]int, len(s.routeIDs))
		for _, id := range s.routeIDs {
			n, err := s.counter.CountExchanges(ctx, id)
			if err != nil {
				s.logger.Err(err).Str("func", "*StatsReporter.report").Str("route", id).Msg("failed to count exchanges")
				continue
			}
			counts[id] = n
		}
		event = event.Interface("exchanges", counts)
	}

	event.Msg("listener stats")
}
