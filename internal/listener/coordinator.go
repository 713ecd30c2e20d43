package listener

import (
	"time"

	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/models"
)

// ShutdownCoordinator waits for in-flight requests to finish. It never
// cancels them.
type ShutdownCoordinator struct {
	inflight *InFlightSet
	log      *logger.Logger
}

// NewShutdownCoordinator returns a coordinator draining inflight.
func NewShutdownCoordinator(inflight *InFlightSet, log *logger.Logger) *ShutdownCoordinator {
	return &ShutdownCoordinator{inflight: inflight, log: log}
}

// Drain blocks until the in-flight set is empty or timeout elapses,
// whichever comes first. A non-positive timeout checks once.
func (c *ShutdownCoordinator) Drain(timeout time.Duration) models.DrainResult {
	if timeout <= 0 {
		return c.result()
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-c.inflight.Idle():
			// a request may have been added after the channel was closed
			if c.inflight.Len() == 0 {
				return models.DrainResult{Completed: true}
			}
		case <-timer.C:
			res := c.result()
			if !res.Completed {
				c.log.Warn().
					Int("remaining", res.Remaining).
					Strs("correlation_ids", c.inflight.CorrelationIDs()).
					Dur("timeout", timeout).
					Msg("drain deadline reached")
			}
			return res
		}
	}
}

func (c *ShutdownCoordinator) result() models.DrainResult {
	n := c.inflight.Len()
	return models.DrainResult{Completed: n == 0, Remaining: n}
}
