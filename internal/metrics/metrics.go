// Package metrics exposes prometheus collectors for the consumer.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "consumer"

// States reported by the state gauge, in order.
var states = []string{"running", "suspended", "stopping", "stopped"}

// Metrics owns a private registry so tests and multiple instances do not
// collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	dispatchTotal    *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec
	inFlight         prometheus.Gauge
	state            *prometheus.GaugeVec

	register sync.Once
}

// New creates the collectors. They are registered on first use of Handler
// or Registry.
func New() *Metrics {
	return &Metrics{
		registry: prometheus.NewRegistry(),
		dispatchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Count of requests handled by the listener, by route and outcome.",
			},
			[]string{"route", "outcome"},
		),
		dispatchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Time from accepting a request to writing its response.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "outcome"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "in_flight_requests",
			Help:      "Requests accepted but not yet answered.",
		}),
		state: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "listener_state",
				Help:      "1 for the current listener state, 0 for the others.",
			},
			[]string{"state"},
		),
	}
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry {
	m.register.Do(func() {
		m.registry.MustRegister(m.dispatchTotal, m.dispatchDuration, m.inFlight, m.state)
	})
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})
}

// ObserveDispatch records one handled request.
func (m *Metrics) ObserveDispatch(routeID, outcome string, elapsed time.Duration) {
	m.dispatchTotal.WithLabelValues(routeID, outcome).Inc()
	m.dispatchDuration.WithLabelValues(routeID, outcome).Observe(elapsed.Seconds())
}

// SetInFlight records the in-flight count.
func (m *Metrics) SetInFlight(n int) {
	m.inFlight.Set(float64(n))
}

// SetState marks state as current.
func (m *Metrics) SetState(state string) {
	for _, s := range states {
		v := 0.0
		if s == state {
			v = 1
		}
		m.state.WithLabelValues(s).Set(v)
	}
}
