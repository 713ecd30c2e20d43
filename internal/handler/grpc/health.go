package grpc

import (
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-http-consumer/internal/listener"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
)

// HealthReporter mirrors the listener state into the standard gRPC health
// service. Every route ID is a service name and "" stands for the whole
// process. Only RUNNING reports SERVING.
type HealthReporter struct {
	server   *health.Server
	services []string

	logger *logger.Logger
}

// NewHealthReporter creates a reporter for routeIDs. All services start as
// NOT_SERVING until [HealthReporter.Sync] or a state transition says
// otherwise.
func NewHealthReporter(routeIDs []string, logger *logger.Logger) *HealthReporter {
	r := &HealthReporter{
		server:   health.NewServer(),
		services: append([]string{""}, routeIDs...),
		logger:   logger,
	}
	r.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return r
}

// Observe is a [listener.StateObserver].
func (r *HealthReporter) Observe(_, to listener.State) {
	r.Sync(to)
}

// Sync publishes the status that corresponds to state.
func (r *HealthReporter) Sync(state listener.State) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if state == listener.StateRunning {
		status = healthpb.HealthCheckResponse_SERVING
	}
	r.set(status)
	r.logger.Debug().Stringer("state", state).Stringer("health", status).Msg("health status updated")
}

// Shutdown marks every service NOT_SERVING and ignores further updates.
func (r *HealthReporter) Shutdown() {
	r.server.Shutdown()
}

// Server returns the health service implementation to register.
func (r *HealthReporter) Server() healthpb.HealthServer {
	return r.server
}

func (r *HealthReporter) set(status healthpb.HealthCheckResponse_ServingStatus) {
	for _, name := range r.services {
		r.server.SetServingStatus(name, status)
	}
}
