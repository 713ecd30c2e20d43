package grpc

import (
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/internal/service"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer, the health reporter and the
// structured logger so that gRPC services can delegate to them and emit
// consistent logs. A handler instance is created once at startup and shared
// by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// health publishes listener state through grpc.health.v1.Health.
	health *HealthReporter

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container,
// health reporter and logger, and returns the initialized instance.
func NewHandler(services *service.Services, health *HealthReporter, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health,
		logger:   logger,
	}
}

// Register attaches every gRPC service of the handler to s.
func (h *Handler) Register(s *grpc.Server) {
	if h.health != nil {
		healthpb.RegisterHealthServer(s, h.health.Server())
	}
}

// Shutdown flips the health service to NOT_SERVING before the server stops.
func (h *Handler) Shutdown() {
	if h.health != nil {
		h.health.Shutdown()
	}
}
