package handler

import (
	stdhttp "net/http"

	"github.com/MKhiriev/go-http-consumer/internal/config"
	"github.com/MKhiriev/go-http-consumer/internal/handler/grpc"
	"github.com/MKhiriev/go-http-consumer/internal/handler/http"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the control API handlers enabled by cfg. metrics may
// be nil, in which case /metrics is not served.
func NewHandlers(services *service.Services, metrics stdhttp.Handler, health *grpc.HealthReporter, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, metrics, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, health, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
