package service

import (
	"github.com/MKhiriev/go-http-consumer/internal/adapter"
	"github.com/MKhiriev/go-http-consumer/internal/config"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
)

type Services struct {
	ListenerService ListenerService
	AdapterService  AdapterService
	AppInfoService  AppInfoService
}

// NewServices wires the control-plane services. invoker may be nil when no
// remote adapter is configured.
func NewServices(controller ListenerController, invoker adapter.RemoteInvoker, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	listenerService, err := NewListenerService(controller, cfg.Listener, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ListenerService: NewListenerValidationService().Wrap(listenerService),
		AdapterService:  NewAdapterService(invoker, adapter.ParamsFromConfig(cfg.Adapter), logger),
		AppInfoService:  appInfoService,
	}, nil
}
