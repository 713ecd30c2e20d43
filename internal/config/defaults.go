package config

import "time"

const (
	defaultListenerAddress = "127.0.0.1:8080"
	defaultRouteID         = "consumer"
	defaultRoutePath       = "/"
	defaultMaxBodyBytes    = 1 << 20
	defaultShutdownTimeout = 30 * time.Second

	defaultControlAddress = "127.0.0.1:8081"
	defaultRequestTimeout = 15 * time.Second

	defaultAdapterTimeout = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Listener: Listener{
			Address:         defaultListenerAddress,
			RouteID:         defaultRouteID,
			RoutePath:       defaultRoutePath,
			MaxBodyBytes:    defaultMaxBodyBytes,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Server: Server{
			HTTPAddress:    defaultControlAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultAdapterTimeout,
		},
	}
}
