package config

import (
	"flag"
	"fmt"
	"time"
)

// ClientAdapter holds the control API endpoint used by the operator CLI.
type ClientAdapter struct {
	// HTTPAddress is the control API address of the consumer.
	HTTPAddress string
	// RequestTimeout is the timeout for a single control call.
	RequestTimeout time.Duration
}

// ClientConfig is the operator CLI configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	// Args holds the positional arguments left after flag parsing, i.e. the
	// command and its operands.
	Args []string
}

// GetClientConfig builds and validates the CLI view of the merged
// structured configuration. The CLI talks to the server's control address.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Args: flag.CommandLine.Args(),
	}

	return clientCfg, clientCfg.validate()
}
