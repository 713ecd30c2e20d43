// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged [StructuredConfig] is usable at startup.
func (cfg *StructuredConfig) validate() error {
	l := cfg.Listener
	if l.Address == "" || l.RouteID == "" || !strings.HasPrefix(l.RoutePath, "/") {
		return fmt.Errorf("%w: address, route id and a rooted route path are required", ErrInvalidListenerConfigs)
	}
	if l.ShutdownTimeout <= 0 || l.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: shutdown timeout and max body bytes must be positive", ErrInvalidListenerConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.HTTPAddress != "" && (cfg.Adapter.Operation == "" || cfg.Adapter.RequestTimeout <= 0) {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.StatsInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
