package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidListenerConfigs indicates invalid consumer endpoint settings
	// (for example, a route path without a leading slash).
	ErrInvalidListenerConfigs = errors.New("invalid listener configuration")
	// ErrInvalidServerConfigs indicates a missing control address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, an address without an operation).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
