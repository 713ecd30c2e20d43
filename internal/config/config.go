// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// consumer process. It is populated by merging values from environment
// variables, command-line flags, an optional JSON file and finally the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Listener holds the settings of the suspendable HTTP consumer: where it
	// binds, which route it serves and how long shutdown may take.
	Listener Listener `envPrefix:"LISTENER_"`

	// Server holds addresses of the control-plane HTTP API and the gRPC
	// health endpoint.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the exchange store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote operation endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Listener configures the consumer endpoint.
type Listener struct {
	// Address is the "host:port" the consumer binds to.
	// Env: LISTENER_ADDRESS
	Address string `env:"ADDRESS"`

	// RouteID identifies the route in logs, metrics and health checks.
	// Env: LISTENER_ROUTE_ID
	RouteID string `env:"ROUTE_ID"`

	// RoutePath is the URL path the route is mounted on. Must start with "/".
	// Env: LISTENER_ROUTE_PATH
	RoutePath string `env:"ROUTE_PATH"`

	// BodyPrefix is prepended to every request body by the route pipeline.
	// Env: LISTENER_BODY_PREFIX
	BodyPrefix string `env:"BODY_PREFIX"`

	// Disconnect closes the connection after every response.
	// Env: LISTENER_DISCONNECT
	Disconnect bool `env:"DISCONNECT"`

	// MaxBodyBytes caps the size of a request body; larger bodies are
	// rejected with 400.
	// Env: LISTENER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// ShutdownTimeout bounds how long a stop waits for in-flight requests.
	// Env: LISTENER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Server holds network and timeout settings for the control plane.
type Server struct {
	// HTTPAddress is the "host:port" of the control HTTP API.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" of the gRPC health endpoint. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single control API request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the exchange store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: "postgres://..." or "postgresql://..." opens
	// PostgreSQL, anything else is treated as a SQLite path. Empty disables
	// persistence.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter configures the remote operation invoked by the route pipeline.
// An empty HTTPAddress disables the remote step.
type Adapter struct {
	// HTTPAddress is the base URL or "host:port" of the remote endpoint.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single remote call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Operation, AccessKey, SecretKey and Region are passed to the remote
	// endpoint as call parameters.
	// Env: ADAPTER_OPERATION, ADAPTER_ACCESS_KEY, ADAPTER_SECRET_KEY, ADAPTER_REGION
	Operation string `env:"OPERATION"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Region    string `env:"REGION"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// StatsInterval is how often the stats reporter logs listener state.
	// Zero disables the reporter.
	// Env: WORKERS_STATS_INTERVAL
	StatsInterval time.Duration `env:"STATS_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration.
//
// Sources are merged in the following order; a field set by an earlier
// source is never overwritten by a later one:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
