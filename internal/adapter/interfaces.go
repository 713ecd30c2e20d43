// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP clients the consumer talks through.
//
// [RemoteInvoker] is the outbound side of a route pipeline: it sends an
// exchange body to a remote operation and can verify its own parameters
// before traffic arrives. [ControlAdapter] is the client half of the control
// API and backs the operator CLI.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrGatewayTimeout] for 504).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-http-consumer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteInvoker calls remote operations on behalf of a pipeline.
type RemoteInvoker interface {
	// Invoke sends call.Payload to call.Operation and returns the remote
	// status and body. Non-2xx responses are returned as mapped errors.
	Invoke(ctx context.Context, call models.RemoteCall) (models.RemoteResult, error)

	// Verify checks params at the requested scope. It never returns an
	// error; every problem is listed in the result.
	Verify(ctx context.Context, scope models.VerificationScope, params models.RemoteParams) models.VerificationResult
}

// ControlAdapter drives a running consumer through its control API.
type ControlAdapter interface {
	// State returns the current listener status.
	State(ctx context.Context) (models.ListenerStatus, error)

	// Suspend suspends the listener and returns the suspend token.
	Suspend(ctx context.Context) (uint64, error)

	// Resume resumes the listener. token must be the one returned by the
	// latest Suspend.
	Resume(ctx context.Context, token uint64) error

	// Stop stops the listener. A zero timeout lets the server use its
	// configured default. On a drain timeout the partial result is returned
	// together with an error wrapping [ErrGatewayTimeout].
	Stop(ctx context.Context, timeout time.Duration) (models.DrainResult, error)

	// Verify asks the server to verify its remote adapter parameters.
	Verify(ctx context.Context, scope models.VerificationScope) (models.VerificationResult, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
