package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Callers
// should use [errors.Is] to match against these values.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
)

var (
	// ErrEmptyAddress is returned when an adapter is built without an
	// endpoint address.
	ErrEmptyAddress = errors.New("empty address")

	// ErrUnsupportedScope is reported for a verification scope other than
	// PARAMETERS or CONNECTIVITY.
	ErrUnsupportedScope = errors.New("unsupported verification scope")
)
