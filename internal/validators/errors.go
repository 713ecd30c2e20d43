package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSuspendToken = errors.New("suspend token must be positive")
	ErrInvalidStopTimeout  = errors.New("invalid stop timeout")
	ErrStopTimeoutTooLong  = errors.New("stop timeout exceeds the allowed maximum")
	ErrEmptyScope          = errors.New("verification scope is required")
)
