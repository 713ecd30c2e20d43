package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-http-consumer/models"
)

const (
	FieldToken   = "token"
	FieldTimeout = "timeout"
	FieldScope   = "scope"
)

// MaxStopTimeout caps the drain a control request may ask for.
const MaxStopTimeout = 10 * time.Minute

type ControlRequestValidator struct {
}

func NewControlRequestValidator() Validator {
	return &ControlRequestValidator{}
}

func (v *ControlRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ResumeRequest:
		return v.validateResumeRequest(ctx, value, fields...)
	case *models.ResumeRequest:
		return v.validateResumeRequest(ctx, *value, fields...)

	case models.StopRequest:
		return v.validateStopRequest(ctx, value, fields...)
	case *models.StopRequest:
		return v.validateStopRequest(ctx, *value, fields...)

	case models.VerifyRequest:
		return v.validateVerifyRequest(ctx, value, fields...)
	case *models.VerifyRequest:
		return v.validateVerifyRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ControlRequestValidator) validateResumeRequest(ctx context.Context, request models.ResumeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if request.Token == 0 {
				return ErrInvalidSuspendToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// an empty timeout is allowed and means the configured default
func (v *ControlRequestValidator) validateStopRequest(ctx context.Context, request models.StopRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTimeout}
	}

	for _, f := range fields {
		switch f {
		case FieldTimeout:
			if request.Timeout == "" {
				continue
			}
			d, err := time.ParseDuration(request.Timeout)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidStopTimeout, err)
			}
			if d < 0 {
				return fmt.Errorf("%w: negative duration %s", ErrInvalidStopTimeout, d)
			}
			if d > MaxStopTimeout {
				return ErrStopTimeoutTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ControlRequestValidator) validateVerifyRequest(ctx context.Context, request models.VerifyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldScope}
	}

	for _, f := range fields {
		switch f {
		case FieldScope:
			if request.Scope == "" {
				return ErrEmptyScope
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
