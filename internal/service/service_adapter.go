package service

import (
	"context"

	"github.com/MKhiriev/go-http-consumer/internal/adapter"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/internal/validators"
	"github.com/MKhiriev/go-http-consumer/models"
)

type adapterService struct {
	invoker   adapter.RemoteInvoker
	params    models.RemoteParams
	validator validators.Validator

	logger *logger.Logger
}

// NewAdapterService verifies params through invoker. A nil invoker means no
// remote step is configured and every verification is UNSUPPORTED.
func NewAdapterService(invoker adapter.RemoteInvoker, params models.RemoteParams, logger *logger.Logger) AdapterService {
	return &adapterService{
		invoker:   invoker,
		params:    params,
		validator: validators.NewControlRequestValidator(),
		logger:    logger,
	}
}

func (s *adapterService) Verify(ctx context.Context, req models.VerifyRequest) models.VerificationResult {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.VerificationResult{
			Scope:  req.Scope,
			Status: models.VerificationError,
			Errors: []string{err.Error()},
		}
	}

	if s.invoker == nil {
		return models.VerificationResult{
			Scope:  req.Scope,
			Status: models.VerificationUnsupported,
			Errors: []string{"no remote adapter configured"},
		}
	}

	result := s.invoker.Verify(ctx, req.Scope, s.params)
	logger.FromContext(ctx).Info().
		Str("scope", string(result.Scope)).
		Str("status", string(result.Status)).
		Msg("remote adapter verified")

	return result
}
