package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-http-consumer/internal/validators"
	"github.com/MKhiriev/go-http-consumer/models"
)

// ListenerServiceWrapper defines middleware composition for ListenerService.
// Implementations wrap an existing ListenerService to add behavior such as
// logging or validating.
type ListenerServiceWrapper interface {
	Wrap(ListenerService) ListenerService // returns a decorated ListenerService applying additional behavior
}

type ListenerValidationService struct {
	inner     ListenerService
	validator validators.Validator
}

func NewListenerValidationService() ListenerServiceWrapper {
	return &ListenerValidationService{
		validator: validators.NewControlRequestValidator(),
	}
}

func (v *ListenerValidationService) Status(ctx context.Context) models.ListenerStatus {
	return v.inner.Status(ctx)
}

func (v *ListenerValidationService) Suspend(ctx context.Context) (models.SuspendResponse, error) {
	return v.inner.Suspend(ctx)
}

func (v *ListenerValidationService) Resume(ctx context.Context, req models.ResumeRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Resume(ctx, req)
}

func (v *ListenerValidationService) Stop(ctx context.Context, req models.StopRequest) (models.DrainResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DrainResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Stop(ctx, req)
}

func (v *ListenerValidationService) Wrap(wrapper ListenerService) ListenerService {
	v.inner = wrapper
	return v
}
