package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-http-consumer/models"
)

// ListenerController is the lifecycle surface of a started listener.
// *listener.Handle satisfies it.
type ListenerController interface {
	Status() models.ListenerStatus
	Suspend() (uint64, error)
	Resume(token uint64) error
	Stop(timeout time.Duration) (models.DrainResult, error)
}

// ListenerService exposes listener lifecycle operations to the control API.
type ListenerService interface {
	Status(ctx context.Context) models.ListenerStatus
	Suspend(ctx context.Context) (models.SuspendResponse, error)
	Resume(ctx context.Context, req models.ResumeRequest) error
	// Stop drains the listener. An empty req.Timeout selects the configured
	// shutdown timeout.
	Stop(ctx context.Context, req models.StopRequest) (models.DrainResult, error)
}

// AdapterService verifies the remote adapter parameters.
type AdapterService interface {
	Verify(ctx context.Context, req models.VerifyRequest) models.VerificationResult
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
