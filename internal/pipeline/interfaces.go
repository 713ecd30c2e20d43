package pipeline

import (
	"context"

	"github.com/MKhiriev/go-http-consumer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/pipeline_mock.go -package=mock

// ExchangeRecorder persists one row per exchange.
type ExchangeRecorder interface {
	SaveExchange(ctx context.Context, record models.ExchangeRecord) error
}

// RemoteCaller invokes a remote operation.
type RemoteCaller interface {
	Invoke(ctx context.Context, call models.RemoteCall) (models.RemoteResult, error)
}
