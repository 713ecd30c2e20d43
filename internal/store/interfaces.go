package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-http-consumer/models"
)

// ExchangeRepository persists processed exchanges.
type ExchangeRepository interface {
	// SaveExchange inserts one exchange row. A duplicate ID yields
	// [ErrExchangeAlreadyExists].
	SaveExchange(ctx context.Context, record models.ExchangeRecord) error

	// CountExchanges returns the number of rows stored for routeID.
	CountExchanges(ctx context.Context, routeID string) (int, error)
}

// ErrorClassificator decides whether a failed database call is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
