package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-http-consumer/internal/utils"
	"github.com/MKhiriev/go-http-consumer/models"
)

// Property keys set by the built-in processors.
const (
	PropertyExchangeID   = "exchange_id"
	PropertyRemoteStatus = "remote_status"
)

// Processor is one step of a pipeline.
type Processor interface {
	Process(ctx context.Context, ex *Exchange) error
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, ex *Exchange) error

func (f ProcessorFunc) Process(ctx context.Context, ex *Exchange) error {
	return f(ctx, ex)
}

// PrependBody puts prefix in front of the body.
func PrependBody(prefix string) Processor {
	return Transform(func(body []byte) ([]byte, error) {
		out := make([]byte, 0, len(prefix)+len(body))
		out = append(out, prefix...)
		return append(out, body...), nil
	})
}

// Transform replaces the body with fn(body).
func Transform(fn func(body []byte) ([]byte, error)) Processor {
	return ProcessorFunc(func(_ context.Context, ex *Exchange) error {
		body, err := fn(ex.Body)
		if err != nil {
			return err
		}
		ex.Body = body
		return nil
	})
}

// SetProperty stores a constant property on every exchange.
func SetProperty(key string, value any) Processor {
	return ProcessorFunc(func(_ context.Context, ex *Exchange) error {
		ex.SetProperty(key, value)
		return nil
	})
}

// Persist saves the current body as an exchange record and stores the new
// record ID under PropertyExchangeID.
func Persist(recorder ExchangeRecorder) Processor {
	idGen := utils.NewUUIDGenerator()

	return ProcessorFunc(func(ctx context.Context, ex *Exchange) error {
		record := models.ExchangeRecord{
			ID:            idGen.Generate(),
			RouteID:       ex.Request.RouteID,
			CorrelationID: ex.Request.CorrelationID,
			Body:          string(ex.Body),
			CreatedAt:     time.Now().UTC(),
		}
		if err := recorder.SaveExchange(ctx, record); err != nil {
			return fmt.Errorf("persist exchange: %w", err)
		}

		ex.SetProperty(PropertyExchangeID, record.ID)
		return nil
	})
}

// CallRemote sends the body to the remote operation and replaces it with
// the result payload.
func CallRemote(caller RemoteCaller, operation string, params models.RemoteParams) Processor {
	return ProcessorFunc(func(ctx context.Context, ex *Exchange) error {
		result, err := caller.Invoke(ctx, models.RemoteCall{
			Operation:     operation,
			Params:        params,
			CorrelationID: ex.Request.CorrelationID,
			Payload:       ex.Body,
		})
		if err != nil {
			return fmt.Errorf("call %s: %w", operation, err)
		}
		if len(result.Payload) == 0 {
			return fmt.Errorf("call %s: %w", operation, ErrEmptyRemoteResult)
		}

		ex.Body = result.Payload
		ex.SetProperty(PropertyRemoteStatus, result.StatusCode)
		return nil
	})
}
