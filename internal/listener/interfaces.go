package listener

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-http-consumer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/listener_mock.go -package=mock

// Pipeline processes one decoded request. Implementations must not retain
// req after returning.
type Pipeline interface {
	Invoke(ctx context.Context, req models.Request) (models.Response, error)
}

// Codec converts between the HTTP wire form and the listener's request and
// response values.
type Codec interface {
	// Decode reads r into a Request for the given route. Errors wrap
	// ErrDecode.
	Decode(r *http.Request, routeID string) (models.Request, error)
	// Encode writes resp to w.
	Encode(w http.ResponseWriter, resp models.Response) error
}

// Metrics receives dispatch and lifecycle observations.
type Metrics interface {
	ObserveDispatch(routeID, outcome string, elapsed time.Duration)
	SetInFlight(n int)
	SetState(state string)
}
