package models

import "time"

// Request is one decoded inbound message handed from the listener to a
// route pipeline. It is produced once per accepted HTTP request and consumed
// exactly once by the dispatcher.
type Request struct {
	// CorrelationID ties the request to its response and to every log
	// line emitted while processing it.
	CorrelationID string `json:"correlation_id"`

	// RouteID is the identifier of the route that accepted the request.
	RouteID string `json:"route_id"`

	// Method and Path are copied from the HTTP request line.
	Method string `json:"method"`
	Path   string `json:"path"`

	// Payload is the raw request body.
	Payload []byte `json:"payload,omitempty"`

	// ContentType is the value of the Content-Type header, possibly empty.
	ContentType string `json:"content_type,omitempty"`

	ReceivedAt time.Time `json:"received_at"`
}

// Response is the single reply written for a Request.
type Response struct {
	StatusCode  int    `json:"status_code"`
	Payload     []byte `json:"payload,omitempty"`
	ContentType string `json:"content_type,omitempty"`

	// Close asks the transport to close the connection after the response
	// has been written.
	Close bool `json:"close,omitempty"`
}

// StatusClass is the coarse class of a response status code.
type StatusClass int

const (
	StatusClassSuccess StatusClass = iota
	StatusClassClientError
	StatusClassServerError
)

// String implements fmt.Stringer.
func (c StatusClass) String() string {
	switch c {
	case StatusClassSuccess:
		return "success"
	case StatusClassClientError:
		return "client_error"
	default:
		return "server_error"
	}
}

// Class reports the status class of r. Informational and redirect codes are
// counted as success.
func (r Response) Class() StatusClass {
	switch {
	case r.StatusCode >= 500:
		return StatusClassServerError
	case r.StatusCode >= 400:
		return StatusClassClientError
	default:
		return StatusClassSuccess
	}
}

// ExchangeRecord is the persisted form of a processed exchange.
type ExchangeRecord struct {
	ID            string    `json:"id"`
	RouteID       string    `json:"route_id"`
	CorrelationID string    `json:"correlation_id"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
}
