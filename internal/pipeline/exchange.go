package pipeline

import (
	"maps"
	"net/http"

	"github.com/MKhiriev/go-http-consumer/models"
)

// Exchange is the mutable state a request accumulates while it moves
// through a pipeline.
type Exchange struct {
	// Request is the original request. Processors must not modify it.
	Request models.Request

	Body        []byte
	ContentType string
	StatusCode  int

	properties map[string]any
}

func newExchange(req models.Request) *Exchange {
	return &Exchange{
		Request:     req,
		Body:        req.Payload,
		ContentType: req.ContentType,
		StatusCode:  http.StatusOK,
		properties:  make(map[string]any),
	}
}

// SetProperty stores a value for later processors and callbacks.
func (e *Exchange) SetProperty(key string, value any) {
	e.properties[key] = value
}

// Property returns a value stored with SetProperty.
func (e *Exchange) Property(key string) (any, bool) {
	v, ok := e.properties[key]
	return v, ok
}

// Response builds the reply for the exchange.
func (e *Exchange) Response() models.Response {
	return models.Response{
		StatusCode:  e.StatusCode,
		Payload:     e.Body,
		ContentType: e.ContentType,
	}
}

func (e *Exchange) snapshot() Exchange {
	cp := *e
	cp.Body = append([]byte(nil), e.Body...)
	cp.properties = maps.Clone(e.properties)
	return cp
}
