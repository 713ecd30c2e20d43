package listener

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/models"
)

// Dispatch outcomes reported to [Metrics].
const (
	OutcomeProcessed     = "processed"
	OutcomeRejected      = "rejected"
	OutcomeDecodeError   = "decode_error"
	OutcomePipelineError = "pipeline_error"
)

// Dispatcher serves one route. Every request gets exactly one response and
// is removed from the in-flight set once that response has been written.
type Dispatcher struct {
	route    Route
	state    *atomicState
	inflight *InFlightSet
	codec    Codec
	metrics  Metrics
	log      *logger.Logger
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := d.codec.Decode(r, d.route.ID)
	if err != nil {
		d.log.Warn().Err(err).Str("func", "*Dispatcher.ServeHTTP").Msg("rejecting undecodable request")
		d.write(w, "", decodeErrorResponse(err), OutcomeDecodeError, start)
		return
	}

	ticket := d.inflight.Add(req.CorrelationID)
	d.metrics.SetInFlight(d.inflight.Len())
	defer func() {
		d.inflight.Remove(ticket)
		d.metrics.SetInFlight(d.inflight.Len())
	}()

	resp, outcome := d.handle(r.Context(), req)
	d.write(w, req.CorrelationID, resp, outcome, start)
}

func (d *Dispatcher) handle(ctx context.Context, req models.Request) (models.Response, string) {
	if st := d.state.Load(); !st.AcceptsWork() {
		d.log.Debug().
			Str("correlation_id", req.CorrelationID).
			Stringer("state", st).
			Msg("request rejected")
		return unavailableResponse(), OutcomeRejected
	}

	resp, err := d.invoke(ctx, req)
	if err != nil {
		d.log.Err(err).
			Str("func", "*Dispatcher.handle").
			Str("correlation_id", req.CorrelationID).
			Msg("pipeline failed")
		return internalErrorResponse(), OutcomePipelineError
	}

	return resp, OutcomeProcessed
}

// invoke runs the pipeline detached from the client connection so that a
// disconnect or a stop never cancels in-flight work.
func (d *Dispatcher) invoke(ctx context.Context, req models.Request) (resp models.Response, err error) {
	defer func() {
		if p := recover(); p != nil {
			resp, err = models.Response{}, fmt.Errorf("%w: panic: %v", ErrPipeline, p)
		}
	}()

	resp, err = d.route.Pipeline.Invoke(context.WithoutCancel(ctx), req)
	if err != nil {
		return models.Response{}, fmt.Errorf("%w: %w", ErrPipeline, err)
	}
	if resp.StatusCode == 0 {
		resp.StatusCode = http.StatusOK
	}

	return resp, nil
}

func (d *Dispatcher) write(w http.ResponseWriter, correlationID string, resp models.Response, outcome string, start time.Time) {
	if correlationID != "" {
		w.Header().Set(HeaderCorrelationID, correlationID)
	}
	if err := d.codec.Encode(w, resp); err != nil {
		d.log.Err(err).
			Str("func", "*Dispatcher.write").
			Str("correlation_id", correlationID).
			Msg("failed to write response")
	}
	// the response must reach the socket before the request leaves the
	// in-flight set, or a concurrent stop could close the connection first
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	d.metrics.ObserveDispatch(d.route.ID, outcome, time.Since(start))
}

func unavailableResponse() models.Response {
	return models.Response{
		StatusCode: http.StatusServiceUnavailable,
		Payload:    []byte(http.StatusText(http.StatusServiceUnavailable)),
		Close:      true,
	}
}

func internalErrorResponse() models.Response {
	return models.Response{
		StatusCode: http.StatusInternalServerError,
		Payload:    []byte(http.StatusText(http.StatusInternalServerError)),
	}
}

func decodeErrorResponse(err error) models.Response {
	status := http.StatusBadRequest
	if !errors.Is(err, ErrDecode) {
		status = http.StatusInternalServerError
	}

	return models.Response{
		StatusCode: status,
		Payload:    []byte(http.StatusText(status)),
		Close:      true,
	}
}
