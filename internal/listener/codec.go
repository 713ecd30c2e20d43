package listener

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-http-consumer/internal/utils"
	"github.com/MKhiriev/go-http-consumer/models"
)

// HeaderCorrelationID carries the correlation ID on requests and responses.
const HeaderCorrelationID = "X-Correlation-ID"

const (
	defaultMaxBodyBytes = 1 << 20
	defaultContentType  = "text/plain; charset=utf-8"
)

// HTTPCodecConfig configures [HTTPCodec].
type HTTPCodecConfig struct {
	// MaxBodyBytes caps the accepted body size. Zero selects 1 MiB.
	MaxBodyBytes int64
	// Disconnect marks every response "Connection: close".
	Disconnect bool
}

// HTTPCodec is the default [Codec]: the body is the payload, the
// correlation ID travels in [HeaderCorrelationID].
type HTTPCodec struct {
	cfg   HTTPCodecConfig
	idGen *utils.UUIDGenerator
}

// NewHTTPCodec returns an HTTPCodec.
func NewHTTPCodec(cfg HTTPCodecConfig) *HTTPCodec {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}

	return &HTTPCodec{cfg: cfg, idGen: utils.NewUUIDGenerator()}
}

// Decode implements [Codec].
func (c *HTTPCodec) Decode(r *http.Request, routeID string) (models.Request, error) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, c.cfg.MaxBodyBytes+1))
	if err != nil {
		return models.Request{}, fmt.Errorf("%w: read body: %w", ErrDecode, err)
	}
	if int64(len(payload)) > c.cfg.MaxBodyBytes {
		return models.Request{}, fmt.Errorf("%w: body exceeds %d bytes", ErrDecode, c.cfg.MaxBodyBytes)
	}

	correlationID := r.Header.Get(HeaderCorrelationID)
	if correlationID == "" {
		correlationID = c.idGen.Generate()
	}

	return models.Request{
		CorrelationID: correlationID,
		RouteID:       routeID,
		Method:        r.Method,
		Path:          r.URL.Path,
		Payload:       payload,
		ContentType:   r.Header.Get("Content-Type"),
		ReceivedAt:    time.Now(),
	}, nil
}

// Encode implements [Codec].
func (c *HTTPCodec) Encode(w http.ResponseWriter, resp models.Response) error {
	contentType := resp.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(resp.Payload)))
	if resp.Close || c.cfg.Disconnect {
		w.Header().Set("Connection", "close")
	}

	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(resp.Payload); err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	return nil
}
