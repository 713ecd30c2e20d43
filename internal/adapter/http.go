package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-http-consumer/internal/config"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/internal/utils"
	"github.com/MKhiriev/go-http-consumer/models"
	"github.com/go-resty/resty/v2"
)

const (
	headerCorrelationID = "X-Correlation-ID"
	headerRegion        = "X-Region"
)

type httpRemoteInvoker struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRemoteInvoker constructs an HTTP implementation of [RemoteInvoker].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteInvoker(cfg config.Adapter, logger *logger.Logger) (RemoteInvoker, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpRemoteInvoker{client: client, logger: logger}, nil
}

// ParamsFromConfig collects the remote parameters held in cfg.
func ParamsFromConfig(cfg config.Adapter) models.RemoteParams {
	return models.RemoteParams{
		models.ParamAccessKey: cfg.AccessKey,
		models.ParamSecretKey: cfg.SecretKey,
		models.ParamRegion:    cfg.Region,
		models.ParamOperation: cfg.Operation,
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Invoke implements [RemoteInvoker]. It POSTs call.Payload to
// POST /{operation}. Credentials travel as basic auth and the region as the
// X-Region header.
func (h *httpRemoteInvoker) Invoke(ctx context.Context, call models.RemoteCall) (models.RemoteResult, error) {
	log := logger.FromContext(ctx)

	resp, err := h.request(ctx, call.Params).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader(headerCorrelationID, call.CorrelationID).
		SetBody(call.Payload).
		Post("/" + url.PathEscape(call.Operation))
	if err != nil {
		log.Err(err).Str("func", "*httpRemoteInvoker.Invoke").Str("operation", call.Operation).Msg("remote request failed")
		return models.RemoteResult{}, fmt.Errorf("invoke %s request: %w", call.Operation, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpRemoteInvoker.Invoke").Str("operation", call.Operation).Msg("remote call rejected")
		return models.RemoteResult{}, err
	}

	return models.RemoteResult{StatusCode: resp.StatusCode(), Payload: resp.Body()}, nil
}

// Verify implements [RemoteInvoker].
//
// PARAMETERS only checks that every required parameter is present.
// CONNECTIVITY additionally requires a known region and a successful probe
// of the configured operation.
func (h *httpRemoteInvoker) Verify(ctx context.Context, scope models.VerificationScope, params models.RemoteParams) models.VerificationResult {
	result := models.VerificationResult{Scope: scope, Status: models.VerificationOK}

	switch scope {
	case models.ScopeParameters, models.ScopeConnectivity:
	default:
		result.Status = models.VerificationUnsupported
		result.Errors = []string{fmt.Sprintf("%s: %q", ErrUnsupportedScope, scope)}
		return result
	}

	result.Errors = missingParams(params)
	if scope == models.ScopeConnectivity && len(result.Errors) == 0 {
		if !KnownRegion(params[models.ParamRegion]) {
			result.Errors = append(result.Errors, fmt.Sprintf("unknown region %q", params[models.ParamRegion]))
		} else if err := h.probe(ctx, params); err != nil {
			result.Errors = append(result.Errors, err.Error())
		}
	}

	if len(result.Errors) > 0 {
		result.Status = models.VerificationError
		h.logger.Warn().
			Str("scope", string(scope)).
			Strs("errors", result.Errors).
			Msg("remote parameters verification failed")
	}

	return result
}

func (h *httpRemoteInvoker) probe(ctx context.Context, params models.RemoteParams) error {
	operation := params[models.ParamOperation]

	resp, err := h.request(ctx, params).Head("/" + url.PathEscape(operation))
	if err != nil {
		return fmt.Errorf("probe %s request: %w", operation, err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteInvoker) request(ctx context.Context, params models.RemoteParams) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if ak := params[models.ParamAccessKey]; ak != "" {
		req.SetBasicAuth(ak, params[models.ParamSecretKey])
	}
	if region := params[models.ParamRegion]; region != "" {
		req.SetHeader(headerRegion, NormalizeRegion(region))
	}
	return req
}

func missingParams(params models.RemoteParams) []string {
	var errs []string
	for _, name := range []string{
		models.ParamAccessKey,
		models.ParamSecretKey,
		models.ParamRegion,
		models.ParamOperation,
	} {
		if strings.TrimSpace(params[name]) == "" {
			errs = append(errs, fmt.Sprintf("missing parameter %q", name))
		}
	}
	return errs
}
