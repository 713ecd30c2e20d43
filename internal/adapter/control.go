package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-http-consumer/internal/config"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/internal/utils"
	"github.com/MKhiriev/go-http-consumer/models"
)

type httpControlAdapter struct {
	client  *utils.HTTPClient
	timeout time.Duration

	logger *logger.Logger
}

// NewHTTPControlAdapter constructs an HTTP implementation of
// [ControlAdapter] pointed at the consumer's control address.
//
// The request timeout is applied per call through the context so that Stop
// can wait for the drain it requested.
func NewHTTPControlAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ControlAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid control http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)

	return &httpControlAdapter{client: client, timeout: cfg.RequestTimeout, logger: logger}, nil
}

// State implements [ControlAdapter]. GET /api/listener/.
func (h *httpControlAdapter) State(ctx context.Context) (models.ListenerStatus, error) {
	ctx, cancel := h.withTimeout(ctx, h.timeout)
	defer cancel()

	var status models.ListenerStatus
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/listener/")
	if err != nil {
		return models.ListenerStatus{}, fmt.Errorf("state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ListenerStatus{}, err
	}

	return status, nil
}

// Suspend implements [ControlAdapter]. POST /api/listener/suspend.
func (h *httpControlAdapter) Suspend(ctx context.Context) (uint64, error) {
	ctx, cancel := h.withTimeout(ctx, h.timeout)
	defer cancel()

	var suspended models.SuspendResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&suspended).
		Post("/api/listener/suspend")
	if err != nil {
		return 0, fmt.Errorf("suspend request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return suspended.Token, nil
}

// Resume implements [ControlAdapter]. POST /api/listener/resume.
func (h *httpControlAdapter) Resume(ctx context.Context, token uint64) error {
	ctx, cancel := h.withTimeout(ctx, h.timeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ResumeRequest{Token: token}).
		Post("/api/listener/resume")
	if err != nil {
		return fmt.Errorf("resume request: %w", err)
	}

	return mapHTTPError(resp)
}

// Stop implements [ControlAdapter]. POST /api/listener/stop.
func (h *httpControlAdapter) Stop(ctx context.Context, timeout time.Duration) (models.DrainResult, error) {
	var body models.StopRequest
	if timeout > 0 {
		body.Timeout = timeout.String()
		var cancel context.CancelFunc
		ctx, cancel = h.withTimeout(ctx, h.timeout+timeout)
		defer cancel()
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/listener/stop")
	if err != nil {
		return models.DrainResult{}, fmt.Errorf("stop request: %w", err)
	}

	mapped := mapHTTPError(resp)
	if mapped != nil && resp.StatusCode() != http.StatusGatewayTimeout {
		return models.DrainResult{}, mapped
	}

	// 504 still carries the partial drain result
	var result models.DrainResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.DrainResult{}, errors.Join(mapped, fmt.Errorf("decode stop response: %w", err))
	}

	return result, mapped
}

// Verify implements [ControlAdapter]. POST /api/adapter/verify.
func (h *httpControlAdapter) Verify(ctx context.Context, scope models.VerificationScope) (models.VerificationResult, error) {
	ctx, cancel := h.withTimeout(ctx, h.timeout)
	defer cancel()

	var result models.VerificationResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.VerifyRequest{Scope: scope}).
		SetResult(&result).
		Post("/api/adapter/verify")
	if err != nil {
		return models.VerificationResult{}, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerificationResult{}, err
	}

	return result, nil
}

// Version implements [ControlAdapter]. GET /api/version/.
func (h *httpControlAdapter) Version(ctx context.Context) (string, error) {
	ctx, cancel := h.withTimeout(ctx, h.timeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpControlAdapter) withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
