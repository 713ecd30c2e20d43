package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-http-consumer/internal/listener"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/internal/mock"
	"github.com/MKhiriev/go-http-consumer/internal/service"
	"github.com/MKhiriev/go-http-consumer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stringsReader(s string) io.Reader {
	if s == "" {
		return nil
	}
	return strings.NewReader(s)
}

func newListenerHandler(t *testing.T) (*Handler, *mock.MockListenerService, *mock.MockAdapterService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	listenerSvc := mock.NewMockListenerService(ctrl)
	adapterSvc := mock.NewMockAdapterService(ctrl)

	h := NewHandler(&service.Services{
		ListenerService: listenerSvc,
		AdapterService:  adapterSvc,
	}, nil, logger.Nop())

	return h, listenerSvc, adapterSvc
}

func serve(h *Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, stringsReader(body))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// GET /api/listener/
// ─────────────────────────────────────────────

func TestGetListenerStatus(t *testing.T) {
	h, listenerSvc, _ := newListenerHandler(t)
	listenerSvc.EXPECT().Status(gomock.Any()).
		Return(models.ListenerStatus{State: "suspended", Address: "127.0.0.1:8080", InFlight: 1, SuspendToken: 2})

	rec := serve(h, http.MethodGet, "/api/listener/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.ListenerStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "suspended", got.State)
	assert.Equal(t, uint64(2), got.SuspendToken)
}

// ─────────────────────────────────────────────
// POST /api/listener/suspend
// ─────────────────────────────────────────────

func TestSuspendListener_Success(t *testing.T) {
	h, listenerSvc, _ := newListenerHandler(t)
	listenerSvc.EXPECT().Suspend(gomock.Any()).Return(models.SuspendResponse{Token: 4}, nil)

	rec := serve(h, http.MethodPost, "/api/listener/suspend", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":4}`, rec.Body.String())
}

func TestSuspendListener_InvalidState(t *testing.T) {
	h, listenerSvc, _ := newListenerHandler(t)
	listenerSvc.EXPECT().Suspend(gomock.Any()).
		Return(models.SuspendResponse{}, &listener.StateError{Op: "suspend", State: listener.StateSuspended})

	rec := serve(h, http.MethodPost, "/api/listener/suspend", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/listener/resume
// ─────────────────────────────────────────────

func TestResumeListener_Success(t *testing.T) {
	h, listenerSvc, _ := newListenerHandler(t)
	listenerSvc.EXPECT().Resume(gomock.Any(), models.ResumeRequest{Token: 4}).Return(nil)

	rec := serve(h, http.MethodPost, "/api/listener/resume", `{"token":4}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestResumeListener_StaleToken(t *testing.T) {
	h, listenerSvc, _ := newListenerHandler(t)
	listenerSvc.EXPECT().Resume(gomock.Any(), gomock.Any()).
		Return(&listener.StateError{Op: "resume", State: listener.StateSuspended, Err: listener.ErrStaleSuspendToken})

	rec := serve(h, http.MethodPost, "/api/listener/resume", `{"token":1}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestResumeListener_InvalidToken(t *testing.T) {
	h, listenerSvc, _ := newListenerHandler(t)
	listenerSvc.EXPECT().Resume(gomock.Any(), gomock.Any()).Return(service.ErrInvalidDataProvided)

	rec := serve(h, http.MethodPost, "/api/listener/resume", `{"token":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResumeListener_BadJSON(t *testing.T) {
	h, listenerSvc, _ := newListenerHandler(t)
	listenerSvc.EXPECT().Resume(gomock.Any(), gomock.Any()).Times(0)

	rec := serve(h, http.MethodPost, "/api/listener/resume", `{"token":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/listener/stop
// ─────────────────────────────────────────────

func TestStopListener_Completed(t *testing.T) {
	h, listenerSvc, _ := newListenerHandler(t)
	listenerSvc.EXPECT().Stop(gomock.Any(), models.StopRequest{Timeout: "5s"}).
		Return(models.DrainResult{Completed: true}, nil)

	rec := serve(h, http.MethodPost, "/api/listener/stop", `{"timeout":"5s"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"completed":true,"remaining":0}`, rec.Body.String())
}

func TestStopListener_EmptyBodyUsesDefault(t *testing.T) {
	h, listenerSvc, _ := newListenerHandler(t)
	listenerSvc.EXPECT().Stop(gomock.Any(), models.StopRequest{}).
		Return(models.DrainResult{Completed: true}, nil)

	rec := serve(h, http.MethodPost, "/api/listener/stop", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStopListener_TimedOut(t *testing.T) {
	h, listenerSvc, _ := newListenerHandler(t)
	listenerSvc.EXPECT().Stop(gomock.Any(), gomock.Any()).
		Return(models.DrainResult{Remaining: 3}, &listener.TimeoutError{Timeout: time.Second, Remaining: 3})

	rec := serve(h, http.MethodPost, "/api/listener/stop", `{"timeout":"1s"}`)

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.JSONEq(t, `{"completed":false,"remaining":3}`, rec.Body.String())
}

func TestStopListener_AlreadyStopped(t *testing.T) {
	h, listenerSvc, _ := newListenerHandler(t)
	listenerSvc.EXPECT().Stop(gomock.Any(), gomock.Any()).
		Return(models.DrainResult{}, &listener.StateError{Op: "stop", State: listener.StateStopped})

	rec := serve(h, http.MethodPost, "/api/listener/stop", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStopListener_BadJSON(t *testing.T) {
	h, listenerSvc, _ := newListenerHandler(t)
	listenerSvc.EXPECT().Stop(gomock.Any(), gomock.Any()).Times(0)

	rec := serve(h, http.MethodPost, "/api/listener/stop", `[`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/adapter/verify
// ─────────────────────────────────────────────

func TestVerifyAdapter(t *testing.T) {
	h, _, adapterSvc := newListenerHandler(t)
	adapterSvc.EXPECT().Verify(gomock.Any(), models.VerifyRequest{Scope: models.ScopeParameters}).
		Return(models.VerificationResult{Scope: models.ScopeParameters, Status: models.VerificationOK})

	rec := serve(h, http.MethodPost, "/api/adapter/verify", `{"scope":"PARAMETERS"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.VerificationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.VerificationOK, got.Status)
}

func TestVerifyAdapter_BadJSON(t *testing.T) {
	h, _, adapterSvc := newListenerHandler(t)
	adapterSvc.EXPECT().Verify(gomock.Any(), gomock.Any()).Times(0)

	rec := serve(h, http.MethodPost, "/api/adapter/verify", `nope`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// statusFromError
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"invalid state", &listener.StateError{Op: "suspend", State: listener.StateStopped}, http.StatusConflict},
		{"stale token", &listener.StateError{Op: "resume", State: listener.StateSuspended, Err: listener.ErrStaleSuspendToken}, http.StatusConflict},
		{"timeout", &listener.TimeoutError{Timeout: time.Second, Remaining: 1}, http.StatusGatewayTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
