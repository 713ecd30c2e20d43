package pipeline

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/internal/mock"
	"github.com/MKhiriev/go-http-consumer/models"
)

func request(body string) models.Request {
	return models.Request{
		CorrelationID: "corr-1",
		RouteID:       "foo",
		Payload:       []byte(body),
		ContentType:   "text/plain",
	}
}

// ── Invoke ────────────────────────────────────────────────────────────────────

func TestInvoke_PrependBody(t *testing.T) {
	p := New("foo", logger.Nop(), PrependBody("Bye "))

	resp, err := p.Invoke(context.Background(), request("World"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bye World", string(resp.Payload))
	assert.Equal(t, "text/plain", resp.ContentType)
}

func TestInvoke_NoProcessorsEchoes(t *testing.T) {
	resp, err := New("foo", logger.Nop()).Invoke(context.Background(), request("Moon"))
	require.NoError(t, err)
	assert.Equal(t, "Moon", string(resp.Payload))
}

func TestInvoke_ProcessorsRunInOrder(t *testing.T) {
	p := New("foo", logger.Nop(),
		PrependBody("b"),
		PrependBody("a"),
		Transform(func(body []byte) ([]byte, error) { return append(body, '!'), nil }),
	)

	resp, err := p.Invoke(context.Background(), request("c"))
	require.NoError(t, err)
	assert.Equal(t, "abc!", string(resp.Payload))
}

func TestInvoke_DoesNotMutateRequestPayload(t *testing.T) {
	req := request("World")
	_, err := New("foo", logger.Nop(), PrependBody("Bye ")).Invoke(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "World", string(req.Payload))
}

func TestInvoke_FailureStopsChain(t *testing.T) {
	boom := errors.New("boom")
	var reached bool

	p := New("foo", logger.Nop(),
		Transform(func([]byte) ([]byte, error) { return nil, boom }),
		ProcessorFunc(func(context.Context, *Exchange) error {
			reached = true
			return nil
		}),
	)

	_, err := p.Invoke(context.Background(), request("x"))
	assert.ErrorIs(t, err, ErrProcessorFailed)
	assert.ErrorIs(t, err, boom)
	assert.False(t, reached)
}

// ── callbacks ─────────────────────────────────────────────────────────────────

func TestOnCompletion_RunsAfterSuccess(t *testing.T) {
	var completed []string
	var failed int

	p := New("foo", logger.Nop(), PrependBody("Bye ")).
		OnCompletion(func(_ context.Context, ex Exchange) {
			completed = append(completed, string(ex.Body))
		}).
		OnFailure(func(context.Context, Exchange, error) { failed++ })

	_, err := p.Invoke(context.Background(), request("World"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Bye World"}, completed)
	assert.Zero(t, failed)
}

func TestOnFailure_RunsAfterError(t *testing.T) {
	var completed int
	var failure error

	p := New("foo", logger.Nop(), Transform(func([]byte) ([]byte, error) { return nil, errors.New("bad") })).
		OnCompletion(func(context.Context, Exchange) { completed++ }).
		OnFailure(func(_ context.Context, _ Exchange, err error) { failure = err })

	_, err := p.Invoke(context.Background(), request("x"))
	require.Error(t, err)

	assert.Zero(t, completed)
	assert.ErrorIs(t, failure, ErrProcessorFailed)
}

func TestOnCompletion_CannotChangeResponse(t *testing.T) {
	p := New("foo", logger.Nop()).
		OnCompletion(func(_ context.Context, ex Exchange) {
			ex.Body[0] = 'X'
		}).
		OnCompletion(func(context.Context, Exchange) {
			panic("callback bug")
		})

	var resp models.Response
	var err error
	require.NotPanics(t, func() {
		resp, err = p.Invoke(context.Background(), request("abc"))
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", string(resp.Payload))
}

// ── Persist ───────────────────────────────────────────────────────────────────

func TestPersist_SavesRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mock.NewMockExchangeRecorder(ctrl)

	recorder.EXPECT().SaveExchange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.ExchangeRecord) error {
			assert.NotEmpty(t, rec.ID)
			assert.Equal(t, "foo", rec.RouteID)
			assert.Equal(t, "corr-1", rec.CorrelationID)
			assert.Equal(t, "Bye World", rec.Body)
			assert.False(t, rec.CreatedAt.IsZero())
			return nil
		})

	var exchangeID any
	p := New("foo", logger.Nop(), PrependBody("Bye "), Persist(recorder)).
		OnCompletion(func(_ context.Context, ex Exchange) {
			exchangeID, _ = ex.Property(PropertyExchangeID)
		})

	_, err := p.Invoke(context.Background(), request("World"))
	require.NoError(t, err)
	assert.NotEmpty(t, exchangeID)
}

func TestPersist_ErrorFailsExchange(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mock.NewMockExchangeRecorder(ctrl)
	dbErr := errors.New("db down")

	recorder.EXPECT().SaveExchange(gomock.Any(), gomock.Any()).Return(dbErr)

	_, err := New("foo", logger.Nop(), Persist(recorder)).Invoke(context.Background(), request("x"))
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorIs(t, err, ErrProcessorFailed)
}

// ── CallRemote ────────────────────────────────────────────────────────────────

func TestCallRemote_ReplacesBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := mock.NewMockRemoteCaller(ctrl)
	params := models.RemoteParams{models.ParamRegion: "eu-west-1"}

	caller.EXPECT().Invoke(gomock.Any(), models.RemoteCall{
		Operation:     "listClusters",
		Params:        params,
		CorrelationID: "corr-1",
		Payload:       []byte("World"),
	}).Return(models.RemoteResult{StatusCode: http.StatusOK, Payload: []byte(`["a"]`)}, nil)

	resp, err := New("foo", logger.Nop(), CallRemote(caller, "listClusters", params)).
		Invoke(context.Background(), request("World"))
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(resp.Payload))
}

func TestCallRemote_Errors(t *testing.T) {
	tests := []struct {
		name    string
		result  models.RemoteResult
		err     error
		wantErr error
	}{
		{"remote error", models.RemoteResult{}, assertErr, assertErr},
		{"empty payload", models.RemoteResult{StatusCode: http.StatusNoContent}, nil, ErrEmptyRemoteResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			caller := mock.NewMockRemoteCaller(ctrl)
			caller.EXPECT().Invoke(gomock.Any(), gomock.Any()).Return(tt.result, tt.err)

			_, err := New("foo", logger.Nop(), CallRemote(caller, "op", nil)).Invoke(context.Background(), request("x"))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

var assertErr = errors.New("remote unavailable")

// ── Build ─────────────────────────────────────────────────────────────────────

func TestBuild_AllSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := mock.NewMockRemoteCaller(ctrl)
	recorder := mock.NewMockExchangeRecorder(ctrl)

	gomock.InOrder(
		caller.EXPECT().Invoke(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, call models.RemoteCall) (models.RemoteResult, error) {
				assert.Equal(t, "Bye World", string(call.Payload))
				return models.RemoteResult{StatusCode: http.StatusOK, Payload: []byte("remote:Bye World")}, nil
			}),
		recorder.EXPECT().SaveExchange(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec models.ExchangeRecord) error {
				assert.Equal(t, "remote:Bye World", rec.Body)
				return nil
			}),
	)

	p := Build("foo", Options{
		BodyPrefix:      "Bye ",
		Remote:          caller,
		RemoteOperation: "echo",
		Recorder:        recorder,
	}, logger.Nop())

	resp, err := p.Invoke(context.Background(), request("World"))
	require.NoError(t, err)
	assert.Equal(t, "remote:Bye World", string(resp.Payload))
}

func TestBuild_PrefixOnly(t *testing.T) {
	p := Build("foo", Options{BodyPrefix: "Bye "}, logger.Nop())

	resp, err := p.Invoke(context.Background(), request("Moon"))
	require.NoError(t, err)
	assert.Equal(t, "Bye Moon", string(resp.Payload))
}
