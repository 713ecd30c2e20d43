package server

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-http-consumer/internal/config"
	"github.com/MKhiriev/go-http-consumer/internal/handler"
	"github.com/MKhiriev/go-http-consumer/internal/handler/grpc"
	"github.com/MKhiriev/go-http-consumer/internal/listener"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/models"
)

// fakeConsumer closes done on the first Stop, like a real listener handle.
type fakeConsumer struct {
	done    chan struct{}
	stops   atomic.Int32
	timeout atomic.Int64
	err     error
}

func newFakeConsumer() *fakeConsumer {
	return &fakeConsumer{done: make(chan struct{})}
}

func (f *fakeConsumer) Done() <-chan struct{} { return f.done }

func (f *fakeConsumer) Stop(timeout time.Duration) (models.DrainResult, error) {
	f.timeout.Store(int64(timeout))
	if f.stops.Add(1) == 1 {
		close(f.done)
	}
	return models.DrainResult{Completed: f.err == nil}, f.err
}

func testConfig(httpAddr, grpcAddr string) *config.StructuredConfig {
	return &config.StructuredConfig{
		Listener: config.Listener{ShutdownTimeout: 3 * time.Second},
		Server:   config.Server{HTTPAddress: httpAddr, GRPCAddress: grpcAddr, RequestTimeout: time.Second},
	}
}

func newTestServer(t *testing.T, consumer Consumer, cfg *config.StructuredConfig) *server {
	t.Helper()
	health := grpc.NewHealthReporter([]string{"consumer"}, logger.Nop())
	handlers, err := handler.NewHandlers(nil, nil, health, cfg.Server, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, consumer, cfg, logger.Nop())
	require.NoError(t, err)
	return s.(*server)
}

func runAsync(s *server, ctx context.Context) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.run(ctx) }()
	return errCh
}

func waitRun(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
		return nil
	}
}

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, newFakeConsumer(), testConfig("", ""), logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_BothTransports(t *testing.T) {
	s := newTestServer(t, newFakeConsumer(), testConfig("127.0.0.1:0", "127.0.0.1:0"))

	require.Len(t, s.transports, 2)
	assert.Equal(t, "http", s.transports[0].name())
	assert.Equal(t, "grpc", s.transports[1].name())
}

func TestRun_ExitsWhenConsumerStops(t *testing.T) {
	consumer := newFakeConsumer()
	s := newTestServer(t, consumer, testConfig("127.0.0.1:0", "127.0.0.1:0"))

	errCh := runAsync(s, context.Background())
	close(consumer.done)

	assert.NoError(t, waitRun(t, errCh))
	assert.Zero(t, consumer.stops.Load(), "a stopped listener must not be stopped again")
}

func TestRun_ShutdownStopsConsumer(t *testing.T) {
	consumer := newFakeConsumer()
	s := newTestServer(t, consumer, testConfig("127.0.0.1:0", ""))

	errCh := runAsync(s, context.Background())
	s.Shutdown()
	s.Shutdown()

	assert.NoError(t, waitRun(t, errCh))
	assert.Equal(t, int32(1), consumer.stops.Load())
	assert.Equal(t, int64(3*time.Second), consumer.timeout.Load())
}

func TestRun_ParentCancelStopsConsumer(t *testing.T) {
	consumer := newFakeConsumer()
	s := newTestServer(t, consumer, testConfig("", "127.0.0.1:0"))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(s, ctx)
	cancel()

	assert.NoError(t, waitRun(t, errCh))
	assert.Equal(t, int32(1), consumer.stops.Load())
}

func TestRun_DrainTimeoutIsNotFatal(t *testing.T) {
	consumer := newFakeConsumer()
	consumer.err = listener.ErrShutdownTimeout
	s := newTestServer(t, consumer, testConfig("127.0.0.1:0", ""))

	errCh := runAsync(s, context.Background())
	s.Shutdown()

	assert.NoError(t, waitRun(t, errCh))
}

func TestRun_BindFailureStopsConsumer(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	consumer := newFakeConsumer()
	s := newTestServer(t, consumer, testConfig(busy.Addr().String(), ""))

	err = waitRun(t, runAsync(s, context.Background()))

	assert.Error(t, err)
	assert.Equal(t, int32(1), consumer.stops.Load())
}
