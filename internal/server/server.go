package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-http-consumer/internal/config"
	"github.com/MKhiriev/go-http-consumer/internal/handler"
	"github.com/MKhiriev/go-http-consumer/internal/listener"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
)

const controlShutdownTimeout = 5 * time.Second

type server struct {
	transports []transport
	consumer   Consumer

	shutdownTimeout time.Duration
	logger          *logger.Logger

	quit     chan struct{}
	quitOnce sync.Once
}

// NewServer builds the control API servers enabled in cfg. The process runs
// until consumer reports Done or a termination signal arrives.
func NewServer(handlers *handler.Handlers, consumer Consumer, cfg *config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		consumer:        consumer,
		shutdownTimeout: cfg.Listener.ShutdownTimeout,
		logger:          logger,
		quit:            make(chan struct{}),
	}

	if cfg.Server.HTTPAddress != "" && handlers.HTTP != nil {
		servers.transports = append(servers.transports, newHTTPServer(handlers.HTTP.Init(), cfg.Server, logger))
	}
	if cfg.Server.GRPCAddress != "" && handlers.GRPC != nil {
		servers.transports = append(servers.transports, newGRPCServer(handlers.GRPC, cfg.Server, logger))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(context.Background()); err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Msg("error running server")
	}
}

// Shutdown requests the same sequence a termination signal triggers.
func (s *server) Shutdown() {
	s.quitOnce.Do(func() { close(s.quit) })
}

func (s *server) run(parent context.Context) error {
	// check if any server was created
	if len(s.transports) == 0 {
		return errNoServersAreCreated
	}

	sigCtx, stop := signal.NotifyContext(
		parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	g, gCtx := errgroup.WithContext(sigCtx)

	// launch all created servers
	for _, t := range s.transports {
		g.Go(t.serve)
	}

	g.Go(func() error {
		select {
		case <-s.consumer.Done():
			s.logger.Info().Msg("listener stopped, shutting down control servers")
		case <-s.quit:
			s.stopConsumer()
		case <-gCtx.Done():
			s.stopConsumer()
		}
		return s.shutdownTransports()
	})

	err := g.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) stopConsumer() {
	s.logger.Info().Dur("timeout", s.shutdownTimeout).Msg("stopping listener")
	result, err := s.consumer.Stop(s.shutdownTimeout)
	switch {
	case err == nil:
		s.logger.Info().Bool("completed", result.Completed).Msg("listener drained")
	case errors.Is(err, listener.ErrInvalidState):
		// stopped through the control API already
	default:
		s.logger.Err(err).Str("func", "*server.stopConsumer").
			Int("remaining", result.Remaining).
			Msg("listener drain did not complete")
	}
}

func (s *server) shutdownTransports() error {
	ctx, cancel := context.WithTimeout(context.Background(), controlShutdownTimeout)
	defer cancel()

	var errs []error
	for _, t := range s.transports {
		if err := t.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", t.name(), err))
		}
	}
	return errors.Join(errs...)
}
