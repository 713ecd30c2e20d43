package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-http-consumer/internal/config"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/models"
)

type listenerService struct {
	controller     ListenerController
	defaultTimeout time.Duration

	logger *logger.Logger
}

func NewListenerService(controller ListenerController, cfg config.Listener, logger *logger.Logger) (ListenerService, error) {
	if controller == nil {
		return nil, ErrNoListener
	}

	return &listenerService{
		controller:     controller,
		defaultTimeout: cfg.ShutdownTimeout,
		logger:         logger,
	}, nil
}

func (s *listenerService) Status(ctx context.Context) models.ListenerStatus {
	return s.controller.Status()
}

func (s *listenerService) Suspend(ctx context.Context) (models.SuspendResponse, error) {
	log := logger.FromContext(ctx)

	token, err := s.controller.Suspend()
	if err != nil {
		log.Err(err).Str("func", "*listenerService.Suspend").Msg("suspend rejected")
		return models.SuspendResponse{}, err
	}

	log.Info().Uint64("token", token).Msg("listener suspended via control api")
	return models.SuspendResponse{Token: token}, nil
}

func (s *listenerService) Resume(ctx context.Context, req models.ResumeRequest) error {
	log := logger.FromContext(ctx)

	if err := s.controller.Resume(req.Token); err != nil {
		log.Err(err).Str("func", "*listenerService.Resume").Uint64("token", req.Token).Msg("resume rejected")
		return err
	}

	log.Info().Uint64("token", req.Token).Msg("listener resumed via control api")
	return nil
}

func (s *listenerService) Stop(ctx context.Context, req models.StopRequest) (models.DrainResult, error) {
	log := logger.FromContext(ctx)

	timeout := s.defaultTimeout
	if req.Timeout != "" {
		d, err := time.ParseDuration(req.Timeout)
		if err != nil {
			return models.DrainResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		timeout = d
	}

	log.Info().Dur("timeout", timeout).Msg("stopping listener via control api")
	result, err := s.controller.Stop(timeout)
	if err != nil {
		log.Err(err).Str("func", "*listenerService.Stop").Int("remaining", result.Remaining).Msg("stop finished with error")
		return result, err
	}

	return result, nil
}
