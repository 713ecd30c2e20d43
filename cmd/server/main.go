package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-http-consumer/internal/adapter"
	"github.com/MKhiriev/go-http-consumer/internal/config"
	"github.com/MKhiriev/go-http-consumer/internal/handler"
	"github.com/MKhiriev/go-http-consumer/internal/handler/grpc"
	"github.com/MKhiriev/go-http-consumer/internal/listener"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/internal/metrics"
	"github.com/MKhiriev/go-http-consumer/internal/pipeline"
	"github.com/MKhiriev/go-http-consumer/internal/server"
	"github.com/MKhiriev/go-http-consumer/internal/service"
	"github.com/MKhiriev/go-http-consumer/internal/store"
	"github.com/MKhiriev/go-http-consumer/internal/workers"
	"github.com/MKhiriev/go-http-consumer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-http-consumer")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	var invoker adapter.RemoteInvoker
	if cfg.Adapter.HTTPAddress != "" {
		invoker, err = adapter.NewHTTPRemoteInvoker(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating remote adapter")
		}
		result := invoker.Verify(ctx, models.ScopeParameters, adapter.ParamsFromConfig(cfg.Adapter))
		if result.Status != models.VerificationOK {
			log.Fatal().Strs("errors", result.Errors).Str("status", string(result.Status)).Msg("remote adapter parameters are invalid")
		}
	}

	routeID := cfg.Listener.RouteID
	consumerPipeline := pipeline.Build(routeID, pipeline.Options{
		BodyPrefix:      cfg.Listener.BodyPrefix,
		Remote:          invoker,
		RemoteOperation: cfg.Adapter.Operation,
		RemoteParams:    adapter.ParamsFromConfig(cfg.Adapter),
		Recorder:        storages.ExchangeRepository,
	}, log.ForRoute(routeID))

	m := metrics.New()
	health := grpc.NewHealthReporter([]string{routeID}, log)

	l, err := listener.New(listener.Config{
		ReadHeaderTimeout: cfg.Server.RequestTimeout,
		Metrics:           m,
		Observers:         []listener.StateObserver{health.Observe},
	}, []listener.Route{{
		ID:       routeID,
		Path:     cfg.Listener.RoutePath,
		Pipeline: consumerPipeline,
	}}, listener.NewHTTPCodec(listener.HTTPCodecConfig{
		MaxBodyBytes: cfg.Listener.MaxBodyBytes,
		Disconnect:   cfg.Listener.Disconnect,
	}), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating listener")
	}

	consumer, err := l.Start(ctx, cfg.Listener.Address)
	if err != nil {
		log.Fatal().Err(err).Msg("error starting listener")
	}
	health.Sync(consumer.State())

	services, err := service.NewServices(consumer, invoker, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m.Handler(), health, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, consumer, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(cfg.Workers, consumer, storages.ExchangeRepository, []string{routeID}, log).Run(ctx)

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
