package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-http-consumer/internal/adapter"
	"github.com/MKhiriev/go-http-consumer/internal/client"
	"github.com/MKhiriev/go-http-consumer/internal/config"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-http-consumer-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	controlAdapter, err := adapter.NewHTTPControlAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create control adapter")
	}

	app, err := client.NewApp(controlAdapter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background(), cfg.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
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
