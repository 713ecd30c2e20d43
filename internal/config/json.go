package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Listener struct {
		Address         string   `json:"address"`
		RouteID         string   `json:"route_id"`
		RoutePath       string   `json:"route_path"`
		BodyPrefix      string   `json:"body_prefix"`
		Disconnect      bool     `json:"disconnect"`
		MaxBodyBytes    int64    `json:"max_body_bytes"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"listener,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Operation      string   `json:"operation"`
		AccessKey      string   `json:"access_key"`
		SecretKey      string   `json:"secret_key"`
		Region         string   `json:"region"`
	} `json:"adapter,omitempty"`

	Workers struct {
		StatsInterval Duration `json:"stats_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{Version: jsonCfg.App.Version},
		Listener: Listener{
			Address:         jsonCfg.Listener.Address,
			RouteID:         jsonCfg.Listener.RouteID,
			RoutePath:       jsonCfg.Listener.RoutePath,
			BodyPrefix:      jsonCfg.Listener.BodyPrefix,
			Disconnect:      jsonCfg.Listener.Disconnect,
			MaxBodyBytes:    jsonCfg.Listener.MaxBodyBytes,
			ShutdownTimeout: time.Duration(jsonCfg.Listener.ShutdownTimeout),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Operation:      jsonCfg.Adapter.Operation,
			AccessKey:      jsonCfg.Adapter.AccessKey,
			SecretKey:      jsonCfg.Adapter.SecretKey,
			Region:         jsonCfg.Adapter.Region,
		},
		Workers: Workers{StatsInterval: time.Duration(jsonCfg.Workers.StatsInterval)},
	}

	return cfg, nil
}

// Duration wraps time.Duration so JSON accepts both "30s" style strings and
// raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
