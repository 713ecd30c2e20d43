package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags registers every configuration flag on fs and parses args.
//
// Flags:
//
//	-a consumer listen address in format [host]:[port]
//	-control-address control API address in format [host]:[port]
//	-grpc-address gRPC health address in format [host]:[port]
//	-route-id route identifier
//	-route-path route URL path
//	-prefix body prefix added by the route pipeline
//	-disconnect close the connection after every response
//	-max-body-bytes maximum accepted request body size
//	-shutdown-timeout shutdown drain timeout (e.g., "30s")
//	-request-timeout control API request timeout (e.g., "15s")
//	-d database DSN
//	-adapter-address remote operation endpoint
//	-adapter-timeout remote call timeout
//	-operation remote operation name
//	-access-key / -secret-key / -region remote call credentials
//	-stats-interval stats reporter interval
//	-c/-config json file path with configs
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var listenAddress, controlAddress, grpcAddress NetAddress
	var routeID, routePath, prefix string
	var disconnect bool
	var maxBodyBytes int64
	var shutdownTimeout, requestTimeout time.Duration
	var databaseDSN string
	var adapterAddress, operation, accessKey, secretKey, region string
	var adapterTimeout, statsInterval time.Duration
	var jsonConfigPath string

	fs.Var(&listenAddress, "a", "Consumer net address host:port")
	fs.Var(&controlAddress, "control-address", "Control API net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC health net address host:port")
	fs.StringVar(&routeID, "route-id", "", "Route identifier")
	fs.StringVar(&routePath, "route-path", "", "Route URL path")
	fs.StringVar(&prefix, "prefix", "", "Body prefix")
	fs.BoolVar(&disconnect, "disconnect", false, "Close connection after every response")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Maximum request body size")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Shutdown drain timeout (e.g., 30s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Control request timeout (e.g., 15s)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&adapterAddress, "adapter-address", "", "Remote operation endpoint")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Remote call timeout (e.g., 10s)")
	fs.StringVar(&operation, "operation", "", "Remote operation name")
	fs.StringVar(&accessKey, "access-key", "", "Remote access key")
	fs.StringVar(&secretKey, "secret-key", "", "Remote secret key")
	fs.StringVar(&region, "region", "", "Remote region")
	fs.DurationVar(&statsInterval, "stats-interval", 0, "Stats reporter interval (e.g., 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Listener: Listener{
			Address:         listenAddress.String(),
			RouteID:         routeID,
			RoutePath:       routePath,
			BodyPrefix:      prefix,
			Disconnect:      disconnect,
			MaxBodyBytes:    maxBodyBytes,
			ShutdownTimeout: shutdownTimeout,
		},
		Server: Server{
			HTTPAddress:    controlAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
			Operation:      operation,
			AccessKey:      accessKey,
			SecretKey:      secretKey,
			Region:         region,
		},
		Workers:      Workers{StatsInterval: statsInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds every interface; any other host must be "localhost" or
// a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
