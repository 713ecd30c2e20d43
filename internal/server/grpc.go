package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-http-consumer/internal/config"
	myGRPC "github.com/MKhiriev/go-http-consumer/internal/handler/grpc"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  s,
		logger:  logger,
	}
}

func (g *grpcServer) serve() error {
	if g.gRPCNetListener == nil {
		ln, err := net.Listen("tcp", g.address)
		if err != nil {
			g.logger.Err(err).Str("func", "*grpcServer.serve").Msg("gRPC server Listen")
			return fmt.Errorf("gRPC listen %s: %w", g.address, err)
		}
		g.gRPCNetListener = ln
	}

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("Launching GRPC server")
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		g.logger.Err(err).Str("func", "*grpcServer.serve").Msg("gRPC server Serve")
		return err
	}
	return nil
}

// shutdown stops gracefully unless ctx expires first, then forces the stop.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}

func (g *grpcServer) name() string {
	return "grpc"
}
