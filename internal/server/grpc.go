package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-chat-config/internal/config"
	myGRPC "github.com/MKhiriev/go-chat-config/internal/handler/grpc"
	"github.com/MKhiriev/go-chat-config/internal/logger"

	"google.golang.org/grpc"
)

const healthCheckInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	healthCtx  context.Context
	stopHealth context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	healthCtx, stopHealth := context.WithCancel(context.Background())

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		healthCtx:       healthCtx,
		stopHealth:      stopHealth,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	go g.handler.Watch(g.healthCtx, healthCheckInterval)

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.stopHealth()
	g.server.GracefulStop()
}
