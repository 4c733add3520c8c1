package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-config/internal/config"
	"github.com/MKhiriev/go-chat-config/internal/handler"
	myGRPC "github.com/MKhiriev/go-chat-config/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-chat-config/internal/handler/http"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type healthyService struct{}

func (healthyService) Check(context.Context) error { return nil }

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	h := myGRPC.NewHandler(&service.Services{HealthService: healthyService{}}, logger.Nop())

	_, err := NewServer(&handler.Handlers{GRPC: h}, config.Server{GRPCAddress: "256.0.0.1:-1"}, logger.Nop())
	assert.Error(t, err)
}

func TestHTTPServer_Timeouts(t *testing.T) {
	s := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "localhost:0"}, logger.Nop())

	assert.Equal(t, "localhost:0", s.server.Addr)
	assert.Equal(t, readHeaderTimeout, s.server.ReadHeaderTimeout)
	assert.Equal(t, idleTimeout, s.server.IdleTimeout)
}

func TestHTTPServer_ServesRouter(t *testing.T) {
	cfg := config.StructuredConfig{
		App:    config.App{Version: "1.2.3"},
		Server: config.Server{HTTPAddress: "localhost:0", TokenRateLimit: 1, TokenRateBurst: 1},
	}
	appInfo, err := service.NewAppInfoService(cfg.App, logger.Nop())
	require.NoError(t, err)

	router := myHTTP.NewHandler(&service.Services{AppInfoService: appInfo}, cfg, logger.Nop()).Init()
	s := newHTTPServer(router, cfg.Server, logger.Nop())

	ts := httptest.NewServer(s.server.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/version")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGRPCServer_RunAndShutdown(t *testing.T) {
	h := myGRPC.NewHandler(&service.Services{HealthService: healthyService{}}, logger.Nop())
	s, err := newGRPCServer(h, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		s.RunServer()
		close(done)
	}()

	conn, err := grpc.NewClient(s.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	require.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: myGRPC.ServiceName})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 20*time.Millisecond)

	s.Shutdown()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("gRPC server did not stop")
	}
}
