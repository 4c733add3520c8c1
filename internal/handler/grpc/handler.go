package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name of the configuration API.
const ServiceName = "chatconfig.v1.ConfigurationService"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1 service. Both the overall status
// ("") and ServiceName follow the database health reported by
// [service.HealthService].
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every status starts as NOT_SERVING
// until the first check succeeds.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register attaches the handler's services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Check runs one health check and publishes the result.
func (h *Handler) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.HealthService.Check(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("health check failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.setStatus(status)
	return status
}

// Watch checks health every interval until ctx is done, then marks the
// service as shutting down.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		checkCtx, cancel := context.WithTimeout(ctx, interval)
		h.Check(checkCtx)
		cancel()

		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
		}
	}
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
