package http

import (
	"github.com/MKhiriev/go-chat-config/internal/config"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/service"
)

type Handler struct {
	services *service.Services

	// adminKey guards the application and credential management routes.
	adminKey string

	server       config.Server
	tokenLimiter *clientLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		adminKey:     cfg.App.AdminKey,
		server:       cfg.Server,
		tokenLimiter: newClientLimiter(cfg.Server.TokenRateLimit, cfg.Server.TokenRateBurst),
		logger:       logger,
	}
}
