package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-config/internal/config"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/store"
	"github.com/MKhiriev/go-chat-config/models"
)

type applicationService struct {
	applicationRepository store.ApplicationRepository
	minter                *credentialMinter

	logger *logger.Logger
}

func NewApplicationService(applicationRepository store.ApplicationRepository, cfg config.App, logger *logger.Logger) ApplicationService {
	return &applicationService{
		applicationRepository: applicationRepository,
		minter:                newCredentialMinter(cfg.HashKey, cfg.CredentialTTL),
		logger:                logger,
	}
}

// Register creates an application with an empty configuration row and a
// first credential. A blank name defaults to the code.
func (s *applicationService) Register(ctx context.Context, request models.RegisterApplicationRequest) (models.RegisteredApplication, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(request.Name)
	if name == "" {
		name = request.Code
	}

	credential, err := s.minter.mint()
	if err != nil {
		log.Err(err).Str("func", "*applicationService.Register").Msg("error minting credential")
		return models.RegisteredApplication{}, err
	}

	app, issued, err := s.applicationRepository.Register(ctx, models.Application{Code: request.Code, Name: name}, credential)
	if err != nil {
		if errors.Is(err, store.ErrApplicationAlreadyExists) {
			return models.RegisteredApplication{}, ErrApplicationExists
		}
		log.Err(err).Str("func", "*applicationService.Register").Str("code", request.Code).Msg("application registration ended with error")
		return models.RegisteredApplication{}, fmt.Errorf("application registration ended with error: %w", err)
	}

	log.Info().Str("code", app.Code).Int64("application_id", app.ApplicationID).Msg("application registered")
	return models.RegisteredApplication{Application: app, Credential: issued}, nil
}
