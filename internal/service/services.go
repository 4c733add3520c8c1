package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-config/internal/adapter"
	"github.com/MKhiriev/go-chat-config/internal/catalog"
	"github.com/MKhiriev/go-chat-config/internal/config"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/store"
)

type Services struct {
	ApplicationService ApplicationService
	CredentialService  CredentialService
	ConfigService      ConfigService
	AuthService        AuthService
	AppInfoService     AppInfoService
	HealthService      HealthService
}

func NewServices(
	cat *catalog.Catalog,
	repositories *store.Repositories,
	companyRegistry adapter.CompanyRegistry,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	credentialService := NewCredentialValidationService().Wrap(
		NewCredentialService(repositories.CredentialRepository, repositories.ApplicationRepository, cfg.App, logger),
	)

	var pinger Pinger
	if repositories.DB != nil {
		pinger = repositories.DB
	}

	return &Services{
		ApplicationService: NewApplicationValidationService().Wrap(
			NewApplicationService(repositories.ApplicationRepository, cfg.App, logger),
		),
		CredentialService: credentialService,
		ConfigService: NewConfigValidationService().Wrap(
			NewConfigService(cat, repositories, companyRegistry, logger),
		),
		AuthService:    NewAuthService(credentialService, cfg.App, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(pinger),
	}, nil
}

// VerifySchema compares the catalog with the setting columns of the live
// application_configs table. A mismatch is fatal at startup.
func VerifySchema(ctx context.Context, cat *catalog.Catalog, repository store.ApplicationConfigRepository) error {
	if err := cat.VerifyModel(); err != nil {
		return err
	}

	columns, err := repository.SettingColumns(ctx)
	if err != nil {
		return fmt.Errorf("error reading configuration columns: %w", err)
	}

	return cat.VerifyColumns(columns)
}
