package service

import (
	"context"

	"github.com/MKhiriev/go-chat-config/models"
)

// ApplicationService registers tenant applications.
type ApplicationService interface {
	// Register creates the application, its empty configuration row and its
	// first credential atomically. The result is the only place the plain
	// credential secret is ever returned.
	Register(ctx context.Context, request models.RegisterApplicationRequest) (models.RegisteredApplication, error)
}

// CredentialService issues and checks application credentials.
type CredentialService interface {
	Issue(ctx context.Context, request models.IssueCredentialRequest) (models.Credential, error)
	Validate(ctx context.Context, request models.ValidateCredentialRequest) (models.Credential, error)
	// Revoke deactivates the active credential of code. Revoking twice
	// succeeds both times.
	Revoke(ctx context.Context, code string) (bool, error)
	Rotate(ctx context.Context, code string) (models.Credential, error)
	// Current returns the active, unexpired credential of code.
	Current(ctx context.Context, code string) (models.Credential, error)
}

// ConfigResolver computes the effective configuration of an application.
type ConfigResolver interface {
	// Resolve merges platform defaults, the application row and, when
	// companyID is not empty, the company's active overrides.
	Resolve(ctx context.Context, code, companyID string) (models.UnifiedConfiguration, error)
}

// ConfigService is the write side of configuration. Every write answers with
// a freshly resolved view instead of the stored row.
type ConfigService interface {
	ConfigResolver

	// SetApplicationDefault sets one key of the application row. A nil value
	// resets the key to inherit the platform default.
	SetApplicationDefault(ctx context.Context, code, key string, value any) (models.UnifiedConfiguration, error)
	// UpdateApplicationConfig applies several keys in one atomic upsert.
	UpdateApplicationConfig(ctx context.Context, code string, values map[string]any) (models.UnifiedConfiguration, error)

	// SetCompanyOverride creates, updates or, for an empty value,
	// deactivates one company override.
	SetCompanyOverride(ctx context.Context, code, companyID, key string, request models.SetCompanyOverrideRequest) (models.UnifiedConfiguration, error)
	ListCompanyOverrides(ctx context.Context, code, companyID string, includeInactive bool) ([]models.CompanyOverride, error)
	// CopyFromApplication turns every value set on the application row into
	// an override of the company.
	CopyFromApplication(ctx context.Context, code, companyID string) (models.UnifiedConfiguration, error)
	// RestoreDefaults deactivates every override of the company.
	RestoreDefaults(ctx context.Context, code, companyID string) (bool, models.UnifiedConfiguration, error)
}

// AuthService exchanges credentials for bearer tokens and checks them.
type AuthService interface {
	ExchangeToken(ctx context.Context, request models.TokenRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CredentialServiceWrapper decorates a CredentialService, e.g. with request
// validation.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService
}

// ApplicationServiceWrapper decorates an ApplicationService.
type ApplicationServiceWrapper interface {
	Wrap(ApplicationService) ApplicationService
}

// ConfigServiceWrapper decorates a ConfigService.
type ConfigServiceWrapper interface {
	Wrap(ConfigService) ConfigService
}

// HealthService checks the dependencies the service cannot work without.
type HealthService interface {
	Check(ctx context.Context) error
}
