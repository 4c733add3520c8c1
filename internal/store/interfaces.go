package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database call is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ApplicationRepository is the application registry.
type ApplicationRepository interface {
	// Register inserts the application, its empty configuration row and its
	// first credential in one transaction.
	Register(ctx context.Context, app models.Application, credential models.Credential) (models.Application, models.Credential, error)
	GetByCode(ctx context.Context, code string) (models.Application, error)
}

// CredentialRepository persists application credentials. Credentials are
// never deleted, only deactivated.
type CredentialRepository interface {
	Create(ctx context.Context, credential models.Credential) (models.Credential, error)
	GetActiveByCode(ctx context.Context, code string) (models.Credential, error)
	Deactivate(ctx context.Context, code string) (bool, error)
	Rotate(ctx context.Context, code string, replacement models.Credential) (models.Credential, error)
	ListExpiring(ctx context.Context, before time.Time) ([]models.Credential, error)
}

// ApplicationConfigRepository persists the wide per-application row.
type ApplicationConfigRepository interface {
	GetByApplicationID(ctx context.Context, applicationID int64) (models.ApplicationConfig, error)
	Upsert(ctx context.Context, applicationID int64, patch models.ApplicationConfigPatch) (models.ApplicationConfig, error)
	// SettingColumns lists the setting columns of the live table.
	SettingColumns(ctx context.Context) ([]string, error)
}

// CompanyOverrideRepository persists company key/value overrides.
type CompanyOverrideRepository interface {
	List(ctx context.Context, companyID string, applicationID int64, includeInactive bool) ([]models.CompanyOverride, error)
	Set(ctx context.Context, entry models.CompanyOverride) (models.CompanyOverride, error)
	SetMany(ctx context.Context, entries []models.CompanyOverride) ([]models.CompanyOverride, error)
	Deactivate(ctx context.Context, companyID string, applicationID int64, key string) (models.CompanyOverride, error)
	DeactivateAll(ctx context.Context, companyID string, applicationID int64) (int64, error)
}
