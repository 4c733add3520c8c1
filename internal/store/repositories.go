package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-config/internal/config"
	"github.com/MKhiriev/go-chat-config/internal/logger"
)

// Repositories bundles every repository over one database handle.
type Repositories struct {
	DB *DB

	ApplicationRepository       ApplicationRepository
	CredentialRepository        CredentialRepository
	ApplicationConfigRepository ApplicationConfigRepository
	CompanyOverrideRepository   CompanyOverrideRepository
}

// NewRepositories connects to PostgreSQL, applies migrations and builds the
// repositories.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewRepositories").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return newRepositories(db, log), nil
}

func newRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		DB:                          db,
		ApplicationRepository:       NewApplicationRepository(db, log),
		CredentialRepository:        NewCredentialRepository(db, log),
		ApplicationConfigRepository: NewApplicationConfigRepository(db, log),
		CompanyOverrideRepository:   NewCompanyOverrideRepository(db, log),
	}
}

// Close closes the database handle.
func (r *Repositories) Close() error {
	return r.DB.Close()
}
