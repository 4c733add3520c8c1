// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-config/internal/adapter"
	"github.com/MKhiriev/go-chat-config/internal/catalog"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/store"
	"github.com/MKhiriev/go-chat-config/models"
)

// configResolver merges the three configuration layers. It holds no mutable
// state and is safe for concurrent use.
type configResolver struct {
	// catalog supplies the platform defaults and field types.
	catalog *catalog.Catalog

	applicationRepository       store.ApplicationRepository
	applicationConfigRepository store.ApplicationConfigRepository
	companyOverrideRepository   store.CompanyOverrideRepository

	// companyRegistry confirms company subscriptions before overrides are
	// honoured.
	companyRegistry adapter.CompanyRegistry

	logger *logger.Logger
}

func NewConfigResolver(
	cat *catalog.Catalog,
	repositories *store.Repositories,
	companyRegistry adapter.CompanyRegistry,
	logger *logger.Logger,
) ConfigResolver {
	return newConfigResolver(cat, repositories, companyRegistry, logger)
}

func newConfigResolver(cat *catalog.Catalog, repositories *store.Repositories, companyRegistry adapter.CompanyRegistry, logger *logger.Logger) *configResolver {
	return &configResolver{
		catalog:                     cat,
		applicationRepository:       repositories.ApplicationRepository,
		applicationConfigRepository: repositories.ApplicationConfigRepository,
		companyOverrideRepository:   repositories.CompanyOverrideRepository,
		companyRegistry:             companyRegistry,
		logger:                      logger,
	}
}

// Resolve implements ConfigResolver.
//
// Returns ErrApplicationNotFound for unknown and inactive applications (never
// a default configuration), ErrCompanyNotFound when companyID does not
// subscribe to the application, and ErrCompanyRegistryUnavailable when that
// cannot be determined. A malformed value in any layer is skipped and
// reported in Warnings instead of failing the call.
func (r *configResolver) Resolve(ctx context.Context, code, companyID string) (models.UnifiedConfiguration, error) {
	app, err := r.application(ctx, code)
	if err != nil {
		return models.UnifiedConfiguration{}, err
	}
	if companyID != "" {
		if err = r.ensureSubscribed(ctx, app, companyID); err != nil {
			return models.UnifiedConfiguration{}, err
		}
	}

	return r.resolve(ctx, app, companyID)
}

// application returns the active application with the given code.
func (r *configResolver) application(ctx context.Context, code string) (models.Application, error) {
	app, err := r.applicationRepository.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrApplicationNotFound) {
			return models.Application{}, ErrApplicationNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*configResolver.application").Str("code", code).Msg("application lookup failed")
		return models.Application{}, fmt.Errorf("application lookup failed: %w", err)
	}
	if !app.Active {
		return models.Application{}, ErrApplicationNotFound
	}
	return app, nil
}

func (r *configResolver) ensureSubscribed(ctx context.Context, app models.Application, companyID string) error {
	subscribed, err := r.companyRegistry.IsSubscribed(ctx, companyID, app.Code)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCompanyRegistryUnavailable, err)
	}
	if !subscribed {
		return ErrCompanyNotFound
	}
	return nil
}

// row loads the application row. A missing row resolves like an all-null
// one.
func (r *configResolver) row(ctx context.Context, applicationID int64) (models.ApplicationConfig, error) {
	row, err := r.applicationConfigRepository.GetByApplicationID(ctx, applicationID)
	if errors.Is(err, store.ErrApplicationConfigNotFound) {
		return models.ApplicationConfig{ApplicationID: applicationID}, nil
	}
	if err != nil {
		return models.ApplicationConfig{}, fmt.Errorf("application configuration lookup failed: %w", err)
	}
	return row, nil
}

// resolve computes the configuration of an already checked application and,
// if companyID is set, an already checked company.
func (r *configResolver) resolve(ctx context.Context, app models.Application, companyID string) (models.UnifiedConfiguration, error) {
	log := logger.FromContext(ctx)

	row, err := r.row(ctx, app.ApplicationID)
	if err != nil {
		log.Err(err).Str("func", "*configResolver.resolve").Str("code", app.Code).Msg("error loading application row")
		return models.UnifiedConfiguration{}, err
	}

	var overrides []models.CompanyOverride
	if companyID != "" {
		overrides, err = r.companyOverrideRepository.List(ctx, companyID, app.ApplicationID, false)
		if err != nil {
			log.Err(err).Str("func", "*configResolver.resolve").Str("code", app.Code).Str("company_id", companyID).Msg("error loading company overrides")
			return models.UnifiedConfiguration{}, fmt.Errorf("company overrides lookup failed: %w", err)
		}
	}

	resolved := merge(r.catalog, row, overrides)
	resolved.ApplicationCode = app.Code
	resolved.ApplicationID = app.ApplicationID
	resolved.CompanyID = companyID

	if len(resolved.Warnings) > 0 {
		log.Warn().
			Str("code", app.Code).
			Str("company_id", companyID).
			Strs("warnings", resolved.Warnings).
			Msg("configuration resolved with skipped values")
	}

	return resolved, nil
}

// merge applies company > application > default precedence to every catalog
// field. Each field is taken whole from exactly one layer.
func merge(cat *catalog.Catalog, row models.ApplicationConfig, overrides []models.CompanyOverride) models.UnifiedConfiguration {
	resolved := models.UnifiedConfiguration{
		Values:  make(map[string]any, cat.Len()),
		Sources: make(map[string]models.ValueSource, cat.Len()),
	}

	company := make(map[string]any, len(overrides))
	for _, o := range overrides {
		if !o.Active {
			continue
		}
		value, err := overrideValue(cat, o)
		if err != nil {
			resolved.Warnings = append(resolved.Warnings, fmt.Sprintf("company override %s ignored: %v", o.Key, err))
			continue
		}
		company[o.Key] = value
	}

	for _, field := range cat.Fields() {
		if value, ok := company[field.Key]; ok {
			resolved.Values[field.Key] = value
			resolved.Sources[field.Key] = models.SourceCompany
			continue
		}

		if stored, ok := row.Value(field.Column); ok {
			value, err := field.FromColumn(stored)
			if err == nil {
				resolved.Values[field.Key] = value
				resolved.Sources[field.Key] = models.SourceApplication
				continue
			}
			resolved.Warnings = append(resolved.Warnings, fmt.Sprintf("application value %s ignored: %v", field.Key, err))
		}

		resolved.Values[field.Key] = field.Default
		resolved.Sources[field.Key] = models.SourceDefault
	}

	return resolved
}

// overrideValue parses an override by its own type and then checks it
// against the catalog field it overrides.
func overrideValue(cat *catalog.Catalog, o models.CompanyOverride) (any, error) {
	field, ok := cat.Lookup(o.Key)
	if !ok {
		return nil, catalog.ErrUnknownKey
	}

	value, err := catalog.ParseAs(o.Type, o.Value)
	if err != nil {
		return nil, err
	}
	if o.Type != field.Type {
		return nil, fmt.Errorf("%w: stored as %s, %s expects %s", catalog.ErrInvalidValue, o.Type, field.Key, field.Type)
	}
	if err = field.Check(value); err != nil {
		return nil, err
	}

	return value, nil
}
