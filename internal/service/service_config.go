package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-chat-config/internal/adapter"
	"github.com/MKhiriev/go-chat-config/internal/catalog"
	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/internal/store"
	"github.com/MKhiriev/go-chat-config/models"
)

// configService is the concrete implementation of ConfigService. Reads are
// delegated to the embedded resolver; writes validate against the catalog,
// persist and resolve again.
type configService struct {
	*configResolver
}

// NewConfigService constructs a ConfigService over the given catalog and
// repositories.
func NewConfigService(
	cat *catalog.Catalog,
	repositories *store.Repositories,
	companyRegistry adapter.CompanyRegistry,
	logger *logger.Logger,
) ConfigService {
	return &configService{configResolver: newConfigResolver(cat, repositories, companyRegistry, logger)}
}

// SetApplicationDefault sets a single key of the application row.
//
// Returns ErrUnknownKey for keys outside the catalog and an ErrValidation
// error when value does not fit the field.
func (s *configService) SetApplicationDefault(ctx context.Context, code, key string, value any) (models.UnifiedConfiguration, error) {
	return s.UpdateApplicationConfig(ctx, code, map[string]any{key: value})
}

// UpdateApplicationConfig validates every key first and writes nothing if
// one of them is rejected.
func (s *configService) UpdateApplicationConfig(ctx context.Context, code string, values map[string]any) (models.UnifiedConfiguration, error) {
	log := logger.FromContext(ctx)

	app, err := s.application(ctx, code)
	if err != nil {
		return models.UnifiedConfiguration{}, err
	}

	patch, err := s.patch(values)
	if err != nil {
		return models.UnifiedConfiguration{}, err
	}

	if _, err = s.applicationConfigRepository.Upsert(ctx, app.ApplicationID, patch); err != nil {
		if errors.Is(err, store.ErrUnknownColumn) {
			return models.UnifiedConfiguration{}, fmt.Errorf("%w: %w", ErrUnknownKey, err)
		}
		log.Err(err).Str("func", "*configService.UpdateApplicationConfig").Str("code", code).Msg("error saving application configuration")
		return models.UnifiedConfiguration{}, fmt.Errorf("error saving application configuration: %w", err)
	}

	log.Info().Str("code", code).Strs("keys", slices.Sorted(maps.Keys(values))).Msg("application configuration updated")
	return s.resolve(ctx, app, "")
}

// patch converts dotted keys and decoded values into a column patch.
func (s *configService) patch(values map[string]any) (models.ApplicationConfigPatch, error) {
	patch := make(models.ApplicationConfigPatch, len(values))

	var unknown, invalid []error
	for _, key := range slices.Sorted(maps.Keys(values)) {
		field, ok := s.catalog.Lookup(key)
		if !ok {
			unknown = append(unknown, fmt.Errorf("%q", key))
			continue
		}

		value := values[key]
		if value == nil {
			patch[field.Column] = nil
			continue
		}

		canonical, err := field.Coerce(value)
		if err != nil {
			invalid = append(invalid, err)
			continue
		}
		patch[field.Column] = field.ToColumn(canonical)
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrUnknownKey, errors.Join(unknown...))
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, errors.Join(invalid...))
	}
	return patch, nil
}

// SetCompanyOverride writes one override. An empty request.Value removes the
// override by deactivating it; ErrOverrideNotFound is returned when there is
// nothing to remove. An empty request.Type takes the type of the key.
func (s *configService) SetCompanyOverride(ctx context.Context, code, companyID, key string, request models.SetCompanyOverrideRequest) (models.UnifiedConfiguration, error) {
	log := logger.FromContext(ctx)

	app, err := s.companyApplication(ctx, code, companyID)
	if err != nil {
		return models.UnifiedConfiguration{}, err
	}

	field, ok := s.catalog.Lookup(key)
	if !ok {
		return models.UnifiedConfiguration{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	if request.Value == "" {
		if _, err = s.companyOverrideRepository.Deactivate(ctx, companyID, app.ApplicationID, key); err != nil {
			if errors.Is(err, store.ErrCompanyOverrideNotFound) {
				return models.UnifiedConfiguration{}, ErrOverrideNotFound
			}
			log.Err(err).Str("func", "*configService.SetCompanyOverride").Str("code", code).Str("company_id", companyID).Msg("error removing company override")
			return models.UnifiedConfiguration{}, fmt.Errorf("error removing company override: %w", err)
		}
		log.Info().Str("code", code).Str("company_id", companyID).Str("key", key).Msg("company override removed")
		return s.resolve(ctx, app, companyID)
	}

	valueType := request.Type
	if valueType == "" {
		valueType = field.Type
	}
	if valueType != field.Type {
		return models.UnifiedConfiguration{}, fmt.Errorf("%w: %s expects %s, got %s", ErrInvalidValue, key, field.Type, valueType)
	}

	value, err := field.Parse(request.Value)
	if err != nil {
		return models.UnifiedConfiguration{}, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	_, err = s.companyOverrideRepository.Set(ctx, models.CompanyOverride{
		CompanyID:     companyID,
		ApplicationID: app.ApplicationID,
		Key:           key,
		Value:         catalog.Format(value),
		Type:          field.Type,
		Description:   request.Description,
		Active:        true,
	})
	if err != nil {
		log.Err(err).Str("func", "*configService.SetCompanyOverride").Str("code", code).Str("company_id", companyID).Msg("error saving company override")
		return models.UnifiedConfiguration{}, fmt.Errorf("error saving company override: %w", err)
	}

	log.Info().Str("code", code).Str("company_id", companyID).Str("key", key).Msg("company override saved")
	return s.resolve(ctx, app, companyID)
}

// ListCompanyOverrides returns the stored overrides of a company ordered by
// key. Inactive entries are included on request.
func (s *configService) ListCompanyOverrides(ctx context.Context, code, companyID string, includeInactive bool) ([]models.CompanyOverride, error) {
	app, err := s.companyApplication(ctx, code, companyID)
	if err != nil {
		return nil, err
	}

	overrides, err := s.companyOverrideRepository.List(ctx, companyID, app.ApplicationID, includeInactive)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*configService.ListCompanyOverrides").Str("code", code).Str("company_id", companyID).Msg("error listing company overrides")
		return nil, fmt.Errorf("error listing company overrides: %w", err)
	}
	return overrides, nil
}

// CopyFromApplication stores every value explicitly set on the application
// row as an override of the company. Keys inheriting the platform default
// are not copied, and neither are row values that no longer fit their
// field.
func (s *configService) CopyFromApplication(ctx context.Context, code, companyID string) (models.UnifiedConfiguration, error) {
	log := logger.FromContext(ctx)

	app, err := s.companyApplication(ctx, code, companyID)
	if err != nil {
		return models.UnifiedConfiguration{}, err
	}

	row, err := s.row(ctx, app.ApplicationID)
	if err != nil {
		log.Err(err).Str("func", "*configService.CopyFromApplication").Str("code", code).Msg("error loading application row")
		return models.UnifiedConfiguration{}, err
	}

	var entries []models.CompanyOverride
	for _, field := range s.catalog.Fields() {
		stored, ok := row.Value(field.Column)
		if !ok {
			continue
		}
		value, err := field.FromColumn(stored)
		if err != nil {
			log.Warn().Err(err).Str("code", code).Str("key", field.Key).Msg("application value not copied")
			continue
		}
		entries = append(entries, models.CompanyOverride{
			CompanyID:     companyID,
			ApplicationID: app.ApplicationID,
			Key:           field.Key,
			Value:         catalog.Format(value),
			Type:          field.Type,
			Active:        true,
		})
	}

	if len(entries) > 0 {
		if _, err = s.companyOverrideRepository.SetMany(ctx, entries); err != nil {
			log.Err(err).Str("func", "*configService.CopyFromApplication").Str("code", code).Str("company_id", companyID).Msg("error copying application values")
			return models.UnifiedConfiguration{}, fmt.Errorf("error copying application values: %w", err)
		}
	}

	log.Info().Str("code", code).Str("company_id", companyID).Int("copied", len(entries)).Msg("application values copied to company")
	return s.resolve(ctx, app, companyID)
}

// RestoreDefaults deactivates every override of the company so it inherits
// the application configuration again. Restoring a company without
// overrides succeeds.
func (s *configService) RestoreDefaults(ctx context.Context, code, companyID string) (bool, models.UnifiedConfiguration, error) {
	log := logger.FromContext(ctx)

	app, err := s.companyApplication(ctx, code, companyID)
	if err != nil {
		return false, models.UnifiedConfiguration{}, err
	}

	removed, err := s.companyOverrideRepository.DeactivateAll(ctx, companyID, app.ApplicationID)
	if err != nil {
		log.Err(err).Str("func", "*configService.RestoreDefaults").Str("code", code).Str("company_id", companyID).Msg("error restoring defaults")
		return false, models.UnifiedConfiguration{}, fmt.Errorf("error restoring defaults: %w", err)
	}

	resolved, err := s.resolve(ctx, app, companyID)
	if err != nil {
		return false, models.UnifiedConfiguration{}, err
	}

	log.Info().Str("code", code).Str("company_id", companyID).Int64("removed", removed).Msg("company defaults restored")
	return true, resolved, nil
}

// companyApplication loads the application and checks the company
// subscription; every company scoped operation starts here.
func (s *configService) companyApplication(ctx context.Context, code, companyID string) (models.Application, error) {
	if companyID == "" {
		return models.Application{}, ErrCompanyIDRequired
	}

	app, err := s.application(ctx, code)
	if err != nil {
		return models.Application{}, err
	}

	if err = s.ensureSubscribed(ctx, app, companyID); err != nil {
		return models.Application{}, err
	}
	return app, nil
}
