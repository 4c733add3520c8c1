package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/models"
	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
)

var companyOverrideColumns = []string{
	"override_id",
	"company_id",
	"application_id",
	"key",
	"value",
	"type",
	"description",
	"active",
	"created_at",
	"updated_at",
}

// upsertCompanyOverride reactivates an existing key and keeps its description
// unless a new one is supplied.
const upsertCompanyOverride = `ON CONFLICT (company_id, application_id, key) DO UPDATE SET
	value = EXCLUDED.value,
	type = EXCLUDED.type,
	description = COALESCE(EXCLUDED.description, company_overrides.description),
	active = TRUE,
	updated_at = NOW()`

// companyOverrideRepository is the PostgreSQL-backed implementation of
// [CompanyOverrideRepository].
type companyOverrideRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCompanyOverrideRepository constructs a [CompanyOverrideRepository].
func NewCompanyOverrideRepository(db *DB, logger *logger.Logger) CompanyOverrideRepository {
	logger.Debug().Msg("creating company override repository")
	return &companyOverrideRepository{
		db:     db,
		logger: logger,
	}
}

// List returns the overrides of one company for one application ordered by
// key. Inactive rows are included only when includeInactive is set.
func (r *companyOverrideRepository) List(ctx context.Context, companyID string, applicationID int64, includeInactive bool) ([]models.CompanyOverride, error) {
	builder := psql.Select(companyOverrideColumns...).
		From("company_overrides").
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"application_id": applicationID})
	if !includeInactive {
		builder = builder.Where("active")
	}

	query, args, err := builder.OrderBy("key").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	overrides := make([]models.CompanyOverride, 0)
	if err = sqlscan.Select(ctx, r.db, &overrides, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*companyOverrideRepository.List").
			Str("company_id", companyID).
			Int64("application_id", applicationID).
			Bool("retryable", r.db.retryable(err)).
			Msg("error selecting company overrides")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return overrides, nil
}

// Set creates or reactivates one override.
func (r *companyOverrideRepository) Set(ctx context.Context, entry models.CompanyOverride) (models.CompanyOverride, error) {
	saved, err := r.SetMany(ctx, []models.CompanyOverride{entry})
	if err != nil {
		return models.CompanyOverride{}, err
	}
	return saved[0], nil
}

// SetMany upserts all entries with one multi-row statement. Entries must not
// repeat a (company, application, key) triple.
func (r *companyOverrideRepository) SetMany(ctx context.Context, entries []models.CompanyOverride) ([]models.CompanyOverride, error) {
	if len(entries) == 0 {
		return []models.CompanyOverride{}, nil
	}

	builder := psql.Insert("company_overrides").
		Columns("company_id", "application_id", "key", "value", "type", "description")
	for _, e := range entries {
		builder = builder.Values(e.CompanyID, e.ApplicationID, e.Key, e.Value, string(e.Type), e.Description)
	}

	query, args, err := builder.
		Suffix(upsertCompanyOverride).
		Suffix("RETURNING " + strings.Join(companyOverrideColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved []models.CompanyOverride
	if err = sqlscan.Select(ctx, r.db, &saved, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*companyOverrideRepository.SetMany").
			Str("company_id", entries[0].CompanyID).
			Int("entries", len(entries)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error upserting company overrides")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if len(saved) != len(entries) {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrScanningRows, len(entries), len(saved))
	}

	return saved, nil
}

// Deactivate switches one override off and returns the updated row. A key
// that was never set yields [ErrCompanyOverrideNotFound].
func (r *companyOverrideRepository) Deactivate(ctx context.Context, companyID string, applicationID int64, key string) (models.CompanyOverride, error) {
	query, args, err := psql.Update("company_overrides").
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"application_id": applicationID}).
		Where(squirrel.Eq{"key": key}).
		Suffix("RETURNING " + strings.Join(companyOverrideColumns, ", ")).
		ToSql()
	if err != nil {
		return models.CompanyOverride{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row models.CompanyOverride
	if err = sqlscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return models.CompanyOverride{}, ErrCompanyOverrideNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*companyOverrideRepository.Deactivate").
			Str("company_id", companyID).
			Str("key", key).
			Msg("error deactivating company override")
		return models.CompanyOverride{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row, nil
}

// DeactivateAll switches off every active override of a company for an
// application and reports how many rows changed.
func (r *companyOverrideRepository) DeactivateAll(ctx context.Context, companyID string, applicationID int64) (int64, error) {
	query, args, err := psql.Update("company_overrides").
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"application_id": applicationID}).
		Where("active").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*companyOverrideRepository.DeactivateAll").
			Str("company_id", companyID).
			Int64("application_id", applicationID).
			Msg("error deactivating company overrides")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
