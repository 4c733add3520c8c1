package store

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/models"
	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
)

// applicationConfigColumns is the full column list of application_configs in
// the order the model declares them.
var applicationConfigColumns = append(
	[]string{"application_id", "created_at", "updated_at"},
	models.ApplicationConfigColumns()...,
)

// applicationConfigRepository is the PostgreSQL-backed implementation of
// [ApplicationConfigRepository]. The "application_configs" table holds one
// wide row per application with a nullable column per setting.
type applicationConfigRepository struct {
	db       *DB
	logger   *logger.Logger
	settings map[string]struct{}
}

// NewApplicationConfigRepository constructs an [ApplicationConfigRepository].
func NewApplicationConfigRepository(db *DB, logger *logger.Logger) ApplicationConfigRepository {
	logger.Debug().Msg("creating application config repository")

	settings := make(map[string]struct{})
	for _, column := range models.ApplicationConfigColumns() {
		settings[column] = struct{}{}
	}

	return &applicationConfigRepository{
		db:       db,
		logger:   logger,
		settings: settings,
	}
}

func (r *applicationConfigRepository) GetByApplicationID(ctx context.Context, applicationID int64) (models.ApplicationConfig, error) {
	query, args, err := psql.Select(applicationConfigColumns...).
		From("application_configs").
		Where(squirrel.Eq{"application_id": applicationID}).
		ToSql()
	if err != nil {
		return models.ApplicationConfig{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row models.ApplicationConfig
	if err = sqlscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return models.ApplicationConfig{}, ErrApplicationConfigNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*applicationConfigRepository.GetByApplicationID").
			Int64("application_id", applicationID).
			Bool("retryable", r.db.retryable(err)).
			Msg("error selecting application configuration")
		return models.ApplicationConfig{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row, nil
}

// Upsert writes the patched columns of one application's row, creating the
// row when it does not exist. Columns missing from patch keep their stored
// value; a nil value stores NULL. The statement is a single
// INSERT ... ON CONFLICT DO UPDATE, so concurrent callers never see a
// half-applied patch.
//
// Every patch key must be a setting column, otherwise [ErrUnknownColumn] is
// returned and nothing is written. Column names are never taken from input
// that was not checked against that list.
func (r *applicationConfigRepository) Upsert(ctx context.Context, applicationID int64, patch models.ApplicationConfigPatch) (models.ApplicationConfig, error) {
	log := logger.FromContext(ctx)

	columns := make([]string, 0, len(patch))
	for column := range patch {
		if _, ok := r.settings[column]; !ok {
			return models.ApplicationConfig{}, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
		}
		columns = append(columns, column)
	}
	slices.Sort(columns)

	values := make([]any, 0, len(columns)+1)
	values = append(values, applicationID)
	assignments := make([]string, 0, len(columns)+1)
	for _, column := range columns {
		values = append(values, patch[column])
		assignments = append(assignments, column+" = EXCLUDED."+column)
	}
	if len(assignments) == 0 {
		// keeps RETURNING working when the row already exists
		assignments = append(assignments, "application_id = EXCLUDED.application_id")
	} else {
		assignments = append(assignments, "updated_at = NOW()")
	}

	query, args, err := psql.Insert("application_configs").
		Columns(append([]string{"application_id"}, columns...)...).
		Values(values...).
		Suffix("ON CONFLICT (application_id) DO UPDATE SET " + strings.Join(assignments, ", ")).
		Suffix("RETURNING " + strings.Join(applicationConfigColumns, ", ")).
		ToSql()
	if err != nil {
		return models.ApplicationConfig{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row models.ApplicationConfig
	if err = sqlscan.Get(ctx, r.db, &row, query, args...); err != nil {
		log.Err(err).
			Str("func", "*applicationConfigRepository.Upsert").
			Int64("application_id", applicationID).
			Strs("columns", columns).
			Bool("retryable", r.db.retryable(err)).
			Msg("error upserting application configuration")
		return models.ApplicationConfig{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row, nil
}

// SettingColumns reads the setting columns of the live application_configs
// table from information_schema, in ordinal order.
func (r *applicationConfigRepository) SettingColumns(ctx context.Context) ([]string, error) {
	query, args, err := psql.Select("column_name").
		From("information_schema.columns").
		Where("table_schema = current_schema()").
		Where(squirrel.Eq{"table_name": "application_configs"}).
		Where(squirrel.NotEq{"column_name": []string{"application_id", "created_at", "updated_at"}}).
		OrderBy("ordinal_position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var columns []string
	if err = sqlscan.Select(ctx, r.db, &columns, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*applicationConfigRepository.SettingColumns").
			Msg("error reading application_configs columns")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return columns, nil
}
