package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/models"
	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/jackc/pgerrcode"
)

var applicationColumns = []string{"application_id", "code", "name", "active", "created_at"}

// applicationRepository is the PostgreSQL-backed implementation of
// [ApplicationRepository] over the "applications" table.
type applicationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewApplicationRepository constructs an [ApplicationRepository].
func NewApplicationRepository(db *DB, logger *logger.Logger) ApplicationRepository {
	logger.Debug().Msg("creating application repository")
	return &applicationRepository{
		db:     db,
		logger: logger,
	}
}

// Register inserts the application row, an empty configuration row and the
// first credential in a single transaction.
//
// Error handling:
//   - unique_violation on the application code → [ErrApplicationAlreadyExists].
//   - unique_violation on the credential → [ErrActiveCredentialExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *applicationRepository) Register(ctx context.Context, app models.Application, credential models.Credential) (models.Application, models.Credential, error) {
	log := logger.FromContext(ctx).With().Str("code", app.Code).Logger()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.Register").Msg("error beginning transaction")
		return models.Application{}, models.Credential{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := psql.Insert("applications").
		Columns("code", "name").
		Values(app.Code, app.Name).
		Suffix("RETURNING " + strings.Join(applicationColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Application{}, models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Application
	if err = sqlscan.Get(ctx, tx, &saved, query, args...); err != nil {
		log.Err(err).Str("func", "*applicationRepository.Register").Msg("error inserting application")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Application{}, models.Credential{}, ErrApplicationAlreadyExists
		}
		return models.Application{}, models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err = tx.ExecContext(ctx, `INSERT INTO application_configs (application_id) VALUES ($1)`, saved.ApplicationID); err != nil {
		log.Err(err).Str("func", "*applicationRepository.Register").Msg("error inserting empty configuration row")
		return models.Application{}, models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	credential.ApplicationID = saved.ApplicationID
	credential.Code = saved.Code
	issued, err := insertCredential(ctx, tx, credential)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.Register").Msg("error inserting credential")
		return models.Application{}, models.Credential{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "*applicationRepository.Register").
			Bool("retryable", r.db.retryable(err)).
			Msg("error committing registration")
		return models.Application{}, models.Credential{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, issued, nil
}

// GetByCode returns the application with the given code, active or not.
func (r *applicationRepository) GetByCode(ctx context.Context, code string) (models.Application, error) {
	query, args, err := psql.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return models.Application{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var app models.Application
	if err = sqlscan.Get(ctx, r.db, &app, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return models.Application{}, ErrApplicationNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*applicationRepository.GetByCode").
			Str("code", code).
			Bool("retryable", r.db.retryable(err)).
			Msg("error selecting application")
		return models.Application{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return app, nil
}
