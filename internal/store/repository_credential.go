package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-chat-config/internal/logger"
	"github.com/MKhiriev/go-chat-config/models"
	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/jackc/pgerrcode"
)

var credentialColumns = []string{
	"credential_id",
	"application_id",
	"code",
	"access_token_hash",
	"secret_hash",
	"scopes",
	"active",
	"created_at",
	"expires_at",
}

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository] over the "credentials" table.
//
// The table carries two partial unique indexes: one active credential per
// code, and one active credential per access token fingerprint.
type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository].
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new active credential.
//
// Error handling:
//   - unique_violation (23505) → [ErrActiveCredentialExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *credentialRepository) Create(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	saved, err := insertCredential(ctx, r.db, credential)
	if err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.Create").
			Str("code", credential.Code).
			Bool("retryable", r.db.retryable(err)).
			Msg("error inserting credential")
		return models.Credential{}, err
	}

	return saved, nil
}

// GetActiveByCode returns the active credential of code.
func (r *credentialRepository) GetActiveByCode(ctx context.Context, code string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(credentialColumns...).
		From("credentials").
		Where(squirrel.Eq{"code": code}).
		Where("active").
		ToSql()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credential models.Credential
	if err = sqlscan.Get(ctx, r.db, &credential, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return models.Credential{}, ErrCredentialNotFound
		}
		log.Err(err).
			Str("func", "*credentialRepository.GetActiveByCode").
			Str("code", code).
			Bool("retryable", r.db.retryable(err)).
			Msg("error selecting active credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return credential, nil
}

// Deactivate switches off the active credential of code. It reports false
// when the code only has inactive credentials, and [ErrCredentialNotFound]
// when it has none at all.
func (r *credentialRepository) Deactivate(ctx context.Context, code string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("credentials").
		Set("active", false).
		Where(squirrel.Eq{"code": code}).
		Where("active").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.Deactivate").
			Str("code", code).
			Msg("error deactivating credential")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return true, nil
	}

	var exists bool
	if err = r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM credentials WHERE code = $1)`, code).Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.Deactivate").
			Str("code", code).
			Msg("error checking credential existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !exists {
		return false, ErrCredentialNotFound
	}

	return false, nil
}

// rotateLockAttempts bounds how often Rotate looks for the active row.
const rotateLockAttempts = 2

// Rotate replaces the active credential of code inside one transaction. The
// current row is locked with SELECT ... FOR UPDATE, deactivated, and the
// replacement is inserted with the same application and scopes before the
// commit, so readers see either the old or the new credential. Concurrent
// rotations of one code are serialized and both succeed.
func (r *credentialRepository) Rotate(ctx context.Context, code string, replacement models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Rotate").Msg("error beginning transaction")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	current, err := r.lockActive(ctx, tx, code)
	if err != nil {
		return models.Credential{}, err
	}

	if _, err = tx.ExecContext(ctx, `UPDATE credentials SET active = FALSE WHERE credential_id = $1`, current.CredentialID); err != nil {
		log.Err(err).Str("func", "*credentialRepository.Rotate").Str("code", code).Msg("error deactivating current credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	replacement.ApplicationID = current.ApplicationID
	replacement.Code = current.Code
	if replacement.Scopes == "" {
		replacement.Scopes = current.Scopes
	}

	saved, err := insertCredential(ctx, tx, replacement)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Rotate").Str("code", code).Msg("error inserting replacement credential")
		return models.Credential{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.Rotate").
			Str("code", code).
			Bool("retryable", r.db.retryable(err)).
			Msg("error committing rotation")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// lockActive selects the active credential of code FOR UPDATE inside tx.
// Under READ COMMITTED a select that waited on a concurrent rotation finds
// the old row deactivated and skips it, so the lookup is repeated with a
// fresh snapshot before giving up.
func (r *credentialRepository) lockActive(ctx context.Context, tx *sql.Tx, code string) (models.Credential, error) {
	query, args, err := psql.Select(credentialColumns...).
		From("credentials").
		Where(squirrel.Eq{"code": code}).
		Where("active").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		var current models.Credential
		err = sqlscan.Get(ctx, tx, &current, query, args...)
		switch {
		case err == nil:
			return current, nil
		case !sqlscan.NotFound(err):
			logger.FromContext(ctx).Err(err).
				Str("func", "*credentialRepository.lockActive").
				Str("code", code).
				Msg("error locking active credential")
			return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		case attempt >= rotateLockAttempts:
			return models.Credential{}, ErrCredentialNotFound
		}
	}
}

// ListExpiring returns active credentials whose expiry is not after before,
// soonest first.
func (r *credentialRepository) ListExpiring(ctx context.Context, before time.Time) ([]models.Credential, error) {
	query, args, err := psql.Select(credentialColumns...).
		From("credentials").
		Where("active").
		Where(squirrel.NotEq{"expires_at": nil}).
		Where(squirrel.LtOrEq{"expires_at": before}).
		OrderBy("expires_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credentials []models.Credential
	if err = sqlscan.Select(ctx, r.db, &credentials, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.ListExpiring").Msg("error selecting expiring credentials")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return credentials, nil
}

// insertCredential inserts credential through q, which is either the pool or
// an open transaction. Plain token and secret are carried over to the result.
func insertCredential(ctx context.Context, q sqlscan.Querier, credential models.Credential) (models.Credential, error) {
	query, args, err := psql.Insert("credentials").
		Columns("application_id", "code", "access_token_hash", "secret_hash", "scopes", "expires_at").
		Values(credential.ApplicationID, credential.Code, credential.AccessTokenHash, credential.SecretHash, credential.Scopes, credential.ExpiresAt).
		Suffix("RETURNING " + strings.Join(credentialColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Credential
	if err = sqlscan.Get(ctx, q, &saved, query, args...); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Credential{}, ErrActiveCredentialExists
		}
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	saved.AccessToken = credential.AccessToken
	saved.Secret = credential.Secret
	return saved, nil
}
