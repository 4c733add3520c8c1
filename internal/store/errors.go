package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrApplicationNotFound is returned when no application has the
	// requested code.
	ErrApplicationNotFound = errors.New("application was not found")

	// ErrApplicationAlreadyExists is returned when registering a code that is
	// already taken.
	ErrApplicationAlreadyExists = errors.New("application already exists")

	// ErrCredentialNotFound is returned when a code has no active credential.
	ErrCredentialNotFound = errors.New("active credential was not found")

	// ErrActiveCredentialExists is returned when a second active credential
	// would be created for a code, or an access token fingerprint collides
	// with another active credential.
	ErrActiveCredentialExists = errors.New("active credential already exists")

	// ErrApplicationConfigNotFound is returned when an application has no
	// configuration row.
	ErrApplicationConfigNotFound = errors.New("application configuration was not found")

	// ErrCompanyOverrideNotFound is returned when an override key does not
	// exist for a company and application.
	ErrCompanyOverrideNotFound = errors.New("company override was not found")

	// ErrUnknownColumn is returned when a patch names a column that is not a
	// setting column of the application configuration row.
	ErrUnknownColumn = errors.New("unknown application configuration column")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a statement
	// with a RETURNING clause fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// without a result set fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
