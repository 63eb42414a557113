package store

import "errors"

// Sentinel errors returned by the store. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrReadFailed is returned when any chunk of a bulk read fails. No
	// partial result accompanies it.
	ErrReadFailed = errors.New("read failed")

	// ErrCommitFailed is returned when a write transaction was not applied.
	ErrCommitFailed = errors.New("commit failed")

	// ErrTooManyKeys is returned by a backend asked for more keys in one
	// GetMany call than it accepts.
	ErrTooManyKeys = errors.New("too many keys in one read")

	// ErrUnsupportedBackend is returned for a DSN with an unknown scheme.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")

	// ErrInvalidDSN is returned for a DSN whose location part the backend
	// cannot use, such as a relative path parsed as a host.
	ErrInvalidDSN = errors.New("invalid storage dsn")

	// ErrTransactionDone is returned when a transaction is committed twice.
	ErrTransactionDone = errors.New("transaction already committed")
)

// Low-level database operation errors of the SQL backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an upsert fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning rows of a bulk read fails.
	ErrScanningRows = errors.New("failed to scan conf entry rows")
)
