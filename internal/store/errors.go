package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrTxRecordNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrTxRecordNotSaved = errors.New("tx record was not saved")

	// ErrTxRecordNotFound is returned when an update targets an id that does
	// not exist.
	ErrTxRecordNotFound = errors.New("tx record was not found")

	// ErrDuplicateTxHash is returned when a transaction hash is journaled
	// twice.
	ErrDuplicateTxHash = errors.New("tx hash already journaled")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan tx journal rows")
)
