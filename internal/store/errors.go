package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrExchangeAlreadyExists is returned when an exchange with the same ID
	// has already been stored.
	ErrExchangeAlreadyExists = errors.New("exchange already exists")

	// ErrExchangeNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrExchangeNotSaved = errors.New("exchange was not saved")

	// ErrNilDB is returned when a storage component is built without a
	// database connection.
	ErrNilDB = errors.New("db is nil")

	// ErrUnknownDialect is returned for a dialect other than postgres or sqlite3.
	ErrUnknownDialect = errors.New("unknown sql dialect")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan exchange row")
)
