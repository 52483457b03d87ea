package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a user with the same username
	// is already registered.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a user lookup matches no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrAuthorNotFound is returned when a tweet references a user that does
	// not exist (foreign key violation).
	ErrAuthorNotFound = errors.New("author not found")

	// ErrTweetNotFound is returned when a tweet lookup matches no row.
	ErrTweetNotFound = errors.New("tweet not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with the
	// query builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects a statement for
	// a reason no repository maps to a domain error.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrUnsupportedDSN is returned when the configured DSN is empty.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
