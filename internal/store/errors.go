package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a new
	// user fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrAdminAlreadyExists is returned when an attempt to create a new
	// admin fails because an admin with the same username already exists.
	ErrAdminAlreadyExists = errors.New("admin username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoAdminWasFound is returned when a query expected to match at least
	// one admin record produces an empty result set.
	ErrNoAdminWasFound = errors.New("no admin was found")

	// ErrNoBoxWasFound is returned when a lookup targets a mystery box that
	// does not exist in the database.
	ErrNoBoxWasFound = errors.New("no box was found")

	// ErrBoxUnavailable is returned by the selection workflow when at least
	// one requested box does not exist or is already selected by a user.
	// The whole selection is rolled back; no box changes ownership and no
	// credits are deducted.
	ErrBoxUnavailable = errors.New("box is unavailable for selection")

	// ErrInsufficientCredits is returned by the selection workflow when the
	// user's balance would drop below zero. The whole selection is rolled
	// back; no box changes ownership and no credits are deducted.
	ErrInsufficientCredits = errors.New("insufficient credits for selection")

	// ErrNoSettingWasFound is returned when a global setting lookup matches
	// no row. Callers decide whether a default applies.
	ErrNoSettingWasFound = errors.New("no setting was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrStoreUnavailable wraps driver errors classified as retryable
	// (connection loss, deadlock, serialization failure). The service itself
	// performs no retries; callers may retry with backoff.
	ErrStoreUnavailable = errors.New("credential store unavailable")
)
