package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, search, and credit mutations
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → classified and wrapped.
//   - Scan failure → wrapped with [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.PasswordHash, user.Email, user.Credits)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, r.db.wrapDriverError(err)
		}
	}

	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Credits, &user.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// FindUserByUsername retrieves the user whose username matches the given one,
// compared case-insensitively (exact match, not substring).
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	if err := row.Scan(&foundUser.ID, &foundUser.Username, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Credits, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, r.db.wrapDriverError(err)
	}

	return foundUser, nil
}

// GetUser retrieves a user by primary key.
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, getUserByID, userID)

	if err := row.Scan(&foundUser.ID, &foundUser.Username, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Credits, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.GetUser").Int64("user_id", userID).Msg("error: scanning error")
		return models.User{}, r.db.wrapDriverError(err)
	}

	return foundUser, nil
}

// GetAllUsers retrieves every user record ordered by ID.
//
// The read is unpaginated; acceptable only at the current small scale.
// Returns an empty slice when the table is empty.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("failed to execute query for getting all users")
		return nil, r.db.wrapDriverError(err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// SearchUsersByUsername retrieves users whose username contains the given
// term, compared case-insensitively.
func (r *userRepository) SearchUsersByUsername(ctx context.Context, term string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchUsersQuery(term)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SearchUsersByUsername").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SearchUsersByUsername").Str("term", term).Msg("failed to execute search query")
		return nil, r.db.wrapDriverError(err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// DeleteUser removes a user record by primary key.
//
// Returns [ErrNoUserWasFound] when no row was deleted.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("failed to execute delete")
		return r.db.wrapDriverError(err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// UpdateUserCredits overwrites the user's credit balance unconditionally
// (no optimistic concurrency — last writer wins) and returns the updated row.
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) UpdateUserCredits(ctx context.Context, userID int64, credits int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var updatedUser models.User
	row := r.db.QueryRowContext(ctx, updateUserCredits, userID, credits)

	if err := row.Scan(&updatedUser.ID, &updatedUser.Username, &updatedUser.Email, &updatedUser.PasswordHash, &updatedUser.Credits, &updatedUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUserCredits").Int64("user_id", userID).Msg("error: scanning error")
		return models.User{}, r.db.wrapDriverError(err)
	}

	return updatedUser, nil
}

// scanUsers drains a user result set into a slice, normalising scan and
// iteration failures to the package sentinels.
func scanUsers(rows *sql.Rows) ([]models.User, error) {
	results := make([]models.User, 0, 16)

	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Credits, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}
