package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/internal/store"
	"github.com/pmarkota/mystery-back/internal/utils"
	"github.com/pmarkota/mystery-back/models"
)

// userDirectoryService is the concrete implementation of UserDirectoryService.
// All of its operations are admin-facing; identifier parameters arrive as raw
// strings taken from URL paths and are parsed and validated here.
type userDirectoryService struct {
	// userRepository is the data-access layer for user accounts.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserDirectoryService constructs a UserDirectoryService backed by the
// given UserRepository.
func NewUserDirectoryService(userRepository store.UserRepository, logger *logger.Logger) UserDirectoryService {
	return &userDirectoryService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// CreateUser registers a new user account with a bcrypt-hashed password and
// the given starting credit balance.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrMissingField if username, password, or email is empty.
//   - ErrInvalidInput if credits is negative.
//   - store.ErrUsernameAlreadyExists (wrapped) if the username is taken.
func (u *userDirectoryService) CreateUser(ctx context.Context, username, password, email string, credits int64) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" || email == "" {
		log.Error().Str("func", "CreateUser").Msg("empty username, password or email")
		return models.User{}, ErrMissingField
	}
	if credits < 0 {
		log.Error().Int64("credits", credits).Msg("negative starting credits")
		return models.User{}, ErrInvalidInput
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user password hashing failed")
		return models.User{}, fmt.Errorf("user password hashing failed: %w", err)
	}

	createdUser, err := u.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Credits:      credits,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// GetUser looks up a single user by their raw string identifier.
//
// The result is a slice holding either the one matching user or nothing:
// an unknown identifier yields an empty slice rather than an error, so the
// caller can serialise the outcome uniformly as a list.
//
// Returns ErrInvalidInput if rawID is not a positive integer.
func (u *userDirectoryService) GetUser(ctx context.Context, rawID string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	userID, err := parseID(rawID)
	if err != nil {
		log.Error().Str("rawID", rawID).Msg("invalid user id")
		return nil, ErrInvalidInput
	}

	foundUser, err := u.userRepository.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return []models.User{}, nil
		}
		log.Err(err).Int64("id", userID).Msg("user lookup by id failed")
		return nil, fmt.Errorf("user lookup by id failed: %w", err)
	}

	return []models.User{foundUser}, nil
}

// GetAllUsers returns every user account ordered by identifier.
func (u *userDirectoryService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing all users failed")
		return nil, fmt.Errorf("listing all users failed: %w", err)
	}

	return users, nil
}

// SearchUsersByUsername returns every user whose username contains term,
// case-insensitively. An empty result is returned as an empty slice, not an
// error.
//
// Returns ErrMissingField if term is empty or whitespace-only.
func (u *userDirectoryService) SearchUsersByUsername(ctx context.Context, term string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	term = strings.TrimSpace(term)
	if term == "" {
		log.Error().Str("func", "SearchUsersByUsername").Msg("empty search term")
		return nil, ErrMissingField
	}

	users, err := u.userRepository.SearchUsersByUsername(ctx, term)
	if err != nil {
		log.Err(err).Str("term", term).Msg("user search failed")
		return nil, fmt.Errorf("user search failed: %w", err)
	}

	return users, nil
}

// DeleteUser removes the user with the given raw string identifier.
// Boxes previously selected by the user revert to unselected via the
// store's foreign-key behaviour.
//
// Returns:
//   - ErrInvalidInput if rawID is not a positive integer.
//   - store.ErrNoUserWasFound (wrapped) if no such user exists.
func (u *userDirectoryService) DeleteUser(ctx context.Context, rawID string) error {
	log := logger.FromContext(ctx)

	userID, err := parseID(rawID)
	if err != nil {
		log.Error().Str("rawID", rawID).Msg("invalid user id")
		return ErrInvalidInput
	}

	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

// UpdateUserCredits sets the user's credit balance to the given absolute
// value and returns the updated record.
//
// Returns:
//   - ErrInvalidInput if rawID is not a positive integer or credits is
//     negative.
//   - store.ErrNoUserWasFound (wrapped) if no such user exists.
func (u *userDirectoryService) UpdateUserCredits(ctx context.Context, rawID string, credits int64) (models.User, error) {
	log := logger.FromContext(ctx)

	userID, err := parseID(rawID)
	if err != nil {
		log.Error().Str("rawID", rawID).Msg("invalid user id")
		return models.User{}, ErrInvalidInput
	}
	if credits < 0 {
		log.Error().Int64("credits", credits).Msg("negative credit balance")
		return models.User{}, ErrInvalidInput
	}

	updatedUser, err := u.userRepository.UpdateUserCredits(ctx, userID, credits)
	if err != nil {
		log.Err(err).Int64("id", userID).Int64("credits", credits).Msg("credit update failed")
		return models.User{}, fmt.Errorf("credit update failed: %w", err)
	}

	return updatedUser, nil
}

// parseID converts a raw path segment into a positive int64 identifier.
func parseID(rawID string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing identifier %q: %w", rawID, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("identifier must be positive, got %d", id)
	}

	return id, nil
}
