// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pmarkota/mystery-back/internal/config"
	"github.com/pmarkota/mystery-back/internal/logger"
	"github.com/pmarkota/mystery-back/internal/store"
	"github.com/pmarkota/mystery-back/internal/utils"
	"github.com/pmarkota/mystery-back/models"
)

// authService is the concrete implementation of AuthService.
// It verifies user and admin credentials against their repositories using
// bcrypt and manages the JWT session-token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to look up user accounts.
	userRepository store.UserRepository

	// adminRepository is the data-access layer used to create and look up
	// administrator accounts.
	adminRepository store.AdminRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bootstrap holds the initial administrator credentials applied once at
	// startup when the admins table is empty.
	bootstrap config.Bootstrap

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, adminRepository store.AdminRepository, cfg config.App, bootstrap config.Bootstrap, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		adminRepository: adminRepository,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		bootstrap:       bootstrap,
		logger:          logger,
	}
}

// LoginUser authenticates a user by username and password and issues a
// session token.
//
// Unknown usernames and wrong passwords are both reported as
// ErrInvalidCredentials so the response does not reveal which accounts exist.
// The issued token carries the user role plus a username/email/credits
// snapshot taken at login time.
//
// Returns the authenticated user and the signed token, or:
//   - ErrMissingField if username or password is empty.
//   - ErrInvalidCredentials if the account is unknown or the password is wrong.
//   - A wrapped storage error for any other repository failure.
func (a *authService) LoginUser(ctx context.Context, username, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("func", "LoginUser").Msg("empty username or password")
		return models.User{}, models.Token{}, ErrMissingField
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("username", username).Msg("login attempt for unknown user")
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user lookup by username failed")
		return models.User{}, models.Token{}, fmt.Errorf("user lookup by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, password) {
		log.Warn().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.createToken(foundUser.ID, models.SessionClaims{
		Role:     models.RoleUser,
		Username: foundUser.Username,
		Email:    foundUser.Email,
		Credits:  foundUser.Credits,
	})
	if err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("session token creation failed")
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// LoginAdmin authenticates an administrator by username and password and
// issues a session token carrying the admin role.
//
// Failure semantics match LoginUser: unknown admins and wrong passwords
// collapse to ErrInvalidCredentials.
func (a *authService) LoginAdmin(ctx context.Context, username, password string) (models.Admin, models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("func", "LoginAdmin").Msg("empty username or password")
		return models.Admin{}, models.Token{}, ErrMissingField
	}

	foundAdmin, err := a.adminRepository.FindAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoAdminWasFound) {
			log.Warn().Str("username", username).Msg("login attempt for unknown admin")
			return models.Admin{}, models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("admin lookup by username failed")
		return models.Admin{}, models.Token{}, fmt.Errorf("admin lookup by username failed: %w", err)
	}

	if !utils.CheckPassword(foundAdmin.PasswordHash, password) {
		log.Warn().Int64("id", foundAdmin.ID).Str("username", foundAdmin.Username).Msg("wrong admin password")
		return models.Admin{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.createToken(foundAdmin.ID, models.SessionClaims{
		Role:     models.RoleAdmin,
		Username: foundAdmin.Username,
	})
	if err != nil {
		log.Err(err).Int64("id", foundAdmin.ID).Msg("admin session token creation failed")
		return models.Admin{}, models.Token{}, err
	}

	return foundAdmin, token, nil
}

// CreateAdmin registers a new administrator account with a bcrypt-hashed
// password.
//
// Returns the persisted admin (with a server-assigned ID) or:
//   - ErrMissingField if username or password is empty.
//   - store.ErrAdminAlreadyExists (wrapped) if the username is taken.
func (a *authService) CreateAdmin(ctx context.Context, username, password string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("func", "CreateAdmin").Msg("empty username or password")
		return models.Admin{}, ErrMissingField
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("admin password hashing failed")
		return models.Admin{}, fmt.Errorf("admin password hashing failed: %w", err)
	}

	createdAdmin, err := a.adminRepository.CreateAdmin(ctx, models.Admin{
		Username:     username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("admin creation ended with error")
		return models.Admin{}, fmt.Errorf("admin creation ended with error: %w", err)
	}

	return createdAdmin, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// BootstrapAdmin creates the configured initial administrator when the
// admins table is empty.
//
// When bootstrap credentials are not configured, or at least one admin
// already exists, the call is a no-op. A concurrent-creation race resolving
// to store.ErrAdminAlreadyExists is also treated as success.
func (a *authService) BootstrapAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if a.bootstrap.AdminUsername == "" || a.bootstrap.AdminPassword == "" {
		log.Debug().Msg("bootstrap admin credentials not configured, skipping")
		return nil
	}

	count, err := a.adminRepository.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("counting admins for bootstrap failed: %w", err)
	}
	if count > 0 {
		return nil
	}

	createdAdmin, err := a.CreateAdmin(ctx, a.bootstrap.AdminUsername, a.bootstrap.AdminPassword)
	if err != nil {
		if errors.Is(err, store.ErrAdminAlreadyExists) {
			return nil
		}
		return fmt.Errorf("bootstrap admin creation failed: %w", err)
	}

	log.Info().Int64("id", createdAdmin.ID).Str("username", createdAdmin.Username).Msg("bootstrap admin created")
	return nil
}

// createToken issues a signed JWT for the given subject and claim set using
// the service's signing parameters.
func (a *authService) createToken(subjectID int64, claims models.SessionClaims) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, subjectID, claims, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error generating session token: %w", err)
	}

	return token, nil
}
