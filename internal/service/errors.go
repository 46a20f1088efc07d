package service

import "errors"

var (
	ErrMissingField = errors.New("required field is missing")
	ErrInvalidInput = errors.New("invalid input provided")

	// ErrInvalidCredentials collapses unknown-username and wrong-password
	// failures into a single indistinguishable error so callers cannot
	// enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrNotAdminToken           = errors.New("token does not carry the admin role")

	// ErrInvalidColor is returned when a box color outside the allowed
	// enum (green, black, green-black) is submitted.
	ErrInvalidColor = errors.New("invalid color: must be 'green', 'black', or 'green-black'")

	// ErrNoValidSettings is returned when a login-page text update contains
	// no allow-listed keys after filtering.
	ErrNoValidSettings = errors.New("no valid settings provided")
)
