// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, password hashing, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AdminIDCtxKey is the key used to store the authenticated administrator's
// identifier in the context. Populated by the admin authorization middleware
// after a token carrying the admin role has been validated.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AdminIDCtxKey, int64(7))
var AdminIDCtxKey = contextKey("adminID")

// UserIDCtxKey is the key used to store the authenticated user's identifier
// in the context.
var UserIDCtxKey = contextKey("userID")

// GetAdminIDFromContext retrieves the administrator identifier from the
// context.
//
// Returns the admin ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetAdminIDFromContext(ctx context.Context) (int64, bool) {
	adminID, ok := ctx.Value(AdminIDCtxKey).(int64)
	return adminID, ok
}

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag mirroring
// [GetAdminIDFromContext].
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
