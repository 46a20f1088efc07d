package models

import "time"

// User represents a player account managed by administrators.
// It contains identity attributes, credential data, and the credit balance
// consumed by box selections.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login identifier.
	// Uniqueness is case-insensitive at the persistence layer.
	Username string `json:"username"`

	// Email is the address used for selection confirmation messages.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never exposed via JSON and never holds plaintext.
	PasswordHash string `json:"-"`

	// Credits is the current credit balance. One credit is consumed per
	// selected box. The balance is never allowed to go below zero.
	Credits int64 `json:"credits"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
