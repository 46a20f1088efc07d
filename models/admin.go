package models

import "time"

// Admin represents an administrator account. Admins manage users, credits,
// and the shared display settings; they hold no credit balance themselves.
type Admin struct {
	// ID is the internal unique identifier of the administrator.
	ID int64 `json:"id"`

	// Username is the unique administrator login identifier.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the administrator's password.
	// It is never exposed via JSON and never holds plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// AdminInfo is the public projection of an Admin returned by the login
// endpoint. Field names match the wire contract of the admin login response.
type AdminInfo struct {
	AdminID       int64  `json:"adminId"`
	AdminUsername string `json:"adminUsername"`
}

// Info returns the public projection of the admin.
func (a Admin) Info() AdminInfo {
	return AdminInfo{AdminID: a.ID, AdminUsername: a.Username}
}

// TableName returns the name of the database table
// associated with the Admin model.
func (a Admin) TableName() string {
	return "admins"
}
