package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Subject roles carried in session tokens. The role claim distinguishes
// user sessions from administrator sessions when authorizing requests.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// SessionClaims is the JWT claim set issued by the authentication service.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (sub, exp,
// iat, iss) and adds application claims. For user tokens, Username, Email
// and Credits carry a point-in-time snapshot taken at login; Credits in
// particular goes stale as soon as the user selects boxes and must never be
// used as an authorization check for credit-gated actions. Admin tokens
// carry only the role and the admin ID in the subject claim.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Role is either [RoleUser] or [RoleAdmin].
	Role string `json:"role"`

	// Username is the login name of the user at token issue time.
	Username string `json:"username,omitempty"`

	// Email is the user's email at token issue time.
	Email string `json:"email,omitempty"`

	// Credits is the user's credit balance at token issue time.
	// Stale thereafter; informational only.
	Credits int64 `json:"credits,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [SessionClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// stored on the client side.
//
// SubjectID is a cached, parsed copy of the "sub" claim converted to int64.
// Depending on Role it identifies either a user or an admin and avoids
// repeated string-to-int parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SessionClaims provides access to the application claim set.
	SessionClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// SubjectID is the identifier extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	SubjectID int64 `json:"-"`
}

// GetSubjectID extracts the identifier from the token's "sub" claim,
// parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetSubjectID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting subject from token: %w", err)
	}

	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting token subject to int64: %w", err)
	}

	return id, nil
}

// IsAdmin reports whether the token was issued for an administrator session.
func (t *Token) IsAdmin() bool {
	return t.Role == RoleAdmin
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
