package models

// Response is the uniform success envelope returned by the API.
// Message carries a human-readable confirmation, Data the payload rows.
type Response struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the uniform failure envelope returned by the API.
// The error text never includes internal details or stack traces.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// UserLoginResponse is returned by the user login endpoint: the full user
// record (minus credentials) plus a signed session token.
type UserLoginResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// AdminLoginResponse is returned by the admin login endpoint. Only the
// public admin projection is exposed.
type AdminLoginResponse struct {
	Message string    `json:"message"`
	Admin   AdminInfo `json:"admin"`
	Token   string    `json:"token"`
}

// ColorResponse is returned by the box-color read endpoint.
type ColorResponse struct {
	Message string `json:"message"`
	Color   string `json:"color"`
}
