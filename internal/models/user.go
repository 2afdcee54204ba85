package models

// User represents a row in the users table. The password is stored and
// compared as plain text, and /signin echoes the full row back; both are
// part of the API contract this service preserves.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is the password-less projection returned by GET /users.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SignupRequest is the JSON body for POST /signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest is the JSON body for POST /signin.
type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
