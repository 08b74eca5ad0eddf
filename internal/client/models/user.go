// Package models defines the wire types exchanged with the notes backend.
package models

// User is the identity record as returned by the backend. Timestamps are
// kept as the backend's literal strings; the client never interprets them.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Credentials is the request body for /register and /login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the /login success body.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
}
