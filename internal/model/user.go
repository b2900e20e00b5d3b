package model

// User represents a stored user record. The password is never kept in clear
// text; PasswordHash holds a bcrypt hash computed at creation time.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents a successful login response.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
