package models

// LoginRequest represents admin credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"filled,email"`
	Password string `json:"password" validate:"filled"`
}

// AdminUser is the public view of the admin account
type AdminUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresIn int64     `json:"expires_in"`
	User      AdminUser `json:"user"`
}

// AdminSession is attached to the request context by the auth middleware
type AdminSession struct {
	Email     string
	Name      string
	TokenID   string
	ExpiresAt int64
}
