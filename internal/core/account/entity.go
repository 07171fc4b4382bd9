package account

import (
	"strings"
	"time"

	"sunsip.app/pkg/validation"
)

// User is an account holder
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is an authenticated session
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired reports whether the session is no longer valid at now
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// AuthResult is returned after a successful sign up or sign in
type AuthResult struct {
	User    User    `json:"user"`
	Session Session `json:"session"`
}

// Credentials are the email and password submitted by a user
type Credentials struct {
	Email    string
	Password string
}

// Normalize trims and lowercases the email
func (c *Credentials) Normalize() {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
}

// FieldErrors validates the credentials and returns one message per bad field
func (c *Credentials) FieldErrors(minPasswordLength int) map[string]string {
	fields := make(map[string]string)
	switch {
	case c.Email == "":
		fields["email"] = "is required"
	case !validation.IsValidEmail(c.Email):
		fields["email"] = "must be a valid email address"
	}
	switch {
	case c.Password == "":
		fields["password"] = "is required"
	case len([]rune(c.Password)) < minPasswordLength:
		fields["password"] = "is too short"
	}
	return fields
}
