package model

import (
	"time"
)

// User is the authenticated identity
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is an authenticated session issued by the auth provider
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         User      `json:"user"`
}

// Expired reports whether the access token is past its expiry
func (s *Session) Expired(now time.Time) bool {
	if s == nil {
		return true
	}
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// OwnerID returns the opaque owner identity used to scope links
func (s *Session) OwnerID() string {
	if s == nil {
		return ""
	}
	return s.User.ID
}

// Credentials are the email/password pair submitted by the auth form
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PasswordResetRequest asks the provider to email a reset link
type PasswordResetRequest struct {
	Email      string `json:"email" binding:"required,email"`
	RedirectTo string `json:"redirect_to"`
}
