package handler

import (
	"context"

	"qrlinx/internal/model"
)

// SessionProvider defines the auth operations exposed over HTTP
type SessionProvider interface {
	SignIn(ctx context.Context, creds model.Credentials) (*model.Session, error)
	SignUp(ctx context.Context, creds model.Credentials) (*model.Session, error)
	ResetPassword(ctx context.Context, req model.PasswordResetRequest) error
	SignOut(ctx context.Context) error
	Session() *model.Session
}
