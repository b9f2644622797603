package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"qrlinx/internal/config"
	"qrlinx/internal/model"
)

// ErrConfirmationPending is returned by SignUp when the account exists
// but no session was issued until the email is confirmed
var ErrConfirmationPending = errors.New("account created, confirm your email to sign in")

// ProviderError is a rejection from the auth provider
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// GoTrue is a minimal client of the Supabase auth REST API
type GoTrue struct {
	baseURL string
	apiKey  string
	http    *http.Client
	tokens  *TokenParser
	now     func() time.Time
}

// NewGoTrue creates a new GoTrue client
func NewGoTrue(cfg *config.SupabaseConfig, timeout time.Duration) *GoTrue {
	return &GoTrue{
		baseURL: strings.TrimRight(cfg.URL, "/") + "/auth/v1",
		apiKey:  cfg.AnonKey,
		http:    &http.Client{Timeout: timeout},
		tokens:  NewTokenParser(cfg.JWTSecret),
		now:     time.Now,
	}
}

type tokenResponse struct {
	AccessToken  string      `json:"access_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int64       `json:"expires_in"`
	ExpiresAt    int64       `json:"expires_at"`
	RefreshToken string      `json:"refresh_token"`
	User         *model.User `json:"user"`

	// signup without session answers with the bare user
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SignIn exchanges email and password for a session
func (g *GoTrue) SignIn(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	var resp tokenResponse
	if err := g.do(ctx, http.MethodPost, "/token?grant_type=password", "", creds, &resp); err != nil {
		return nil, err
	}
	return g.toSession(&resp)
}

// SignUp registers a new account. When email confirmation is required no
// session is issued and ErrConfirmationPending is returned.
func (g *GoTrue) SignUp(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	var resp tokenResponse
	if err := g.do(ctx, http.MethodPost, "/signup", "", creds, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, ErrConfirmationPending
	}
	return g.toSession(&resp)
}

// ResetPassword sends a password reset email
func (g *GoTrue) ResetPassword(ctx context.Context, req model.PasswordResetRequest) error {
	path := "/recover"
	if req.RedirectTo != "" {
		path += "?redirect_to=" + url.QueryEscape(req.RedirectTo)
	}
	return g.do(ctx, http.MethodPost, path, "", map[string]string{"email": req.Email}, nil)
}

// SignOut revokes the session's refresh tokens
func (g *GoTrue) SignOut(ctx context.Context, accessToken string) error {
	return g.do(ctx, http.MethodPost, "/logout", accessToken, nil, nil)
}

func (g *GoTrue) toSession(resp *tokenResponse) (*model.Session, error) {
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("%w: empty access token", ErrInvalidToken)
	}

	user, tokenExp, err := g.tokens.Parse(resp.AccessToken)
	if err != nil {
		return nil, err
	}
	if resp.User != nil && resp.User.ID != "" {
		user = *resp.User
	}

	s := &model.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		User:         user,
	}
	switch {
	case resp.ExpiresAt > 0:
		s.ExpiresAt = time.Unix(resp.ExpiresAt, 0)
	case resp.ExpiresIn > 0:
		s.ExpiresAt = g.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	default:
		s.ExpiresAt = tokenExp
	}
	return s, nil
}

func (g *GoTrue) do(ctx context.Context, method, path, bearer string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("apikey", g.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read auth response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ProviderError{Status: resp.StatusCode, Message: providerMessage(raw, resp.StatusCode)}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode auth response: %w", err)
	}
	return nil
}

// providerMessage picks the first human-readable field GoTrue populated
func providerMessage(raw []byte, status int) string {
	var body struct {
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		Error            string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, m := range []string{body.ErrorDescription, body.Msg, body.Message, body.Error} {
			if m != "" {
				return m
			}
		}
	}
	return http.StatusText(status)
}
