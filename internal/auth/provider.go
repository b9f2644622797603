package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"qrlinx/internal/model"

	"github.com/rs/zerolog/log"
)

// ErrNotSignedIn is returned by operations that need a session
var ErrNotSignedIn = errors.New("not signed in")

// Event is a session change notification
type Event string

const (
	EventSignedIn  Event = "signed_in"
	EventSignedOut Event = "signed_out"
	EventRestored  Event = "restored"
)

// Listener receives session changes. session is nil on EventSignedOut.
type Listener func(event Event, session *model.Session)

// Authenticator is the remote auth provider
type Authenticator interface {
	SignIn(ctx context.Context, creds model.Credentials) (*model.Session, error)
	SignUp(ctx context.Context, creds model.Credentials) (*model.Session, error)
	ResetPassword(ctx context.Context, req model.PasswordResetRequest) error
	SignOut(ctx context.Context, accessToken string) error
}

// SessionStore persists the session across restarts
type SessionStore interface {
	Save(ctx context.Context, session *model.Session) error
	Load(ctx context.Context) (*model.Session, error)
	Delete(ctx context.Context) error
}

// Provider owns the current session and fans out changes to subscribers
type Provider struct {
	auth  Authenticator
	store SessionStore
	now   func() time.Time

	mu        sync.RWMutex
	session   *model.Session
	listeners map[uint64]Listener
	nextID    uint64
}

// NewProvider creates a new Provider. store may be nil.
func NewProvider(auth Authenticator, store SessionStore) *Provider {
	return &Provider{
		auth:      auth,
		store:     store,
		now:       time.Now,
		listeners: make(map[uint64]Listener),
	}
}

// Subscription is the handle returned by Subscribe
type Subscription struct {
	provider *Provider
	id       uint64
	once     sync.Once
}

// Unsubscribe stops delivery to the listener. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.provider == nil {
		return
	}
	s.once.Do(func() {
		s.provider.mu.Lock()
		delete(s.provider.listeners, s.id)
		s.provider.mu.Unlock()
	})
}

// Subscribe registers a listener for session changes
func (p *Provider) Subscribe(l Listener) *Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	p.listeners[p.nextID] = l
	return &Subscription{provider: p, id: p.nextID}
}

// Session returns the current session, or nil when signed out
func (p *Provider) Session() *model.Session {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.session == nil {
		return nil
	}
	s := *p.session
	return &s
}

// Restore loads a persisted session. Expired sessions are discarded.
func (p *Provider) Restore(ctx context.Context) (*model.Session, error) {
	if p.store == nil {
		return nil, nil
	}

	s, err := p.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if s.Expired(p.now()) {
		log.Info().Str("owner_id", s.OwnerID()).Msg("Stored session expired")
		if err := p.store.Delete(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to delete expired session")
		}
		return nil, nil
	}

	p.set(EventRestored, s)
	return s, nil
}

// SignIn authenticates with email and password
func (p *Provider) SignIn(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	s, err := p.auth.SignIn(ctx, creds)
	if err != nil {
		return nil, err
	}
	p.persist(ctx, s)
	p.set(EventSignedIn, s)
	return s, nil
}

// SignUp registers an account; ErrConfirmationPending means no session yet
func (p *Provider) SignUp(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	s, err := p.auth.SignUp(ctx, creds)
	if err != nil {
		return nil, err
	}
	p.persist(ctx, s)
	p.set(EventSignedIn, s)
	return s, nil
}

// ResetPassword sends a password reset email
func (p *Provider) ResetPassword(ctx context.Context, req model.PasswordResetRequest) error {
	return p.auth.ResetPassword(ctx, req)
}

// SignOut ends the session locally even if the remote revoke fails
func (p *Provider) SignOut(ctx context.Context) error {
	current := p.Session()
	if current == nil {
		return ErrNotSignedIn
	}

	if err := p.auth.SignOut(ctx, current.AccessToken); err != nil {
		log.Warn().Err(err).Str("owner_id", current.OwnerID()).Msg("Remote sign-out failed")
	}
	if p.store != nil {
		if err := p.store.Delete(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to delete stored session")
		}
	}

	p.set(EventSignedOut, nil)
	return nil
}

func (p *Provider) persist(ctx context.Context, s *model.Session) {
	if p.store == nil {
		return
	}
	if err := p.store.Save(ctx, s); err != nil {
		log.Warn().Err(err).Str("owner_id", s.OwnerID()).Msg("Failed to persist session")
	}
}

func (p *Provider) set(event Event, s *model.Session) {
	p.mu.Lock()
	p.session = s
	listeners := make([]Listener, 0, len(p.listeners))
	for _, l := range p.listeners {
		listeners = append(listeners, l)
	}
	p.mu.Unlock()

	log.Info().Str("event", string(event)).Str("owner_id", s.OwnerID()).Msg("Session changed")

	for _, l := range listeners {
		l(event, s)
	}
}
