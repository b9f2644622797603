package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"qrlinx/internal/config"
	"qrlinx/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// SessionKey is the Redis key holding the signed-in session
	SessionKey = "qrlinx:session"
	// DefaultSessionTTL applies when the config leaves it unset
	DefaultSessionTTL = 7 * 24 * time.Hour
)

// SessionStore persists the auth session in Redis
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new Redis-backed session store
func NewSessionStore(cfg *config.RedisConfig) *SessionStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis, sessions will not survive restarts")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return newSessionStore(rdb, cfg.SessionTTL)
}

func newSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl, now: time.Now}
}

// Save stores the session. The key never outlives the access token.
func (s *SessionStore) Save(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := s.ttl
	if !session.ExpiresAt.IsZero() {
		if left := session.ExpiresAt.Sub(s.now()); left < ttl {
			ttl = left
		}
	}
	if ttl <= 0 {
		return s.Delete(ctx)
	}

	return s.client.Set(ctx, SessionKey, data, ttl).Err()
}

// Load returns the stored session, or nil when there is none
func (s *SessionStore) Load(ctx context.Context) (*model.Session, error) {
	data, err := s.client.Get(ctx, SessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes the stored session
func (s *SessionStore) Delete(ctx context.Context) error {
	return s.client.Del(ctx, SessionKey).Err()
}

// Close closes the Redis connection
func (s *SessionStore) Close() error {
	return s.client.Close()
}
