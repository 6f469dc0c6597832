package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sibro/pawhaven/internal/dependencies/clock"
	"github.com/sibro/pawhaven/internal/dependencies/random"
	"github.com/sibro/pawhaven/internal/session"
)

// Key prefix for all session data
const keyPrefix = "pawhaven"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// Session holds the session lifecycle settings (TTL enforced by Redis)
	Session session.Config
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		Session:      session.DefaultConfig(),
	}
}

// Store is a Redis-backed implementation of the session store.
// Sessions are stored as JSON values; expiry is delegated to key TTL,
// so sessions survive process restarts but not their TTL.
type Store struct {
	client *redis.Client
	clock  clock.Clock
	rnd    random.Random
	cfg    Config
}

// New creates a Redis session store and verifies connectivity
func New(cfg Config, clk clock.Clock, rnd random.Random) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewWithClient(client, cfg, clk, rnd), nil
}

// NewWithClient creates a Redis session store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config, clk clock.Clock, rnd random.Random) *Store {
	if cfg.Session.TTL == 0 {
		cfg.Session = session.DefaultConfig()
	}
	return &Store{
		client: client,
		clock:  clk,
		rnd:    rnd,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements the interface
var _ session.Store = (*Store)(nil)

func (s *Store) Create(ctx context.Context) (*session.Session, error) {
	now := s.clock.Now()
	sess := &session.Session{
		Token:     session.NewToken(s.rnd),
		Role:      session.RoleAnonymous,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.Session.TTL),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}

	if err := s.client.Set(ctx, sessionKey(sess.Token), data, s.cfg.Session.TTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

func (s *Store) Resolve(ctx context.Context, token string) (*session.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrSessionNotFound
		}
		return nil, fmt.Errorf("fetch session: %w", err)
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *Store) Save(ctx context.Context, sess *session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	// SET XX + KEEPTTL: only update existing sessions and keep the
	// expiry set at creation time
	ok, err := s.client.SetXX(ctx, sessionKey(sess.Token), data, redis.KeepTTL).Result()
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if !ok {
		return session.ErrSessionNotFound
	}
	return nil
}

func (s *Store) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// sessionKey returns the Redis key for a session token
func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}
