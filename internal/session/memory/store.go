package memory

import (
	"context"
	"sync"

	"github.com/sibro/pawhaven/internal/dependencies/clock"
	"github.com/sibro/pawhaven/internal/dependencies/random"
	"github.com/sibro/pawhaven/internal/session"
)

// Store is an in-process implementation of the session store.
// Expiry is lazy: an expired session is removed when Resolve sees it.
type Store struct {
	clock clock.Clock
	rnd   random.Random
	cfg   session.Config

	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// New creates a new in-memory session store
func New(clk clock.Clock, rnd random.Random, cfg session.Config) *Store {
	if cfg.TTL == 0 {
		cfg = session.DefaultConfig()
	}
	return &Store{
		clock:    clk,
		rnd:      rnd,
		cfg:      cfg,
		sessions: make(map[string]*session.Session),
	}
}

// Ensure Store implements the interface
var _ session.Store = (*Store)(nil)

func (s *Store) Create(_ context.Context) (*session.Session, error) {
	now := s.clock.Now()
	sess := &session.Session{
		Token:     session.NewToken(s.rnd),
		Role:      session.RoleAnonymous,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TTL),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	copied := *sess
	return &copied, nil
}

func (s *Store) Resolve(_ context.Context, token string) (*session.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, session.ErrSessionNotFound
	}

	if s.clock.Now().After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, session.ErrSessionNotFound
	}

	copied := *sess
	return &copied, nil
}

func (s *Store) Save(_ context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.Token]; !ok {
		return session.ErrSessionNotFound
	}
	copied := *sess
	s.sessions[sess.Token] = &copied
	return nil
}

func (s *Store) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// PurgeExpired removes expired sessions (call periodically)
func (s *Store) PurgeExpired() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
