package session

import (
	"context"
	"errors"
	"time"

	"github.com/sibro/pawhaven/internal/dependencies/random"
	"github.com/sibro/pawhaven/internal/model"
)

// Errors
var (
	ErrSessionNotFound = errors.New("session not found or expired")
)

// TokenLength is the length of opaque session tokens
const TokenLength = 32

// Role tags a session with the identity kind it carries.
// A single tag (rather than two independent optional fields) makes the
// mutual-exclusion invariant structural: a session is anonymous, a
// user, or an admin, never two at once.
type Role string

const (
	RoleAnonymous Role = ""
	RoleUser      Role = model.RoleUser
	RoleAdmin     Role = model.RoleAdmin
)

// Session is the server-side record associated with a client via an
// opaque cookie token
type Session struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`

	// Populated when Role == RoleUser
	Email string `json:"email,omitempty"`

	// Populated when Role == RoleAdmin
	AdminID  model.AdminID `json:"admin_id,omitempty"`
	Username string        `json:"username,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SetUser populates the user identity, clearing any admin identity
func (s *Session) SetUser(email string) {
	s.Role = RoleUser
	s.Email = email
	s.AdminID = 0
	s.Username = ""
}

// SetAdmin populates the admin identity, clearing any user identity
func (s *Session) SetAdmin(id model.AdminID, username string) {
	s.Role = RoleAdmin
	s.AdminID = id
	s.Username = username
	s.Email = ""
}

// IsUser reports whether the session carries a user identity
func (s *Session) IsUser() bool {
	return s != nil && s.Role == RoleUser
}

// IsAdmin reports whether the session carries an admin identity
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// Store defines the interface for session persistence.
// Implementations must be safe for concurrent use by independent
// requests; a single session is only mutated by the request owning it.
type Store interface {
	// Create allocates an anonymous session with a fresh unguessable token
	Create(ctx context.Context) (*Session, error)

	// Resolve looks up a session by token.
	// Returns ErrSessionNotFound for unknown, expired or destroyed tokens.
	Resolve(ctx context.Context, token string) (*Session, error)

	// Save persists mutations made to a previously created session
	Save(ctx context.Context, session *Session) error

	// Destroy removes the session; subsequent Resolve returns ErrSessionNotFound
	Destroy(ctx context.Context, token string) error
}

// Config holds session lifecycle settings
type Config struct {
	// TTL is the session lifetime. The reference behavior had no expiry
	// at all; here it is an explicit knob instead of an accident of
	// process lifetime.
	TTL time.Duration
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		TTL: 24 * time.Hour,
	}
}

// NewToken generates an opaque session token from the given source
func NewToken(rnd random.Random) string {
	return rnd.String(TokenLength, random.TokenAlphabet)
}
