package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/sibro/pawhaven/internal/dependencies/clock"
	"github.com/sibro/pawhaven/internal/model"
	"github.com/sibro/pawhaven/internal/session"
	"github.com/sibro/pawhaven/internal/storage"
)

// Errors
var (
	// ErrInvalidCredentials covers both unknown-username and
	// wrong-password so callers cannot reveal which field was wrong
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAdminExists means bootstrap was attempted after an admin
	// account already existed
	ErrAdminExists = errors.New("an admin account already exists")
)

// Config holds configuration for the auth service
type Config struct {
	// BcryptCost is the bcrypt work factor for new password hashes
	BcryptCost int
}

// DefaultConfig returns default auth configuration.
// Cost 10 matches the work factor the admin hashes were created with.
func DefaultConfig() Config {
	return Config{
		BcryptCost: 10,
	}
}

// Service handles credential verification and the login/logout protocol
type Service struct {
	store    storage.Store
	sessions session.Store
	clock    clock.Clock
	logger   *slog.Logger

	bcryptCost int
}

// New creates a new auth Service
func New(store storage.Store, sessions session.Store, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.BcryptCost == 0 {
		cfg = DefaultConfig()
	}
	return &Service{
		store:      store,
		sessions:   sessions,
		clock:      clk,
		logger:     logger,
		bcryptCost: cfg.BcryptCost,
	}
}

// HashPassword produces a salted bcrypt digest of the plaintext.
// bcrypt embeds a fresh salt per call, so two hashes of the same
// plaintext differ yet both verify.
func (s *Service) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword verifies the plaintext against a bcrypt digest.
// Any mismatch or malformed digest is a plain false, never an error
// the caller has to distinguish.
func (s *Service) CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// LoginUser establishes a user session for the given email.
//
// There is no user credential store: any email the handler accepted is
// trusted as-is. That is the observed behavior of the system this
// replaces (demo logins, no real user accounts), kept deliberately
// rather than silently adding verification.
func (s *Service) LoginUser(ctx context.Context, email string) (*session.Session, error) {
	sess, err := s.sessions.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	sess.SetUser(email)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.recordLogin(ctx, email, model.RoleUser)
	return sess, nil
}

// LoginAdmin verifies admin credentials and establishes an admin session.
// Unknown usernames and wrong passwords both come back as
// ErrInvalidCredentials; store failures propagate distinctly.
// No session exists on any failure path.
func (s *Service) LoginAdmin(ctx context.Context, username, password string) (*session.Session, error) {
	admin, err := s.store.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up admin: %w", err)
	}

	if !s.CheckPassword(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	sess.SetAdmin(admin.ID, admin.Username)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	// The audit row records the username in the email column,
	// matching the login_logs table shape
	s.recordLogin(ctx, admin.Username, model.RoleAdmin)
	return sess, nil
}

// Logout destroys the session for the given token
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// Resolve looks up the session for a request token
func (s *Service) Resolve(ctx context.Context, token string) (*session.Session, error) {
	return s.sessions.Resolve(ctx, token)
}

// BootstrapAdmin creates the first admin account.
// Refuses once any admin exists, so the bootstrap endpoint cannot be
// replayed to mint extra accounts.
func (s *Service) BootstrapAdmin(ctx context.Context, username, password string) (*model.AdminAccount, error) {
	count, err := s.store.CountAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &model.AdminAccount{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.store.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// recordLogin appends an audit row for a successful login.
// A failed append does not undo the login: there is no transaction
// spanning session creation and the audit insert, same as the system
// this replaces. The failure is logged and swallowed.
func (s *Service) recordLogin(ctx context.Context, email, role string) {
	record := &model.LoginRecord{
		Email:     email,
		Role:      role,
		LoginTime: s.clock.Now(),
	}
	if err := s.store.AppendLoginRecord(ctx, record); err != nil {
		s.logger.Warn("failed to append login record",
			slog.String("role", role),
			slog.String("error", err.Error()),
		)
	}
}
