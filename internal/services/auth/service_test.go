package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sibro/pawhaven/internal/dependencies/mocks"
	"github.com/sibro/pawhaven/internal/model"
	"github.com/sibro/pawhaven/internal/session"
	sessionmemory "github.com/sibro/pawhaven/internal/session/memory"
	"github.com/sibro/pawhaven/internal/storage/memory"
	"github.com/sibro/pawhaven/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store    *memory.Store
	sessions *sessionmemory.Store
	clock    *mocks.MockClock
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.sessions = sessionmemory.New(s.clock, mocks.NewMockRandom(), session.DefaultConfig())
	// Minimum cost keeps the hashing tests fast
	s.service = New(s.store, s.sessions, s.clock, Config{BcryptCost: 4}, testutil.NopLogger())
	s.ctx = context.Background()
}

// seedAdmin creates an admin account with a real hash of the given password
func (s *ServiceSuite) seedAdmin(username, password string) *model.AdminAccount {
	hash, err := s.service.HashPassword(password)
	s.Require().NoError(err)

	admin := &model.AdminAccount{Username: username, PasswordHash: hash, CreatedAt: s.clock.Now()}
	s.Require().NoError(s.store.CreateAdmin(s.ctx, admin))
	return admin
}

// Password verifier tests

func (s *ServiceSuite) TestHashVerifyRoundTrip() {
	hash, err := s.service.HashPassword("admin123")
	s.Require().NoError(err)
	s.NotEqual("admin123", hash)
	s.True(s.service.CheckPassword("admin123", hash))
}

func (s *ServiceSuite) TestHashIsSaltedPerCall() {
	first, err := s.service.HashPassword("admin123")
	s.Require().NoError(err)
	second, err := s.service.HashPassword("admin123")
	s.Require().NoError(err)

	s.NotEqual(first, second)
	s.True(s.service.CheckPassword("admin123", first))
	s.True(s.service.CheckPassword("admin123", second))
}

func (s *ServiceSuite) TestCheckPasswordNearMissFails() {
	password := "admin123"
	hash, err := s.service.HashPassword(password)
	s.Require().NoError(err)

	// Every single-character mutation must fail verification
	for i := 0; i < len(password); i++ {
		mutated := []byte(password)
		mutated[i]++
		s.False(s.service.CheckPassword(string(mutated), hash),
			"mutation at index %d should not verify", i)
	}
}

func (s *ServiceSuite) TestCheckPasswordMalformedDigest() {
	s.False(s.service.CheckPassword("admin123", "not-a-bcrypt-digest"))
	s.False(s.service.CheckPassword("admin123", ""))
}

// User login tests

func (s *ServiceSuite) TestLoginUserCreatesSessionWithoutVerification() {
	sess, err := s.service.LoginUser(s.ctx, "a@b.com")
	s.Require().NoError(err)

	s.True(sess.IsUser())
	s.Equal("a@b.com", sess.Email)
	s.False(sess.IsAdmin())

	resolved, err := s.service.Resolve(s.ctx, sess.Token)
	s.Require().NoError(err)
	s.Equal("a@b.com", resolved.Email)
}

func (s *ServiceSuite) TestLoginUserAppendsAuditRecord() {
	_, err := s.service.LoginUser(s.ctx, "a@b.com")
	s.Require().NoError(err)

	records, err := s.store.ListLoginRecords(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("a@b.com", records[0].Email)
	s.Equal(model.RoleUser, records[0].Role)
	s.Equal(s.clock.CurrentTime, records[0].LoginTime)
}

// Admin login tests

func (s *ServiceSuite) TestLoginAdminSucceeds() {
	admin := s.seedAdmin("admin", "admin123")

	sess, err := s.service.LoginAdmin(s.ctx, "admin", "admin123")
	s.Require().NoError(err)

	s.True(sess.IsAdmin())
	s.Equal(admin.ID, sess.AdminID)
	s.Equal("admin", sess.Username)
	s.False(sess.IsUser())

	records, err := s.store.ListLoginRecords(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("admin", records[0].Email)
	s.Equal(model.RoleAdmin, records[0].Role)
}

func (s *ServiceSuite) TestLoginAdminUnknownUsername() {
	_, err := s.service.LoginAdmin(s.ctx, "nobody", "admin123")
	s.ErrorIs(err, ErrInvalidCredentials)

	s.assertNoSessionsNoAudit()
}

func (s *ServiceSuite) TestLoginAdminWrongPassword() {
	s.seedAdmin("admin", "admin123")

	_, err := s.service.LoginAdmin(s.ctx, "admin", "wrongpass")
	s.ErrorIs(err, ErrInvalidCredentials)

	s.assertNoSessionsNoAudit()
}

// assertNoSessionsNoAudit verifies a failed login left nothing behind
func (s *ServiceSuite) assertNoSessionsNoAudit() {
	records, err := s.store.ListLoginRecords(s.ctx)
	s.Require().NoError(err)
	s.Empty(records)
}

// Logout tests

func (s *ServiceSuite) TestLogoutDestroysSession() {
	s.seedAdmin("admin", "admin123")
	sess, err := s.service.LoginAdmin(s.ctx, "admin", "admin123")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Logout(s.ctx, sess.Token))

	_, err = s.service.Resolve(s.ctx, sess.Token)
	s.ErrorIs(err, session.ErrSessionNotFound)
}

// Bootstrap tests

func (s *ServiceSuite) TestBootstrapAdminCreatesFirstAccount() {
	admin, err := s.service.BootstrapAdmin(s.ctx, "admin", "admin123")
	s.Require().NoError(err)
	s.NotZero(admin.ID)
	s.True(strings.HasPrefix(admin.PasswordHash, "$2a$"))

	// And the created credentials actually work
	sess, err := s.service.LoginAdmin(s.ctx, "admin", "admin123")
	s.Require().NoError(err)
	s.True(sess.IsAdmin())
}

func (s *ServiceSuite) TestBootstrapAdminRefusesSecondAccount() {
	_, err := s.service.BootstrapAdmin(s.ctx, "admin", "admin123")
	s.Require().NoError(err)

	_, err = s.service.BootstrapAdmin(s.ctx, "admin2", "other456")
	s.ErrorIs(err, ErrAdminExists)

	count, err := s.store.CountAdmins(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}
