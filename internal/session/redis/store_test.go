package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/sibro/pawhaven/internal/dependencies/mocks"
	"github.com/sibro/pawhaven/internal/session"
)

type StoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.Session.TTL = time.Hour

	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.store = NewWithClient(client, cfg, clk, mocks.NewMockRandom())
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StoreSuite) TestCreateAndResolve() {
	sess, err := s.store.Create(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(sess.Token)

	resolved, err := s.store.Resolve(s.ctx, sess.Token)
	s.Require().NoError(err)
	s.Equal(sess.Token, resolved.Token)
	s.Equal(session.RoleAnonymous, resolved.Role)
}

func (s *StoreSuite) TestCreateSetsKeyTTL() {
	sess, err := s.store.Create(s.ctx)
	s.Require().NoError(err)

	ttl := s.mini.TTL(sessionKey(sess.Token))
	s.Equal(time.Hour, ttl)
}

func (s *StoreSuite) TestResolveUnknownToken() {
	_, err := s.store.Resolve(s.ctx, "no-such-token")
	s.ErrorIs(err, session.ErrSessionNotFound)
}

func (s *StoreSuite) TestSaveRoundTripsIdentity() {
	sess, _ := s.store.Create(s.ctx)
	sess.SetAdmin(7, "admin")
	s.Require().NoError(s.store.Save(s.ctx, sess))

	resolved, err := s.store.Resolve(s.ctx, sess.Token)
	s.Require().NoError(err)
	s.True(resolved.IsAdmin())
	s.Equal("admin", resolved.Username)
	s.EqualValues(7, resolved.AdminID)
}

func (s *StoreSuite) TestSaveKeepsTTL() {
	sess, _ := s.store.Create(s.ctx)
	sess.SetUser("a@b.com")
	s.Require().NoError(s.store.Save(s.ctx, sess))

	ttl := s.mini.TTL(sessionKey(sess.Token))
	s.Equal(time.Hour, ttl)
}

func (s *StoreSuite) TestSaveUnknownSession() {
	err := s.store.Save(s.ctx, &session.Session{Token: "never-created"})
	s.ErrorIs(err, session.ErrSessionNotFound)
}

func (s *StoreSuite) TestDestroy() {
	sess, _ := s.store.Create(s.ctx)
	s.Require().NoError(s.store.Destroy(s.ctx, sess.Token))

	_, err := s.store.Resolve(s.ctx, sess.Token)
	s.ErrorIs(err, session.ErrSessionNotFound)
}

func (s *StoreSuite) TestSessionExpiresWithKey() {
	sess, _ := s.store.Create(s.ctx)

	s.mini.FastForward(2 * time.Hour)

	_, err := s.store.Resolve(s.ctx, sess.Token)
	s.ErrorIs(err, session.ErrSessionNotFound)
}
