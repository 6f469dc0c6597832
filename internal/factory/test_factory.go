package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/sibro/pawhaven/internal/dependencies/mocks"
	"github.com/sibro/pawhaven/internal/services/auth"
	"github.com/sibro/pawhaven/internal/session"
	sessionmemory "github.com/sibro/pawhaven/internal/session/memory"
	"github.com/sibro/pawhaven/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked
// dependencies and in-memory backends. Bcrypt cost is lowered so
// test logins stay fast.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	sessions := sessionmemory.New(mockClock, mockRandom, session.DefaultConfig())
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	authCfg := auth.Config{BcryptCost: 4}
	app := newWithDependencies(store, sessions, mockClock, mockRandom, authCfg, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
