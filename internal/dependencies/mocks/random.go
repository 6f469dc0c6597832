package mocks

import (
	"fmt"

	"github.com/sibro/pawhaven/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing.
// String returns queued results first, then falls back to a
// deterministic counter so session tokens stay unique within a test.
type MockRandom struct {
	StringResults []string
	stringIndex   int
	counter       int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn always returns 0
func (r *MockRandom) Intn(_ int) int {
	return 0
}

// String returns the next queued result, or a deterministic unique value
func (r *MockRandom) String(_ int, _ string) string {
	if r.stringIndex < len(r.StringResults) {
		result := r.StringResults[r.stringIndex]
		r.stringIndex++
		return result
	}
	r.counter++
	return fmt.Sprintf("mock-token-%d", r.counter)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}
