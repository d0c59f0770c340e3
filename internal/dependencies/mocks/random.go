package mocks

import (
	"fmt"

	"github.com/mquinn/rpsduel-go/internal/dependencies/random"
)

// MockRandom is a deterministic implementation of Random for testing
type MockRandom struct {
	counter int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// ID returns sequential identifiers: <prefix>00000001, <prefix>00000002, ...
func (r *MockRandom) ID(prefix string) string {
	r.counter++
	return fmt.Sprintf("%s%08d", prefix, r.counter)
}
