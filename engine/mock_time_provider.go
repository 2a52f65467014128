package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/neon-drive/constants"
)

// MockTimeProvider is a manually stepped clock for tests
// Time only moves when Advance or AdvanceFrames is called
type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// AdvanceFrames moves the clock forward by n frame intervals, matching n ticks of the frame loop
func (m *MockTimeProvider) AdvanceFrames(n int) {
	m.Advance(time.Duration(n) * constants.FrameUpdateInterval)
}
