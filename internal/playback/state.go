package playback

import (
	"sync"
	"time"

	"github.com/llehouerou/cassette/internal/catalog"
)

// State is the view model's snapshot of playback status.
type State struct {
	Playing      bool
	Duration     time.Duration
	CurrentTime  time.Duration
	Volume       float64
	PlaybackRate float64
	Track        catalog.Track
}

// Progress returns CurrentTime as a fraction of Duration (0 when unknown).
func (s State) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.CurrentTime) / float64(s.Duration)
}

// Status returns "Playing" or "Paused".
func (s State) Status() string {
	if s.Playing {
		return "Playing"
	}
	return "Paused"
}

// Mirror holds the last published State for readers outside the loop
// that owns the view model.
type Mirror struct {
	mu    sync.RWMutex
	state State
}

// Store publishes s.
func (m *Mirror) Store(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// Load returns the last published State.
func (m *Mirror) Load() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}
