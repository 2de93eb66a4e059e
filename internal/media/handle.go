// Package media defines the playback capability the player drives and the
// events it reports back, with a speaker-backed engine and a test double.
package media

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrNoSource is returned by Play when no source is loaded.
	ErrNoSource = errors.New("media: no source loaded")
	// ErrUnsupportedFormat reports a source extension with no decoder.
	ErrUnsupportedFormat = errors.New("media: unsupported format")
)

// Playback limits.
const (
	MinVolume   = 0.0
	MaxVolume   = 1.0
	MinRate     = 0.5
	MaxRate     = 2.0
	DefaultRate = 1.0
)

// Handle is one playable audio resource.
//
// Commands return immediately. Their outcome is reported asynchronously
// through the events of a Subscription, except for Play which also
// reports a refusal synchronously.
type Handle interface {
	Play() error
	Pause()
	SetSource(source string)
	SetCurrentTime(t time.Duration)
	SetVolume(v float64)
	SetPlaybackRate(r float64)
	Subscribe() *Subscription
	Close() error
}

// ClampVolume limits v to [MinVolume, MaxVolume]. NaN maps to MaxVolume.
func ClampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return MaxVolume
	}
	return min(max(v, MinVolume), MaxVolume)
}

// ClampRate limits r to [MinRate, MaxRate]. NaN maps to DefaultRate.
func ClampRate(r float64) float64 {
	if math.IsNaN(r) {
		return DefaultRate
	}
	return min(max(r, MinRate), MaxRate)
}

// ClampTime limits t to [0, limit].
func ClampTime(t, limit time.Duration) time.Duration {
	return min(max(t, 0), max(limit, 0))
}
