//go:build !linux

package mpris

import (
	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/playback"
)

// Name is the bus name suffix used on Linux.
const Name = "cassette"

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ *playback.Mirror, _ []catalog.Track, _ string, _ func(playback.Intent)) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
