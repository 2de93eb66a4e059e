package playback

import (
	"math"
	"time"
)

// Intent is a user request that can travel as a value to the loop that
// owns a ViewModel.
type Intent interface {
	Apply(vm *ViewModel)
}

// TogglePlayback flips between playing and paused.
type TogglePlayback struct{}

// SetPlaying plays or pauses, doing nothing if already in that state.
type SetPlaying struct{ Playing bool }

// SelectTrack switches to the track with Source.
type SelectTrack struct{ Source string }

// Seek moves to an absolute position.
type Seek struct{ To time.Duration }

// SeekBy moves relative to the current position.
type SeekBy struct{ Delta time.Duration }

// SetVolume sets an absolute volume.
type SetVolume struct{ Volume float64 }

// SetPlaybackRate sets an absolute rate.
type SetPlaybackRate struct{ Rate float64 }

func (TogglePlayback) Apply(vm *ViewModel) { vm.TogglePlayback() }

func (i SetPlaying) Apply(vm *ViewModel) {
	if vm.state.Playing != i.Playing {
		vm.TogglePlayback()
	}
}

func (i SelectTrack) Apply(vm *ViewModel) { vm.SelectTrack(i.Source) }

func (i Seek) Apply(vm *ViewModel) { vm.Seek(i.To) }

func (i SeekBy) Apply(vm *ViewModel) { vm.Seek(addSaturating(vm.state.CurrentTime, i.Delta)) }

func addSaturating(a, b time.Duration) time.Duration {
	sum := a + b
	switch {
	case b > 0 && sum < a:
		return math.MaxInt64
	case b < 0 && sum > a:
		return math.MinInt64
	}
	return sum
}

func (i SetVolume) Apply(vm *ViewModel) { vm.SetVolume(i.Volume) }

func (i SetPlaybackRate) Apply(vm *ViewModel) { vm.SetPlaybackRate(i.Rate) }

// Apply executes an intent on the view model.
func (vm *ViewModel) Apply(i Intent) {
	if i != nil {
		i.Apply(vm)
	}
}
