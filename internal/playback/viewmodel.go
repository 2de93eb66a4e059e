// Package playback keeps a displayable playback state in step with a
// media handle.
//
// Intents flow down to the handle as commands, events flow up from the
// handle into the state. A ViewModel is owned by a single event loop:
// intents, Dispatch and State must all be called from that loop.
package playback

import (
	"log"
	"strings"
	"time"

	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/media"
)

// DownloadLink describes how to save the current track.
type DownloadLink struct {
	Href              string
	SuggestedFilename string
}

// ViewModel owns the playback State and the media handle it mirrors.
type ViewModel struct {
	catalog *catalog.Catalog
	media   media.Handle
	sub     *media.Subscription
	state   State
	closed  bool
}

// New mounts a view model on the first catalog track and loads it into h.
// The view model takes ownership of h and releases it on Close.
func New(c *catalog.Catalog, h media.Handle) *ViewModel {
	vm := &ViewModel{
		catalog: c,
		media:   h,
		sub:     h.Subscribe(),
		state: State{
			Volume:       media.MaxVolume,
			PlaybackRate: 1,
			Track:        c.First(),
		},
	}
	h.SetSource(vm.state.Track.Source)
	return vm
}

// State returns a snapshot of the current state.
func (vm *ViewModel) State() State { return vm.state }

// Tracks enumerates the catalog for building a selection UI.
func (vm *ViewModel) Tracks() []catalog.Track { return vm.catalog.Tracks() }

// Events is the channel the owning loop drains into Dispatch.
func (vm *ViewModel) Events() <-chan media.Event { return vm.sub.Events }

// Done is closed once the media handle stops delivering events.
func (vm *ViewModel) Done() <-chan struct{} { return vm.sub.Done }

// TogglePlayback flips between playing and paused. A refused play
// leaves the state paused.
func (vm *ViewModel) TogglePlayback() {
	if vm.state.Playing {
		vm.state.Playing = false
		vm.media.Pause()
		return
	}
	vm.state.Playing = true
	if err := vm.media.Play(); err != nil {
		log.Printf("playback: play %s: %v", vm.state.Track.Source, err)
		vm.state.Playing = false
	}
}

// SelectTrack switches to the catalog track with the given source.
// Returns false, leaving everything untouched, if no such track exists.
func (vm *ViewModel) SelectTrack(source string) bool {
	track, ok := vm.catalog.Lookup(source)
	if !ok {
		return false
	}
	if vm.state.Playing {
		vm.media.Pause()
	}
	vm.state.Duration = 0
	vm.state.CurrentTime = 0
	vm.state.Playing = false
	vm.state.Track = track
	vm.media.SetSource(track.Source)
	return true
}

// Seek moves to t, clamped to the loaded duration. CurrentTime is updated
// before the handle confirms.
func (vm *ViewModel) Seek(t time.Duration) {
	t = media.ClampTime(t, vm.state.Duration)
	vm.state.CurrentTime = t
	vm.media.SetCurrentTime(t)
}

// SetVolume sets the volume, clamped to [0,1].
func (vm *ViewModel) SetVolume(v float64) {
	v = media.ClampVolume(v)
	vm.state.Volume = v
	vm.media.SetVolume(v)
}

// SetPlaybackRate sets the speed, clamped to [0.5,2].
func (vm *ViewModel) SetPlaybackRate(r float64) {
	r = media.ClampRate(r)
	vm.state.PlaybackRate = r
	vm.media.SetPlaybackRate(r)
}

// OnTimeUpdate records the position reported by the handle.
func (vm *ViewModel) OnTimeUpdate(pos time.Duration) {
	vm.state.CurrentTime = media.ClampTime(pos, vm.state.Duration)
}

// OnLoadedMetadata records the duration of the loaded source.
func (vm *ViewModel) OnLoadedMetadata(d time.Duration) {
	vm.state.Duration = max(d, 0)
	vm.state.CurrentTime = media.ClampTime(vm.state.CurrentTime, vm.state.Duration)
}

// OnVolumeChange records a volume change, including ones made outside
// the player.
func (vm *ViewModel) OnVolumeChange(v float64) {
	vm.state.Volume = media.ClampVolume(v)
}

// OnEnded rewinds the display and stops. Duration is kept.
func (vm *ViewModel) OnEnded() {
	vm.state.Playing = false
	vm.state.CurrentTime = 0
}

// onError handles failures reported after a command returned.
func (vm *ViewModel) onError(e media.ErrorEvent) {
	log.Printf("playback: %v", e)
	if e.Op == media.OpPlay || e.Op == media.OpLoad {
		vm.state.Playing = false
	}
}

// Dispatch routes a handle event to its handler. Events about a source
// other than the current track are stale and dropped.
func (vm *ViewModel) Dispatch(e media.Event) {
	switch e := e.(type) {
	case media.TimeUpdate:
		if vm.current(e.Source) {
			vm.OnTimeUpdate(e.Position)
		}
	case media.LoadedMetadata:
		if vm.current(e.Source) {
			vm.OnLoadedMetadata(e.Duration)
		}
	case media.VolumeChange:
		vm.OnVolumeChange(e.Volume)
	case media.Ended:
		if vm.current(e.Source) {
			vm.OnEnded()
		}
	case media.ErrorEvent:
		if vm.current(e.Source) {
			vm.onError(e)
		}
	}
}

func (vm *ViewModel) current(source string) bool {
	return source == vm.state.Track.Source
}

// fileSafe keeps a track name in one path element: "AC/DC" is "AC_DC".
var fileSafe = strings.NewReplacer("/", "_", "\\", "_")

// Download returns the link to the current track.
func (vm *ViewModel) Download() DownloadLink {
	ext := vm.state.Track.Ext()
	if ext == "" {
		ext = catalog.DefaultExt
	}
	return DownloadLink{
		Href:              vm.state.Track.Source,
		SuggestedFilename: fileSafe.Replace(vm.state.Track.Name) + ext,
	}
}

// Close unsubscribes and releases the media handle. Safe to call twice.
func (vm *ViewModel) Close() error {
	if vm.closed {
		return nil
	}
	vm.closed = true
	vm.sub.Close()
	return vm.media.Close()
}
