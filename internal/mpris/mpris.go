//go:build linux

// Package mpris exposes the player on the session bus so desktop media
// keys and widgets can drive it.
package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/media"
	"github.com/llehouerou/cassette/internal/playback"
)

// Name is the bus name suffix: org.mpris.MediaPlayer2.cassette.
const Name = "cassette"

// Adapter serves MPRIS over D-Bus. Reads come from a Mirror, writes are
// handed to the owning loop as intents.
type Adapter struct {
	server *server.Server
}

// New creates and starts an MPRIS adapter. send must deliver the intent to
// the loop that owns the view model; dir is the music directory used to
// find cover art, empty for the bundled tones.
func New(mirror *playback.Mirror, tracks []catalog.Track, dir string, send func(playback.Intent)) (*Adapter, error) {
	player := &playerAdapter{
		mirror: mirror,
		tracks: tracks,
		dir:    dir,
		send:   send,
	}

	a := &Adapter{
		server: server.NewServer(Name, &rootAdapter{}, player),
	}

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Cassette", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/wav", "audio/ogg", "audio/mpeg", "audio/flac"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	mirror *playback.Mirror
	tracks []catalog.Track
	dir    string
	send   func(playback.Intent)
}

// index of the current track in tracks, -1 if unknown.
func (p *playerAdapter) index() int {
	source := p.mirror.Load().Track.Source
	for i, t := range p.tracks {
		if t.Source == source {
			return i
		}
	}
	return -1
}

func (p *playerAdapter) selectAt(i int) error {
	if i < 0 || i >= len(p.tracks) {
		return nil
	}
	p.send(playback.SelectTrack{Source: p.tracks[i].Source})
	return nil
}

func (p *playerAdapter) Next() error {
	return p.selectAt(p.index() + 1)
}

func (p *playerAdapter) Previous() error {
	return p.selectAt(p.index() - 1)
}

func (p *playerAdapter) Pause() error {
	p.send(playback.SetPlaying{Playing: false})
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.send(playback.TogglePlayback{})
	return nil
}

func (p *playerAdapter) Stop() error {
	p.send(playback.SetPlaying{Playing: false})
	p.send(playback.Seek{To: 0})
	return nil
}

func (p *playerAdapter) Play() error {
	p.send(playback.SetPlaying{Playing: true})
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.send(playback.SeekBy{Delta: time.Duration(offset) * time.Microsecond})
	return nil
}

// SetPosition is ignored when trackID is not the current track.
func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	if trackID != formatTrackID(p.mirror.Load().Track.Source) {
		return nil
	}
	p.send(playback.Seek{To: time.Duration(position) * time.Microsecond})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	if p.mirror.Load().Playing {
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusPaused, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return p.mirror.Load().PlaybackRate, nil
}

func (p *playerAdapter) SetRate(rate float64) error {
	p.send(playback.SetPlaybackRate{Rate: rate})
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.mirror.Load()
	if s.Track.Source == "" {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(s.Track.Source)),
		Length:  types.Microseconds(s.Duration.Microseconds()),
		Title:   s.Track.Name,
	}
	if i := p.index(); i >= 0 {
		meta.TrackNumber = i + 1
	}

	if p.dir != "" {
		meta.ArtUrl = artURL(p.dir, s.Track.Source)
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.mirror.Load().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.send(playback.SetVolume{Volume: v})
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.mirror.Load().CurrentTime.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return media.MinRate, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return media.MaxRate, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	i := p.index()
	return i >= 0 && i < len(p.tracks)-1, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.index() > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return len(p.tracks) > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.mirror.Load().Duration > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(source string) string {
	h := fnv.New64a()
	h.Write([]byte(source))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
