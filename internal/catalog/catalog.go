// Package catalog holds the fixed, ordered list of tracks the player can
// select from.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

var (
	// ErrEmpty is returned by New for a catalog without tracks.
	ErrEmpty = errors.New("catalog: no tracks")
	// ErrEmptySource is returned by New when a track has no source.
	ErrEmptySource = errors.New("catalog: track has empty source")
	// ErrDuplicateSource is returned by New when two tracks share a source.
	ErrDuplicateSource = errors.New("catalog: duplicate source")
	// ErrNotFound is returned for a source that is not in the catalog.
	ErrNotFound = errors.New("catalog: track not found")
	// ErrNotSeekable is returned by Open when the file system yields a
	// file that cannot seek.
	ErrNotSeekable = errors.New("catalog: source is not seekable")
)

// DefaultExt is used for download names when a source carries no extension.
const DefaultExt = ".ogg"

// Track is a named, addressable audio resource.
type Track struct {
	Name   string
	Source string
}

// Ext returns the lowercase extension of the track source, including the dot.
func (t Track) Ext() string {
	return strings.ToLower(path.Ext(t.Source))
}

// Catalog is an immutable ordered list of tracks, unique by source.
type Catalog struct {
	fsys   fs.FS
	tracks []Track
}

// New builds a catalog whose sources resolve in fsys.
func New(fsys fs.FS, tracks ...Track) (*Catalog, error) {
	if len(tracks) == 0 {
		return nil, ErrEmpty
	}
	seen := make(map[string]struct{}, len(tracks))
	for _, t := range tracks {
		if t.Source == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptySource, t.Name)
		}
		if _, dup := seen[t.Source]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSource, t.Source)
		}
		seen[t.Source] = struct{}{}
	}
	return &Catalog{
		fsys:   fsys,
		tracks: append([]Track(nil), tracks...),
	}, nil
}

// Lookup finds a track by source.
func (c *Catalog) Lookup(source string) (Track, bool) {
	if i := c.Index(source); i >= 0 {
		return c.tracks[i], true
	}
	return Track{}, false
}

// Index returns the position of source in the catalog, or -1.
func (c *Catalog) Index(source string) int {
	for i, t := range c.tracks {
		if t.Source == source {
			return i
		}
	}
	return -1
}

// Tracks returns a copy of the tracks in catalog order.
func (c *Catalog) Tracks() []Track {
	return append([]Track(nil), c.tracks...)
}

// First returns the first track.
func (c *Catalog) First() Track {
	return c.tracks[0]
}

// Open opens the audio data behind a catalog source.
func (c *Catalog) Open(source string) (io.ReadSeekCloser, error) {
	if c.Index(source) < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, source)
	}
	f, err := c.fsys.Open(source)
	if err != nil {
		return nil, err
	}
	rsc, ok := f.(io.ReadSeekCloser)
	if !ok {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotSeekable, source)
	}
	return rsc, nil
}
