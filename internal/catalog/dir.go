package catalog

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/dhowden/tag"
)

// audioExts lists the extensions the media engine can decode.
var audioExts = []string{".wav", ".ogg", ".mp3", ".flac"}

// IsAudioFile reports whether name has a supported audio extension.
func IsAudioFile(name string) bool {
	return slices.Contains(audioExts, strings.ToLower(path.Ext(name)))
}

// FromDir builds a catalog from the audio files directly inside dir,
// ordered by file name.
func FromDir(dir string) (*Catalog, error) {
	return fromFS(os.DirFS(dir))
}

func fromFS(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read music dir: %w", err)
	}

	var tracks []Track
	for _, e := range entries {
		if e.IsDir() || !IsAudioFile(e.Name()) {
			continue
		}
		tracks = append(tracks, Track{
			Name:   trackName(fsys, e.Name()),
			Source: e.Name(),
		})
	}
	return New(fsys, tracks...)
}

// trackName prefers the title tag and falls back to the file stem.
func trackName(fsys fs.FS, name string) string {
	stem := strings.TrimSuffix(name, path.Ext(name))

	f, err := fsys.Open(name)
	if err != nil {
		return stem
	}
	defer f.Close()

	rs, ok := f.(io.ReadSeeker)
	if !ok {
		return stem
	}
	m, err := tag.ReadFrom(rs)
	if err != nil {
		return stem
	}
	if title := strings.TrimSpace(m.Title()); title != "" {
		return title
	}
	return stem
}
