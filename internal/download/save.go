// Package download saves a copy of the current track to disk.
package download

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/cassette/internal/playback"
)

// maxAttempts bounds the " (n)" suffix search.
const maxAttempts = 1000

// ErrNoFreeName is returned when every candidate filename is taken.
var ErrNoFreeName = errors.New("no free filename")

// Opener resolves a download link's Href.
type Opener interface {
	Open(source string) (io.ReadSeekCloser, error)
}

// Result describes a saved file.
type Result struct {
	Path string
	Size int64
}

// String renders the status line shown after a save.
func (r Result) String() string {
	return fmt.Sprintf("Saved %s (%s)", filepath.Base(r.Path), humanize.IBytes(uint64(max(r.Size, 0))))
}

// Save copies the linked track into dir under its suggested filename.
// An existing file is never overwritten: "name (1).ext", "name (2).ext"
// and so on are tried instead.
func Save(link playback.DownloadLink, o Opener, dir string) (Result, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, err
	}

	src, err := o.Open(link.Href)
	if err != nil {
		return Result{}, err
	}
	defer src.Close()

	dst, path, err := create(dir, link.SuggestedFilename)
	if err != nil {
		return Result{}, err
	}

	n, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return Result{}, fmt.Errorf("write %s: %w", path, err)
	}

	return Result{Path: path, Size: n}, nil
}

// create opens the first free candidate name exclusively.
func create(dir, filename string) (*os.File, string, error) {
	filename = filepath.Base(filename)
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	for i := range maxAttempts {
		name := filename
		if i > 0 {
			name = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", err
		}
	}
	return nil, "", fmt.Errorf("%s: %w", filename, ErrNoFreeName)
}
