package console

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/media"
	"github.com/llehouerou/cassette/internal/playback"
)

// scripted replays lines then reports io.EOF.
type scripted struct {
	mu     sync.Mutex
	lines  []string
	closed bool
}

func (s *scripted) Readline() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scripted) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

// blocking never returns a line.
type blocking struct{ done chan struct{} }

func (b *blocking) Readline() (string, error) {
	<-b.done
	return "", io.EOF
}

func (b *blocking) Close() error { return nil }

// gated returns one line once released.
type gated struct{ release chan struct{} }

func (g *gated) Readline() (string, error) {
	<-g.release
	return "status", nil
}

func (g *gated) Close() error { return nil }

type harness struct {
	vm   *playback.ViewModel
	mock *media.Mock
	cat  *catalog.Catalog
	dir  string
	out  *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cat, err := catalog.New(fstest.MapFS{
		"intro.ogg": {Data: []byte("intro-bytes")},
		"theme.ogg": {Data: []byte("theme-bytes")},
	}, tracks...)
	require.NoError(t, err)

	mock := media.NewMock()
	vm := playback.New(cat, mock)
	t.Cleanup(func() { _ = vm.Close() })
	mock.Reset()

	return &harness{vm: vm, mock: mock, cat: cat, dir: t.TempDir(), out: &bytes.Buffer{}}
}

func (h *harness) run(t *testing.T, lines ...string) *scripted {
	t.Helper()
	in := &scripted{lines: lines}
	c := NewWithIO(h.vm, h.cat, h.dir, in, h.out)
	require.NoError(t, c.Run(context.Background()))
	return in
}

func TestRun_AppliesCommandsInOrder(t *testing.T) {
	h := newHarness(t)

	in := h.run(t, "play", "vol 40", "rate 2", "track 2")

	s := h.vm.State()
	assert.False(t, s.Playing)
	assert.Equal(t, 0.4, s.Volume)
	assert.Equal(t, 2.0, s.PlaybackRate)
	assert.Equal(t, "theme.ogg", s.Track.Source)
	assert.True(t, in.closed)

	var kinds []media.CommandKind
	for _, c := range h.mock.Commands() {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []media.CommandKind{
		media.CmdPlay, media.CmdSetVolume, media.CmdSetPlaybackRate,
		media.CmdPause, media.CmdSetSource,
	}, kinds)
}

func TestRun_QuitStopsBeforeRemainingLines(t *testing.T) {
	h := newHarness(t)

	h.run(t, "quit", "play")

	assert.False(t, h.vm.State().Playing)
	assert.Empty(t, h.mock.CommandsOf(media.CmdPlay))
}

func TestRun_ReportsParseErrors(t *testing.T) {
	h := newHarness(t)

	h.run(t, "rewind", "seek soon")

	assert.Contains(t, h.out.String(), "error: \"rewind\": unknown command")
	assert.Contains(t, h.out.String(), "error: seek:")
}

func TestRun_ListMarksCurrentTrack(t *testing.T) {
	h := newHarness(t)

	h.run(t, "list")

	assert.Contains(t, h.out.String(), "* 1. Intro\n")
	assert.Contains(t, h.out.String(), "  2. Main Theme\n")
}

func TestRun_Download(t *testing.T) {
	h := newHarness(t)

	h.run(t, "download")

	data, err := os.ReadFile(filepath.Join(h.dir, "Intro.ogg"))
	require.NoError(t, err)
	assert.Equal(t, "intro-bytes", string(data))
	assert.Contains(t, h.out.String(), "Saved Intro.ogg (11 B)")
}

func TestRun_DownloadFailure(t *testing.T) {
	h := newHarness(t)
	blocker := filepath.Join(h.dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	h.dir = filepath.Join(blocker, "sub")

	h.run(t, "d")

	assert.Contains(t, h.out.String(), "Failed to save track 'Intro.ogg'")
}

func TestRun_Help(t *testing.T) {
	h := newHarness(t)

	h.run(t, "help")

	assert.Contains(t, h.out.String(), "commands:")
}

func TestRun_StopsWhenHandleCloses(t *testing.T) {
	h := newHarness(t)
	in := &blocking{done: make(chan struct{})}
	defer close(in.done)

	errc := make(chan error, 1)
	go func() {
		errc <- NewWithIO(h.vm, h.cat, h.dir, in, h.out).Run(context.Background())
	}()

	require.NoError(t, h.mock.Close())
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the handle closed")
	}
}

func TestRun_ContextCanceled(t *testing.T) {
	h := newHarness(t)
	in := &blocking{done: make(chan struct{})}
	defer close(in.done)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWithIO(h.vm, h.cat, h.dir, in, h.out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHandleEvent(t *testing.T) {
	h := newHarness(t)
	c := NewWithIO(h.vm, h.cat, h.dir, &scripted{}, h.out)

	c.handleEvent(media.LoadedMetadata{Source: "intro.ogg", Duration: 4 * time.Second})
	c.handleEvent(media.TimeUpdate{Source: "intro.ogg", Position: time.Second})
	c.handleEvent(media.Ended{Source: "theme.ogg"})
	c.handleEvent(media.Ended{Source: "intro.ogg"})
	c.handleEvent(media.ErrorEvent{Op: media.OpLoad, Source: "intro.ogg", Err: io.ErrUnexpectedEOF})

	assert.Equal(t,
		"loaded Intro (00:04)\nended Intro\nerror: load intro.ogg: unexpected EOF\n",
		h.out.String())
	assert.Equal(t, 4*time.Second, h.vm.State().Duration)
}

func TestRun_ReaderExitsAfterHandleCloses(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t)
		in := &gated{release: make(chan struct{})}

		errc := make(chan error, 1)
		go func() {
			errc <- NewWithIO(h.vm, h.cat, h.dir, in, h.out).Run(context.Background())
		}()
		synctest.Wait()

		require.NoError(t, h.mock.Close())
		require.NoError(t, <-errc)

		// The line read after Run returned has no receiver.
		close(in.release)
		synctest.Wait()
		require.NoError(t, h.vm.Close())
	})
}
