// Package app is the bubbletea front end. Its Update loop is the single
// owner of the playback view model.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cassette/internal/download"
	"github.com/llehouerou/cassette/internal/keymap"
	"github.com/llehouerou/cassette/internal/playback"
	"github.com/llehouerou/cassette/internal/ui/textinput"
)

// Options holds the tunables read from config.
type Options struct {
	SeekStep    time.Duration
	VolumeStep  float64
	RateStep    float64
	DownloadDir string
}

// Model is the root application model.
type Model struct {
	vm     *playback.ViewModel
	files  download.Opener
	mirror *playback.Mirror
	opts   Options

	keys     *keymap.Resolver
	keyMap   keymap.KeyMap
	help     help.Model
	showHelp bool
	prompt   textinput.Model

	stderr <-chan string

	Status string
	Width  int
	Height int
}

// New creates the model. mirror may be nil when nothing reads state from
// outside the loop. files resolves download links.
func New(vm *playback.ViewModel, files download.Opener, mirror *playback.Mirror, opts Options) Model {
	m := Model{
		vm:     vm,
		files:  files,
		mirror: mirror,
		opts:   opts,
		keys:   keymap.NewResolver(keymap.All),
		keyMap: keymap.NewKeyMap(keymap.All),
		help:   help.New(),
		prompt: textinput.New(),
	}
	m.publish()
	return m
}

// WithStderr shows captured native audio output in the status line.
func (m Model) WithStderr(lines <-chan string) Model {
	m.stderr = lines
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(WatchMediaEvents(m.vm), WatchStderr(m.stderr))
}

// State is the current playback state.
func (m Model) State() playback.State {
	return m.vm.State()
}

// publish copies the state for readers outside the loop.
func (m Model) publish() {
	if m.mirror != nil {
		m.mirror.Store(m.vm.State())
	}
}
