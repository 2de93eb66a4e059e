package app

import (
	"log"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cassette/internal/errmsg"
	"github.com/llehouerou/cassette/internal/keymap"
	"github.com/llehouerou/cassette/internal/media"
	"github.com/llehouerou/cassette/internal/playback"
	"github.com/llehouerou/cassette/internal/ui/textinput"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.publish()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MediaEventMsg:
		m.handleMediaEvent(msg.Event)
		return m, WatchMediaEvents(m.vm)

	case MediaClosedMsg:
		return m, nil

	case IntentMsg:
		m.vm.Apply(msg.Intent)
		return m, nil

	case DownloadDoneMsg:
		if msg.Err != nil {
			m.Status = errmsg.FormatWith(errmsg.OpDownloadSave, msg.Filename, msg.Err)
			log.Printf("app: %s", m.Status)
			return m, nil
		}
		m.Status = msg.Result.String()
		return m, nil

	case StderrMsg:
		m.Status = string(msg)
		return m, WatchStderr(m.stderr)

	case textinput.ResultMsg:
		return m.handlePromptResult(msg)

	case tea.KeyMsg:
		if m.prompt.Active() {
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	if m.prompt.Active() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMediaEvent dispatches e. Load and seek failures also reach the
// status line; a refused play only shows as the paused symbol.
func (m *Model) handleMediaEvent(e media.Event) {
	m.vm.Dispatch(e)
	ev, ok := e.(media.ErrorEvent)
	if !ok || ev.Source != m.vm.State().Track.Source {
		return
	}
	switch ev.Op {
	case media.OpLoad:
		m.Status = errmsg.FormatWith(errmsg.OpTrackLoad, ev.Source, ev.Err)
	case media.OpSeek:
		m.Status = errmsg.Format(errmsg.OpPlaybackSeek, ev.Err)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	s := m.vm.State()

	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionHelp:
		m.showHelp = !m.showHelp

	case keymap.ActionPlayPause:
		m.vm.TogglePlayback()

	case keymap.ActionSelectTrack:
		n, err := strconv.Atoi(key)
		if err != nil {
			return m, nil
		}
		tracks := m.vm.Tracks()
		if n >= 1 && n <= len(tracks) {
			m.vm.SelectTrack(tracks[n-1].Source)
			m.Status = ""
		}

	case keymap.ActionSeekBack:
		m.vm.Apply(playback.SeekBy{Delta: -m.opts.SeekStep})

	case keymap.ActionSeekForward:
		m.vm.Apply(playback.SeekBy{Delta: m.opts.SeekStep})

	case keymap.ActionGoToTime:
		cmd := m.prompt.Start("Go to time", playback.FormatTime(s.CurrentTime))
		return m, cmd

	case keymap.ActionVolumeDown:
		m.vm.SetVolume(s.Volume - m.opts.VolumeStep)

	case keymap.ActionVolumeUp:
		m.vm.SetVolume(s.Volume + m.opts.VolumeStep)

	case keymap.ActionRateDown:
		m.vm.SetPlaybackRate(s.PlaybackRate - m.opts.RateStep)

	case keymap.ActionRateUp:
		m.vm.SetPlaybackRate(s.PlaybackRate + m.opts.RateStep)

	case keymap.ActionRateReset:
		m.vm.SetPlaybackRate(1)

	case keymap.ActionDownload:
		link := m.vm.Download()
		m.Status = "Saving " + link.SuggestedFilename + "…"
		return m, SaveCmd(link, m.files, m.opts.DownloadDir)
	}

	return m, nil
}

func (m Model) handlePromptResult(msg textinput.ResultMsg) (Model, tea.Cmd) {
	if msg.Canceled {
		return m, nil
	}
	t, err := playback.ParseTime(msg.Text)
	if err != nil {
		m.Status = errmsg.FormatWith(errmsg.OpParseTime, msg.Text, err)
		return m, nil
	}
	m.vm.Seek(t)
	return m, nil
}
