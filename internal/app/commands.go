package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cassette/internal/download"
	"github.com/llehouerou/cassette/internal/playback"
)

// WatchMediaEvents waits for the next media event. Update re-issues it
// after each event so delivery stays in order.
func WatchMediaEvents(vm *playback.ViewModel) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-vm.Events():
			return MediaEventMsg{Event: e}
		case <-vm.Done():
			return MediaClosedMsg{}
		}
	}
}

// WatchStderr waits for the next captured stderr line.
func WatchStderr(lines <-chan string) tea.Cmd {
	if lines == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return nil
		}
		return StderrMsg(line)
	}
}

// SaveCmd copies the linked track into dir off the loop.
func SaveCmd(link playback.DownloadLink, files download.Opener, dir string) tea.Cmd {
	return func() tea.Msg {
		res, err := download.Save(link, files, dir)
		return DownloadDoneMsg{Filename: link.SuggestedFilename, Result: res, Err: err}
	}
}
