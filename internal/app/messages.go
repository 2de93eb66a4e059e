package app

import (
	"github.com/llehouerou/cassette/internal/download"
	"github.com/llehouerou/cassette/internal/media"
	"github.com/llehouerou/cassette/internal/playback"
)

// MediaEventMsg carries one event from the media handle into the loop.
type MediaEventMsg struct {
	Event media.Event
}

// MediaClosedMsg is sent once the media handle stops delivering events.
type MediaClosedMsg struct{}

// IntentMsg asks the loop to apply an intent. Used by callers outside the
// loop, such as the MPRIS bridge.
type IntentMsg struct {
	Intent playback.Intent
}

// DownloadDoneMsg reports the end of a save.
type DownloadDoneMsg struct {
	Filename string
	Result   download.Result
	Err      error
}

// StderrMsg is a line written by the native audio backend.
type StderrMsg string
