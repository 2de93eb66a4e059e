// Package keymap defines key bindings and action dispatch for the player.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionSelectTrack Action = "select_track" // 1-9, the key is the track number
	ActionSeekBack    Action = "seek_back"
	ActionSeekForward Action = "seek_forward"
	ActionGoToTime    Action = "go_to_time"

	// Output actions
	ActionVolumeDown Action = "volume_down"
	ActionVolumeUp   Action = "volume_up"
	ActionRateDown   Action = "rate_down"
	ActionRateUp     Action = "rate_up"
	ActionRateReset  Action = "rate_reset"

	ActionDownload Action = "download"
)
