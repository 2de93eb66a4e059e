package media

import (
	"fmt"
	"time"
)

// Event is a notification emitted by a Handle.
type Event interface {
	mediaEvent()
}

// TimeUpdate reports the playback position of Source.
type TimeUpdate struct {
	Source   string
	Position time.Duration
}

// LoadedMetadata is emitted once Source is decoded and its length known.
type LoadedMetadata struct {
	Source   string
	Duration time.Duration
}

// VolumeChange is emitted whenever the output volume changes, whoever
// changed it.
type VolumeChange struct {
	Volume float64
}

// Ended is emitted when Source plays to its end.
type Ended struct {
	Source string
}

// Op names the command an ErrorEvent relates to.
type Op string

const (
	OpLoad Op = "load"
	OpPlay Op = "play"
	OpSeek Op = "seek"
)

// ErrorEvent is emitted when a command fails after it returned.
type ErrorEvent struct {
	Op     Op
	Source string
	Err    error
}

func (e ErrorEvent) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
}

func (e ErrorEvent) Unwrap() error { return e.Err }

func (TimeUpdate) mediaEvent()     {}
func (LoadedMetadata) mediaEvent() {}
func (VolumeChange) mediaEvent()   {}
func (Ended) mediaEvent()          {}
func (ErrorEvent) mediaEvent()     {}
