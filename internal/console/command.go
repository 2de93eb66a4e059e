package console

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/playback"
)

// Action is a console command that is not a playback intent.
type Action int

const (
	ActionNone Action = iota
	ActionStatus
	ActionList
	ActionDownload
	ActionHelp
	ActionQuit
)

// Parse errors.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArg     = errors.New("missing argument")
	ErrNotFinite      = errors.New("not a finite number")
)

// Command is one parsed input line. Exactly one of Intent and Action is set,
// except for blank lines where both are zero.
type Command struct {
	Intent playback.Intent
	Action Action
}

const helpText = `commands:
  p, toggle          play/pause
  play, pause
  t, track <n|name>  select track by number or name
  seek <mm:ss|s>     go to time
  seek +s, seek -s   seek relative
  vol <0-100>        set volume
  rate <0.5-2>       set speed
  d, download        save the current track
  ls, list           list tracks
  s, status          show state
  q, quit`

// Parse turns a line into a command. tracks resolves track numbers and
// names.
func Parse(line string, tracks []catalog.Track) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	arg := strings.Join(args, " ")

	switch name {
	case "p", "toggle":
		return Command{Intent: playback.TogglePlayback{}}, nil
	case "play":
		return Command{Intent: playback.SetPlaying{Playing: true}}, nil
	case "pause":
		return Command{Intent: playback.SetPlaying{Playing: false}}, nil
	case "t", "track":
		if arg == "" {
			return Command{}, fmt.Errorf("%s: %w", name, ErrMissingArg)
		}
		source, err := resolveTrack(arg, tracks)
		if err != nil {
			return Command{}, err
		}
		return Command{Intent: playback.SelectTrack{Source: source}}, nil
	case "seek":
		return parseSeek(arg)
	case "vol", "volume":
		pct, err := parseFloat(name, arg)
		if err != nil {
			return Command{}, err
		}
		return Command{Intent: playback.SetVolume{Volume: pct / 100}}, nil
	case "rate", "speed":
		r, err := parseFloat(name, arg)
		if err != nil {
			return Command{}, err
		}
		return Command{Intent: playback.SetPlaybackRate{Rate: r}}, nil
	case "d", "download":
		return Command{Action: ActionDownload}, nil
	case "ls", "list":
		return Command{Action: ActionList}, nil
	case "s", "status":
		return Command{Action: ActionStatus}, nil
	case "h", "help", "?":
		return Command{Action: ActionHelp}, nil
	case "q", "quit", "exit":
		return Command{Action: ActionQuit}, nil
	}
	return Command{}, fmt.Errorf("%q: %w", name, ErrUnknownCommand)
}

func parseFloat(name, arg string) (float64, error) {
	if arg == "" {
		return 0, fmt.Errorf("%s: %w", name, ErrMissingArg)
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s %q: %w", name, arg, ErrNotFinite)
	}
	return v, nil
}

func parseSeek(arg string) (Command, error) {
	if arg == "" {
		return Command{}, fmt.Errorf("seek: %w", ErrMissingArg)
	}
	if arg[0] == '+' || arg[0] == '-' {
		secs, err := strconv.ParseFloat(arg[1:], 64)
		if err != nil || secs < 0 {
			return Command{}, fmt.Errorf("seek: %w", playback.ErrInvalidTime)
		}
		d, err := playback.Seconds(secs)
		if err != nil {
			return Command{}, fmt.Errorf("seek: %w", err)
		}
		if arg[0] == '-' {
			d = -d
		}
		return Command{Intent: playback.SeekBy{Delta: d}}, nil
	}
	t, err := playback.ParseTime(arg)
	if err != nil {
		return Command{}, fmt.Errorf("seek: %w", err)
	}
	return Command{Intent: playback.Seek{To: t}}, nil
}

// resolveTrack accepts a 1-based number, a source, or a case-insensitive
// name.
func resolveTrack(arg string, tracks []catalog.Track) (string, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(tracks) {
			return "", fmt.Errorf("track %d: %w", n, catalog.ErrNotFound)
		}
		return tracks[n-1].Source, nil
	}
	for _, t := range tracks {
		if t.Source == arg || strings.EqualFold(t.Name, arg) {
			return t.Source, nil
		}
	}
	return "", fmt.Errorf("track %q: %w", arg, catalog.ErrNotFound)
}
