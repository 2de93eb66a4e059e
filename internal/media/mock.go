package media

import (
	"sync"
	"time"
)

// CommandKind identifies a command received by Mock.
type CommandKind int

const (
	CmdPlay CommandKind = iota
	CmdPause
	CmdSetSource
	CmdSetCurrentTime
	CmdSetVolume
	CmdSetPlaybackRate
)

func (k CommandKind) String() string {
	switch k {
	case CmdPlay:
		return "Play"
	case CmdPause:
		return "Pause"
	case CmdSetSource:
		return "SetSource"
	case CmdSetCurrentTime:
		return "SetCurrentTime"
	case CmdSetVolume:
		return "SetVolume"
	case CmdSetPlaybackRate:
		return "SetPlaybackRate"
	default:
		return "Unknown"
	}
}

// Command is one recorded call on Mock.
type Command struct {
	Kind   CommandKind
	Source string
	Time   time.Duration
	Value  float64
}

// Mock is a test double for Handle. It records commands and only emits
// the events a test hands to Emit.
type Mock struct {
	hub

	mu       sync.Mutex
	commands []Command
	playErr  error
	closed   bool
}

// NewMock creates a new mock handle.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) record(c Command) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands = append(m.commands, c)
}

func (m *Mock) Play() error {
	m.record(Command{Kind: CmdPlay})
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playErr
}

func (m *Mock) Pause() { m.record(Command{Kind: CmdPause}) }

func (m *Mock) SetSource(source string) {
	m.record(Command{Kind: CmdSetSource, Source: source})
}

func (m *Mock) SetCurrentTime(t time.Duration) {
	m.record(Command{Kind: CmdSetCurrentTime, Time: t})
}

func (m *Mock) SetVolume(v float64) {
	m.record(Command{Kind: CmdSetVolume, Value: v})
}

func (m *Mock) SetPlaybackRate(r float64) {
	m.record(Command{Kind: CmdSetPlaybackRate, Value: r})
}

func (m *Mock) Subscribe() *Subscription { return m.subscribe() }

func (m *Mock) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.closeAll()
	return nil
}

// Test helpers

// Emit publishes e to all subscriptions.
func (m *Mock) Emit(e Event) { m.publish(e) }

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// Commands returns the recorded commands in call order.
func (m *Mock) Commands() []Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Command(nil), m.commands...)
}

// CommandsOf returns the recorded commands of one kind.
func (m *Mock) CommandsOf(kind CommandKind) []Command {
	var out []Command
	for _, c := range m.Commands() {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded commands.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands = nil
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Handle at compile time.
var _ Handle = (*Mock)(nil)
