package media

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	outputRate      = beep.SampleRate(44100)
	resampleQuality = 4

	// DefaultTimeUpdateInterval matches how often browsers fire timeupdate.
	DefaultTimeUpdateInterval = 250 * time.Millisecond
)

// Opener resolves a source locator into audio data.
type Opener interface {
	Open(source string) (io.ReadSeekCloser, error)
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(outputRate, outputRate.N(time.Second/10))
	})
	return speakerErr
}

// Engine plays one source at a time through the system speaker.
//
// The decoded stream runs through pause control, a resampler that folds
// the playback rate into sample-rate conversion, and a volume effect.
// Lock order is e.mu then speaker.Lock; the end-of-stream callback runs
// under the speaker lock and only signals the engine loop.
type Engine struct {
	hub

	opener   Opener
	interval time.Duration

	mu        sync.Mutex
	source    string
	file      io.Closer
	stream    beep.StreamSeekCloser
	format    beep.Format
	ctrl      *beep.Ctrl
	resampler *beep.Resampler
	volume    *effects.Volume
	attached  bool
	playing   bool
	level     float64
	rate      float64

	ended     chan string
	done      chan struct{}
	closeOnce sync.Once
}

// NewEngine initializes the speaker and starts the engine loop.
func NewEngine(opener Opener, interval time.Duration) (*Engine, error) {
	if err := initSpeaker(); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	if interval <= 0 {
		interval = DefaultTimeUpdateInterval
	}
	e := &Engine{
		opener:   opener,
		interval: interval,
		level:    MaxVolume,
		rate:     1,
		ended:    make(chan string, 4),
		done:     make(chan struct{}),
	}
	go e.loop()
	return e, nil
}

func (e *Engine) loop() {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-e.done:
			return
		case <-ticker.C:
			if ev, ok := e.position(); ok {
				e.publish(ev)
			}
		case src := <-e.ended:
			if e.finish(src) {
				e.publish(Ended{Source: src})
			}
		}
	}
}

func (e *Engine) position() (TimeUpdate, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.playing || e.stream == nil {
		return TimeUpdate{}, false
	}
	speaker.Lock()
	pos := e.format.SampleRate.D(e.stream.Position())
	speaker.Unlock()
	return TimeUpdate{Source: e.source, Position: pos}, true
}

// finish handles the end of src's stream. Returns false for stale signals.
func (e *Engine) finish(src string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if src != e.source || !e.attached {
		return false
	}
	e.attached = false
	e.playing = false
	speaker.Lock()
	e.ctrl.Paused = true
	speaker.Unlock()
	return true
}

// SetSource replaces the loaded source. The result arrives as a
// LoadedMetadata or ErrorEvent.
func (e *Engine) SetSource(source string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.unloadLocked()
	e.source = source

	rc, err := e.opener.Open(source)
	if err != nil {
		e.publish(ErrorEvent{Op: OpLoad, Source: source, Err: err})
		return
	}
	stream, format, err := decode(source, rc)
	if err != nil {
		rc.Close()
		e.publish(ErrorEvent{Op: OpLoad, Source: source, Err: err})
		return
	}

	e.file = rc
	e.stream = stream
	e.format = format
	e.ctrl = &beep.Ctrl{Streamer: stream, Paused: true}
	e.resampler = beep.ResampleRatio(resampleQuality, e.ratio(), e.ctrl)
	e.volume = &effects.Volume{Streamer: e.resampler, Base: 2}
	e.applyLevelLocked()
	e.attachLocked()

	e.publish(LoadedMetadata{
		Source:   source,
		Duration: format.SampleRate.D(stream.Len()),
	})
}

func (e *Engine) attachLocked() {
	src := e.source
	speaker.Play(beep.Seq(e.volume, beep.Callback(func() {
		select {
		case e.ended <- src:
		default:
		}
	})))
	e.attached = true
}

func (e *Engine) unloadLocked() {
	if e.attached {
		speaker.Clear()
		e.attached = false
	}
	if e.stream != nil {
		e.stream.Close()
		e.stream = nil
	}
	if e.file != nil {
		e.file.Close()
		e.file = nil
	}
	e.ctrl = nil
	e.resampler = nil
	e.volume = nil
	e.playing = false
	e.format = beep.Format{}
}

// Play starts or resumes playback. After the source ended it restarts
// from the beginning.
func (e *Engine) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stream == nil {
		return ErrNoSource
	}
	speaker.Lock()
	if !e.attached {
		if err := e.stream.Seek(0); err != nil {
			speaker.Unlock()
			return fmt.Errorf("rewind: %w", err)
		}
	}
	e.ctrl.Paused = false
	speaker.Unlock()

	if !e.attached {
		e.attachLocked()
	}
	e.playing = true
	return nil
}

// Pause pauses playback.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ctrl == nil {
		return
	}
	speaker.Lock()
	e.ctrl.Paused = true
	speaker.Unlock()
	e.playing = false
}

// SetCurrentTime moves the playback position.
func (e *Engine) SetCurrentTime(t time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stream == nil {
		return
	}

	n := min(max(e.format.SampleRate.N(t), 0), e.stream.Len())
	speaker.Lock()
	err := e.stream.Seek(n)
	speaker.Unlock()
	if err != nil {
		e.publish(ErrorEvent{Op: OpSeek, Source: e.source, Err: err})
		return
	}
	if !e.attached {
		e.attachLocked()
	}
	e.publish(TimeUpdate{Source: e.source, Position: e.format.SampleRate.D(n)})
}

// SetVolume sets the output level (0.0 to 1.0) and reports it.
func (e *Engine) SetVolume(v float64) {
	e.mu.Lock()
	e.level = ClampVolume(v)
	e.applyLevelLocked()
	level := e.level
	e.mu.Unlock()

	e.publish(VolumeChange{Volume: level})
}

func (e *Engine) applyLevelLocked() {
	if e.volume == nil {
		return
	}
	speaker.Lock()
	e.volume.Volume = levelToVolume(e.level)
	e.volume.Silent = e.level <= 0
	speaker.Unlock()
}

// SetPlaybackRate changes the playback speed.
func (e *Engine) SetPlaybackRate(r float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rate = ClampRate(r)
	if e.resampler == nil {
		return
	}
	speaker.Lock()
	e.resampler.SetRatio(e.ratio())
	speaker.Unlock()
}

// ratio is the resampling ratio for the loaded format at the current rate.
func (e *Engine) ratio() float64 {
	return resampleRatio(e.format.SampleRate, e.rate)
}

func resampleRatio(src beep.SampleRate, rate float64) float64 {
	if src <= 0 {
		return rate
	}
	return float64(src) / float64(outputRate) * rate
}

// Subscribe returns a new event subscription.
func (e *Engine) Subscribe() *Subscription { return e.subscribe() }

// Close stops playback, releases the source and ends all subscriptions.
func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		close(e.done)
		e.mu.Lock()
		e.unloadLocked()
		e.mu.Unlock()
		e.closeAll()
	})
	return nil
}

// Verify Engine implements Handle at compile time.
var _ Handle = (*Engine)(nil)
