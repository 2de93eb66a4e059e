// Package console is a line-oriented front end. Its Run loop is the
// single owner of the playback view model.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/chzyer/readline"

	"github.com/llehouerou/cassette/internal/download"
	"github.com/llehouerou/cassette/internal/errmsg"
	"github.com/llehouerou/cassette/internal/media"
	"github.com/llehouerou/cassette/internal/playback"
)

// LineReader is the part of readline.Instance the console uses.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// Console reads commands and prints playback changes.
type Console struct {
	vm          *playback.ViewModel
	files       download.Opener
	downloadDir string
	in          LineReader
	out         io.Writer
}

// New creates a console on the terminal with a readline prompt and track
// completion.
func New(vm *playback.ViewModel, files download.Opener, downloadDir string) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "cassette> ",
		AutoComplete:    completer(vm),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, err
	}
	return NewWithIO(vm, files, downloadDir, rl, rl.Stdout()), nil
}

// NewWithIO creates a console over arbitrary input and output.
func NewWithIO(vm *playback.ViewModel, files download.Opener, downloadDir string, in LineReader, out io.Writer) *Console {
	return &Console{vm: vm, files: files, downloadDir: downloadDir, in: in, out: out}
}

func completer(vm *playback.ViewModel) *readline.PrefixCompleter {
	var names []readline.PrefixCompleterInterface
	for _, t := range vm.Tracks() {
		names = append(names, readline.PcItem(t.Name))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("play"),
		readline.PcItem("pause"),
		readline.PcItem("toggle"),
		readline.PcItem("track", names...),
		readline.PcItem("seek"),
		readline.PcItem("vol"),
		readline.PcItem("rate"),
		readline.PcItem("download"),
		readline.PcItem("list"),
		readline.PcItem("status"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

type lineResult struct {
	line string
	err  error
}

// Run processes input until quit, end of input, ctx cancellation or the
// media handle closing.
func (c *Console) Run(ctx context.Context) error {
	defer c.in.Close()

	lines := make(chan lineResult)
	next := make(chan struct{}, 1)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		defer close(lines)
		for range next {
			line, err := c.in.Readline()
			select {
			case lines <- lineResult{line, err}:
			case <-quit:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	defer close(next)

	c.printStatus()
	next <- struct{}{}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-c.vm.Done():
			return nil

		case e := <-c.vm.Events():
			c.handleEvent(e)

		case r, ok := <-lines:
			if !ok {
				return nil
			}
			if r.err != nil {
				if errors.Is(r.err, io.EOF) || errors.Is(r.err, readline.ErrInterrupt) {
					return nil
				}
				return r.err
			}
			if stop := c.execute(r.line); stop {
				return nil
			}
			next <- struct{}{}
		}
	}
}

// execute runs one line and reports whether the console should stop.
func (c *Console) execute(line string) bool {
	cmd, err := Parse(line, c.vm.Tracks())
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return false
	}

	if cmd.Intent != nil {
		c.vm.Apply(cmd.Intent)
		c.printStatus()
		return false
	}

	switch cmd.Action {
	case ActionNone:
	case ActionStatus:
		c.printStatus()
	case ActionList:
		c.printTracks()
	case ActionDownload:
		link := c.vm.Download()
		res, err := download.Save(link, c.files, c.downloadDir)
		if err != nil {
			fmt.Fprintln(c.out, errmsg.FormatWith(errmsg.OpDownloadSave, link.SuggestedFilename, err))
			return false
		}
		fmt.Fprintln(c.out, res.String())
	case ActionHelp:
		fmt.Fprintln(c.out, helpText)
	case ActionQuit:
		return true
	}
	return false
}

// handleEvent applies e and reports the changes a user cares about.
// Position updates stay quiet.
func (c *Console) handleEvent(e media.Event) {
	c.vm.Dispatch(e)
	current := c.vm.State().Track.Source

	switch e := e.(type) {
	case media.LoadedMetadata:
		if e.Source == current {
			fmt.Fprintf(c.out, "loaded %s (%s)\n", c.vm.State().Track.Name, playback.FormatTime(e.Duration))
		}
	case media.Ended:
		if e.Source == current {
			fmt.Fprintf(c.out, "ended %s\n", c.vm.State().Track.Name)
		}
	case media.ErrorEvent:
		if e.Source == current {
			log.Printf("console: %v", e)
			fmt.Fprintf(c.out, "error: %v\n", e)
		}
	}
}

func (c *Console) printStatus() {
	fmt.Fprintln(c.out, FormatStatus(c.vm.State()))
}

func (c *Console) printTracks() {
	current := c.vm.State().Track.Source
	for i, t := range c.vm.Tracks() {
		marker := " "
		if t.Source == current {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %d. %s\n", marker, i+1, t.Name)
	}
}

// FormatStatus renders the state on one line:
// "[Playing] audio1  00:01 / 00:04  vol 100%  1.0x".
func FormatStatus(s playback.State) string {
	return fmt.Sprintf("[%s] %s  %s / %s  vol %d%%  %.1fx",
		s.Status(),
		s.Track.Name,
		playback.FormatTime(s.CurrentTime),
		playback.FormatTime(s.Duration),
		int(s.Volume*100+0.5),
		s.PlaybackRate,
	)
}
