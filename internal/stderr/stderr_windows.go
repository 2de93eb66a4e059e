//go:build windows

// Package stderr is a no-op on Windows, whose audio backend does not
// write to the console.
package stderr

type Capture struct {
	lines chan string
}

func Start() (*Capture, error) {
	return &Capture{lines: make(chan string)}, nil
}

func (c *Capture) Lines() <-chan string { return c.lines }

func (c *Capture) Stop() { close(c.lines) }
