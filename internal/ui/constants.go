// Package ui provides shared UI constants.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// DefaultWidth is used before the first window size message.
	DefaultWidth = 60

	// MaxWidth caps the player so it stays compact on wide terminals.
	MaxWidth = 100

	// MinInnerWidth is the narrowest content area drawn inside the frame.
	MinInnerWidth = 10

	// BorderWidth is the horizontal space consumed by a panel border.
	BorderWidth = 2

	// FrameOverhead is border plus horizontal padding.
	FrameOverhead = BorderWidth + 2

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5
)
