// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"
	OpTrackLoad     Op = "load track"

	// Catalog operations
	OpCatalogLoad Op = "load music directory"

	// Download operations
	OpDownloadSave Op = "save track"

	// Input
	OpParseTime Op = "parse time"

	// Initialization
	OpConfigLoad Op = "load config"
	OpAudioInit  Op = "initialize audio output"
	OpMPRISStart Op = "start MPRIS"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
