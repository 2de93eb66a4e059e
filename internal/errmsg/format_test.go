//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaybackStart,
			err:      nil,
			expected: "",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
		{
			name:     "track load operation",
			op:       OpTrackLoad,
			err:      errors.New("unsupported format"),
			expected: "Failed to load track: unsupported format",
		},
		{
			name:     "config operation",
			op:       OpConfigLoad,
			err:      errors.New("toml: expected value"),
			expected: "Failed to load config: toml: expected value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpDownloadSave,
			context:  "audio1.wav",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpDownloadSave,
			context:  "audio1.wav",
			err:      errors.New("permission denied"),
			expected: "Failed to save track 'audio1.wav': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpDownloadSave,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to save track: permission denied",
		},
		{
			name:     "catalog with path context",
			op:       OpCatalogLoad,
			context:  "/home/user/music",
			err:      errors.New("no audio files"),
			expected: "Failed to load music directory '/home/user/music': no audio files",
		},
		{
			name:     "time parse with input context",
			op:       OpParseTime,
			context:  "1:75",
			err:      errors.New("invalid time"),
			expected: "Failed to parse time '1:75': invalid time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpPlaybackStart, OpPlaybackSeek, OpTrackLoad,
		OpCatalogLoad,
		OpDownloadSave,
		OpParseTime,
		OpConfigLoad, OpAudioInit, OpMPRISStart, OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
