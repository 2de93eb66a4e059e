//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to none", "", noneIcons},
		{"unknown style defaults to none", "invalid", noneIcons},
		{"case sensitive - NERD defaults to none", "NERD", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if current != tt.expected {
				t.Errorf("Init(%q) selected %+v, want %+v", tt.style, current, tt.expected)
			}
		})
	}

	// Reset to default
	Init("none")
}

func TestStatus(t *testing.T) {
	Init("unicode")
	defer Init("none")

	if got := Status(true); got != "▶" {
		t.Errorf("Status(true) = %q, want %q", got, "▶")
	}
	if got := Status(false); got != "⏸" {
		t.Errorf("Status(false) = %q, want %q", got, "⏸")
	}
}

func TestVolume(t *testing.T) {
	Init("none")

	tests := []struct {
		volume float64
		want   string
	}{
		{0, "mute"},
		{0.001, "vol"},
		{1, "vol"},
	}
	for _, tt := range tests {
		if got := Volume(tt.volume); got != tt.want {
			t.Errorf("Volume(%v) = %q, want %q", tt.volume, got, tt.want)
		}
	}
}

func TestFormatTrack(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{"none", "audio1"},
		{"unicode", "♪ audio1"},
		{"nerd", "\uf001 audio1"},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			defer Init("none")
			if got := FormatTrack("audio1"); got != tt.want {
				t.Errorf("FormatTrack(%q) = %q, want %q", "audio1", got, tt.want)
			}
		})
	}
}
