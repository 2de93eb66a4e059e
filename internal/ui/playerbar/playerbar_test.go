package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/icons"
	"github.com/llehouerou/cassette/internal/playback"
)

func TestFilledCells(t *testing.T) {
	tests := []struct {
		name     string
		position time.Duration
		duration time.Duration
		want     int
	}{
		{"unknown duration", 10 * time.Second, 0, 0},
		{"start", 0, time.Minute, 0},
		{"half", 30 * time.Second, time.Minute, 10},
		{"end", time.Minute, time.Minute, 20},
		{"past end", 2 * time.Minute, time.Minute, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filledCells(tt.position, tt.duration, 20); got != tt.want {
				t.Errorf("filledCells(%v, %v, 20) = %d, want %d", tt.position, tt.duration, got, tt.want)
			}
		})
	}
}

func TestRenderProgressBar(t *testing.T) {
	got := ansi.Strip(RenderProgressBar(65*time.Second, 130*time.Second, 34))

	want := "01:05  " + strings.Repeat("━", 10) + strings.Repeat("─", 10) + "  02:10"
	if got != want {
		t.Errorf("RenderProgressBar = %q, want %q", got, want)
	}
}

func TestRenderProgressBar_Narrow(t *testing.T) {
	got := ansi.Strip(RenderProgressBar(5*time.Second, time.Minute, 12))

	if got != "00:05 / 01:00" {
		t.Errorf("RenderProgressBar narrow = %q, want %q", got, "00:05 / 01:00")
	}
}

func TestRenderVolume(t *testing.T) {
	icons.Init("none")

	tests := []struct {
		volume float64
		want   string
	}{
		{1, "vol 100%"},
		{0.5, "vol  50%"},
		{0.049, "vol   5%"},
		{0, "mute   0%"},
	}
	for _, tt := range tests {
		if got := ansi.Strip(RenderVolume(tt.volume)); got != tt.want {
			t.Errorf("RenderVolume(%v) = %q, want %q", tt.volume, got, tt.want)
		}
	}
}

func TestRenderRate(t *testing.T) {
	icons.Init("none")

	tests := []struct {
		rate float64
		want string
	}{
		{1, "x 1.0x"},
		{1.5, "x 1.5x"},
		{0.5, "x 0.5x"},
		{2, "x 2.0x"},
	}
	for _, tt := range tests {
		if got := ansi.Strip(RenderRate(tt.rate)); got != tt.want {
			t.Errorf("RenderRate(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	icons.Init("none")
	s := playback.State{
		Playing:      true,
		Duration:     4 * time.Second,
		CurrentTime:  time.Second,
		Volume:       1,
		PlaybackRate: 1,
		Track:        catalog.Track{Name: "audio1", Source: "audio1.wav"},
	}

	out := Render(s, 60)

	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != Height {
		t.Fatalf("Render produced %d lines, want %d", len(lines), Height)
	}
	if !strings.HasPrefix(lines[0], "> Playing") || !strings.Contains(lines[0], "audio1") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "00:01") || !strings.HasSuffix(strings.TrimRight(lines[1], " "), "00:04") {
		t.Errorf("progress = %q", lines[1])
	}
	if !strings.Contains(lines[2], "vol 100%") || !strings.Contains(lines[2], "1.0x") {
		t.Errorf("controls = %q", lines[2])
	}
	if !strings.Contains(lines[2], "dl audio1.wav") {
		t.Errorf("controls should show the download source, got %q", lines[2])
	}
	if w := lipgloss.Width(out); w > 60 {
		t.Errorf("Render width = %d, want <= 60", w)
	}
}

func TestRender_Paused(t *testing.T) {
	icons.Init("none")
	s := playback.State{Volume: 0, PlaybackRate: 0.5, Track: catalog.Track{Name: "audio2"}}

	out := ansi.Strip(Render(s, 40))

	if !strings.Contains(out, "|| Paused") {
		t.Errorf("Render paused = %q, want pause status", out)
	}
	if !strings.Contains(out, "mute   0%") || !strings.Contains(out, "0.5x") {
		t.Errorf("Render paused controls = %q", out)
	}
}
