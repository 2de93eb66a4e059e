//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/tones",
			expected: "music/tones",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// isolate points the config lookup at empty temp directories.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestGetConfigPaths(t *testing.T) {
	dir := isolate(t)
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	want := filepath.Join(dir, "xdg", "cassette", "config.toml")
	if paths[0] != want {
		t.Errorf("first config path = %q, want %q", paths[0], want)
	}
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MusicDir != "" {
		t.Errorf("MusicDir = %q, want empty", cfg.MusicDir)
	}
	if !cfg.MPRIS {
		t.Error("MPRIS = false, want true")
	}
	if cfg.Icons != "unicode" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "unicode")
	}
	if cfg.SeekStep != DefaultSeekStep {
		t.Errorf("SeekStep = %v, want %v", cfg.SeekStep, DefaultSeekStep)
	}
	if cfg.VolumeStep != DefaultVolumeStep {
		t.Errorf("VolumeStep = %v, want %v", cfg.VolumeStep, DefaultVolumeStep)
	}
	if cfg.RateStep != DefaultRateStep {
		t.Errorf("RateStep = %v, want %v", cfg.RateStep, DefaultRateStep)
	}
	if cfg.TimeUpdateInterval != DefaultTimeUpdateInterval {
		t.Errorf("TimeUpdateInterval = %v, want %v", cfg.TimeUpdateInterval, DefaultTimeUpdateInterval)
	}
	if cfg.DownloadDir != xdg.UserDirs.Download {
		t.Errorf("DownloadDir = %q, want %q", cfg.DownloadDir, xdg.UserDirs.Download)
	}
}

func TestLoad_LocalOverridesXDG(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "xdg", "cassette", "config.toml"), `
music_dir = "/srv/music"
seek_step = "10s"
mpris = false
`)
	writeFile(t, filepath.Join(dir, "config.toml"), `
seek_step = "2s"
volume_step = 0.1
icons = "nerd"
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MusicDir != "/srv/music" {
		t.Errorf("MusicDir = %q, want %q", cfg.MusicDir, "/srv/music")
	}
	if cfg.SeekStep != 2*time.Second {
		t.Errorf("SeekStep = %v, want 2s", cfg.SeekStep)
	}
	if cfg.VolumeStep != 0.1 {
		t.Errorf("VolumeStep = %v, want 0.1", cfg.VolumeStep)
	}
	if cfg.MPRIS {
		t.Error("MPRIS = true, want false")
	}
	if cfg.Icons != "nerd" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "nerd")
	}
}

func TestLoad_ExtraPathWins(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `rate_step = 0.25`)
	extra := filepath.Join(dir, "custom.toml")
	writeFile(t, extra, `
rate_step = 0.5
time_update_interval = "100ms"
download_dir = "/tmp/saved"
log_file = "/tmp/cassette.log"
`)

	cfg, err := Load(extra)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.RateStep != 0.5 {
		t.Errorf("RateStep = %v, want 0.5", cfg.RateStep)
	}
	if cfg.TimeUpdateInterval != 100*time.Millisecond {
		t.Errorf("TimeUpdateInterval = %v, want 100ms", cfg.TimeUpdateInterval)
	}
	if cfg.DownloadDir != "/tmp/saved" {
		t.Errorf("DownloadDir = %q, want %q", cfg.DownloadDir, "/tmp/saved")
	}
	if cfg.LogFile != "/tmp/cassette.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "/tmp/cassette.log")
	}
}

func TestLoad_MissingExtraPath(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "nope.toml")); err == nil {
		t.Error("Load() with missing --config file should fail")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `seek_step = [`)

	if _, err := Load(""); err == nil {
		t.Error("Load() with malformed TOML should fail")
	}
}

func TestApplyDefaults_OutOfRange(t *testing.T) {
	cfg := &Config{VolumeStep: 3, RateStep: -1, SeekStep: -time.Second}
	cfg.applyDefaults()

	if cfg.VolumeStep != DefaultVolumeStep {
		t.Errorf("VolumeStep = %v, want %v", cfg.VolumeStep, DefaultVolumeStep)
	}
	if cfg.RateStep != DefaultRateStep {
		t.Errorf("RateStep = %v, want %v", cfg.RateStep, DefaultRateStep)
	}
	if cfg.SeekStep != DefaultSeekStep {
		t.Errorf("SeekStep = %v, want %v", cfg.SeekStep, DefaultSeekStep)
	}
}
