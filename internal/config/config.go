package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultSeekStep           = 5 * time.Second
	DefaultVolumeStep         = 0.05
	DefaultRateStep           = 0.1
	DefaultTimeUpdateInterval = 250 * time.Millisecond
)

type Config struct {
	MusicDir    string `koanf:"music_dir"`    // empty means the bundled tones
	DownloadDir string `koanf:"download_dir"` // empty means the XDG download dir
	LogFile     string `koanf:"log_file"`     // empty disables the debug log
	Icons       string `koanf:"icons"`        // "nerd", "unicode", or "none"
	MPRIS       bool   `koanf:"mpris"`

	SeekStep           time.Duration `koanf:"seek_step"`
	VolumeStep         float64       `koanf:"volume_step"`
	RateStep           float64       `koanf:"rate_step"`
	TimeUpdateInterval time.Duration `koanf:"time_update_interval"`
}

// Load reads the config files in priority order (last wins). extra is an
// optional highest-priority path, which unlike the defaults must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if extra != "" {
		path := expandPath(extra)
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg := &Config{
		Icons: "unicode",
		MPRIS: true,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.MusicDir = expandPath(cfg.MusicDir)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.DownloadDir = expandPath(cfg.DownloadDir)
	if cfg.DownloadDir == "" {
		cfg.DownloadDir = xdg.UserDirs.Download
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SeekStep <= 0 {
		c.SeekStep = DefaultSeekStep
	}
	if c.VolumeStep <= 0 || c.VolumeStep > 1 {
		c.VolumeStep = DefaultVolumeStep
	}
	if c.RateStep <= 0 || c.RateStep > 1.5 {
		c.RateStep = DefaultRateStep
	}
	if c.TimeUpdateInterval <= 0 {
		c.TimeUpdateInterval = DefaultTimeUpdateInterval
	}
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/cassette/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, "cassette", "config.toml"))

	// 2. ./config.toml (pwd)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
