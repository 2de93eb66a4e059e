package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cassette/internal/app"
	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/config"
	"github.com/llehouerou/cassette/internal/console"
	"github.com/llehouerou/cassette/internal/errmsg"
	"github.com/llehouerou/cassette/internal/icons"
	"github.com/llehouerou/cassette/internal/media"
	"github.com/llehouerou/cassette/internal/mpris"
	"github.com/llehouerou/cassette/internal/playback"
	"github.com/llehouerou/cassette/internal/stderr"
)

func main() {
	configPath := flag.String("config", "", "extra config file, loaded last")
	dir := flag.String("dir", "", "music directory (overrides music_dir)")
	lineMode := flag.Bool("console", false, "line-oriented console instead of the full-screen player")
	flag.Parse()

	if err := run(*configPath, *dir, *lineMode); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, dir string, lineMode bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	icons.Init(cfg.Icons)

	closeLog, err := setupLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if dir == "" {
		dir = cfg.MusicDir
	}
	cat, err := loadCatalog(dir)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpCatalogLoad, dir, err))
	}

	// Backends write to fd 2 during speaker init, so capture first.
	var capture *stderr.Capture
	if !lineMode {
		capture, err = stderr.Start()
		if err != nil {
			log.Printf("stderr capture: %v", err)
		}
	}
	defer func() {
		if capture != nil {
			capture.Stop()
		}
	}()

	engine, err := media.NewEngine(cat, cfg.TimeUpdateInterval)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpAudioInit, err))
	}
	vm := playback.New(cat, engine)
	defer vm.Close()

	if lineMode {
		return runConsole(vm, cat, cfg)
	}

	mirror := &playback.Mirror{}
	mirror.Store(vm.State())

	model := app.New(vm, cat, mirror, app.Options{
		SeekStep:    cfg.SeekStep,
		VolumeStep:  cfg.VolumeStep,
		RateStep:    cfg.RateStep,
		DownloadDir: cfg.DownloadDir,
	})
	if capture != nil {
		model = model.WithStderr(capture.Lines())
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	if cfg.MPRIS {
		adapter, err := mpris.New(mirror, cat.Tracks(), dir, func(i playback.Intent) {
			p.Send(app.IntentMsg{Intent: i})
		})
		if err != nil {
			log.Print(errmsg.Format(errmsg.OpMPRISStart, err))
		} else if adapter != nil {
			defer adapter.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}

func runConsole(vm *playback.ViewModel, cat *catalog.Catalog, cfg *config.Config) error {
	c, err := console.New(vm, cat, cfg.DownloadDir)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// setupLog sends the standard logger to path, or discards it when path
// is empty so nothing is drawn over the UI.
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "cassette")
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return func() { f.Close() }, nil
}

func loadCatalog(dir string) (*catalog.Catalog, error) {
	if dir == "" {
		return catalog.Bundled(), nil
	}
	return catalog.FromDir(dir)
}
