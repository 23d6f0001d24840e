package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/rotate/logger"
	"github.com/milk9111/rotate/prefabs"
)

type options struct {
	configPath string
	debug      bool
	paused     bool
	watch      bool
}

func main() {
	configPath := flag.String("config", "", "scene spec yaml (default: prefabs/demo.yaml, embedded copy as fallback)")
	debug := flag.Bool("debug", false, "enable debug logging and start with the HUD shown")
	paused := flag.Bool("paused", false, "start with the animation paused")
	watch := flag.Bool("watch", false, "reload the scene spec when it changes on disk")
	flag.Parse()

	opts := options{
		configPath: *configPath,
		debug:      *debug,
		paused:     *paused,
		watch:      *watch,
	}
	if err := run(opts); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// run owns the whole session. Escape ends it cleanly with a nil error.
func run(opts options) error {
	spec, err := prefabs.LoadDemoSpec(opts.configPath)
	if err != nil {
		return err
	}
	if opts.debug {
		spec.Log.Level = "debug"
		spec.Log.Development = true
	}

	log, err := logger.New(spec.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	game, err := NewGame(spec, opts, log)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	ebiten.SetWindowTitle(spec.Window.Title)

	log.Info("starting", zap.String("spec", specLabel(opts.configPath)), zap.String("timestep", spec.Timestep))
	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	log.Info("stopped")
	return nil
}

func specLabel(path string) string {
	if path == "" {
		return prefabs.DemoFile
	}
	return path
}
