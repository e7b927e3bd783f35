package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"go.uber.org/zap"

	"neonorbs/app"
	"neonorbs/hal"
	"neonorbs/internal/config"
	"neonorbs/internal/logging"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath string
		headless   bool
		terminal   bool
		hz         int
		ticks      uint64
		seed       uint64
		scale      int
		sound      bool
		logLevel   string
	)
	flag.StringVar(&configPath, "config", "", "YAML config file.")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.BoolVar(&terminal, "terminal", false, "Render into the terminal.")
	flag.IntVar(&hz, "hz", 60, "Frame rate in headless and terminal mode.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.Uint64Var(&seed, "seed", 0, "Orb placement seed (0 = from the clock).")
	flag.IntVar(&scale, "scale", 1, "Window scale factor.")
	flag.BoolVar(&sound, "sound", true, "Play a tone when an orb is collected.")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error).")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hz":
			cfg.Headless.Hz = hz
			cfg.Terminal.Hz = hz
		case "ticks":
			cfg.Headless.Ticks = ticks
		case "seed":
			cfg.Seed = seed
		case "scale":
			cfg.Window.Scale = scale
		case "sound":
			cfg.Sound = sound
		case "log-level":
			cfg.Log.Level = logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Console output would tear the terminal renderer's screen.
	if terminal {
		cfg.Log.Output = slices.DeleteFunc(cfg.Log.Output, func(p string) bool {
			return p == "stderr" || p == "stdout"
		})
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	host := hal.HostConfig{
		Width:  app.ScreenWidth,
		Height: app.ScreenHeight,
		Logger: logging.Lines{L: log},
	}
	var sys *app.System
	newApp := func(h hal.HAL) func() error {
		sys = app.New(h, app.Config{Seed: cfg.Seed, Sound: cfg.Sound}, log)
		return sys.Step
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case headless:
		err = hal.RunHeadless(ctx, hal.HeadlessConfig{
			Host:  host,
			Hz:    cfg.Headless.Hz,
			Ticks: cfg.Headless.Ticks,
		}, newApp)
	case terminal:
		err = hal.RunTerminal(ctx, hal.TerminalConfig{
			Host: host,
			Hz:   cfg.Terminal.Hz,
			Hold: cfg.Terminal.Hold,
		}, newApp)
	default:
		err = hal.RunWindow(hal.WindowConfig{
			Host:  host,
			Scale: cfg.Window.Scale,
			TPS:   cfg.Window.TPS,
		}, newApp)
	}

	if sys != nil {
		log.Info("game over",
			zap.Int("score", sys.Score()),
			zap.Uint64("frames", sys.Frames()),
			zap.String("fingerprint", fmt.Sprintf("%016x", sys.Fingerprint())))
	}
	return err
}
