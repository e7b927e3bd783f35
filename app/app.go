package app

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"neonorbs/game"
	"neonorbs/hal"
	"neonorbs/internal/buildinfo"
	"neonorbs/internal/hud"
	"neonorbs/internal/raster"
)

const (
	CanvasWidth  = int(game.CanvasWidth)
	CanvasHeight = int(game.CanvasHeight)
	HUDHeight    = 16

	// ScreenWidth and ScreenHeight size the framebuffer: the canvas on top,
	// the score strip below it.
	ScreenWidth  = CanvasWidth
	ScreenHeight = CanvasHeight + HUDHeight
)

const (
	collectToneHz  = 880
	collectToneDur = 50 * time.Millisecond
)

type Config struct {
	// Seed for orb placement; 0 seeds from the clock.
	Seed  uint64
	Sound bool
}

// System runs the game on a HAL, one frame per Step.
type System struct {
	h   hal.HAL
	cfg Config
	log *zap.Logger

	fb     hal.Framebuffer
	events <-chan hal.KeyEvent
	canvas *raster.Canvas
	score  *hud.Score
	sim    *game.Simulation

	frames uint64
	err    error
}

// New sets up the game on h. Without a usable display the returned system
// is disabled and Step does nothing.
func New(h hal.HAL, cfg Config, log *zap.Logger) *System {
	if log == nil {
		log = zap.NewNop()
	}
	s := &System{h: h, cfg: cfg, log: log}

	if d := h.Display(); d != nil {
		s.fb = d.Framebuffer()
	}
	if s.fb != nil {
		s.canvas = raster.NewCanvas(s.fb, 0, 0, CanvasWidth, CanvasHeight)
	}
	if s.canvas == nil {
		log.Debug("no display for the playfield; game disabled")
		return s
	}

	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.events = kbd.Events()
		}
	}

	bg := game.TrailColor
	s.fb.ClearRGB(bg.R, bg.G, bg.B)

	var display game.ScoreDisplay
	if s.score = hud.NewScore(s.fb, CanvasHeight, s.fb.Height()-CanvasHeight); s.score != nil {
		display = s.score
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s.sim = game.New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), display)
	s.sim.OnCollect(s.collected)

	log.Info("game started",
		zap.Uint64("seed", seed),
		zap.Bool("sound", cfg.Sound),
		zap.String("build", buildinfo.String()))
	return s
}

// Enabled reports whether the game is running.
func (s *System) Enabled() bool { return s.sim != nil }

func (s *System) Frames() uint64 { return s.frames }

func (s *System) Score() int {
	if s.sim == nil {
		return 0
	}
	return s.sim.State.Score
}

func (s *System) Fingerprint() uint64 {
	if s.sim == nil {
		return 0
	}
	return s.sim.State.Fingerprint()
}

// Step applies pending key events, runs one frame and presents it. After a
// panic it keeps returning the same error.
func (s *System) Step() (err error) {
	if s.sim == nil {
		return nil
	}
	if s.err != nil {
		return s.err
	}
	defer func() {
		if r := recover(); r != nil {
			s.err = s.crash(r)
			err = s.err
		}
	}()

	s.drainKeys()
	s.sim.Frame(s.canvas)
	s.frames++
	if err := s.fb.Present(); err != nil {
		return fmt.Errorf("present frame %d: %w", s.frames, err)
	}
	return nil
}

func (s *System) drainKeys() {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				return
			}
			id := ev.ID()
			if id == "" {
				continue
			}
			if ev.Press {
				s.sim.Keys.Press(id)
			} else {
				s.sim.Keys.Release(id)
			}
		default:
			return
		}
	}
}

func (s *System) collected(c game.Collect) {
	s.log.Info("orb collected",
		zap.Int("orb", c.Index),
		zap.Int("score", c.Score),
		zap.Uint64("frame", s.frames))

	if !s.cfg.Sound {
		return
	}
	a := s.h.Audio()
	if a == nil {
		return
	}
	if err := a.Tone(collectToneHz, collectToneDur); err != nil && !errors.Is(err, hal.ErrNotImplemented) {
		s.log.Debug("collect tone", zap.Error(err))
	}
}
