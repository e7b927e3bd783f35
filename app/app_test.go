package app

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"neonorbs/game"
	"neonorbs/hal"
	"neonorbs/internal/rgb565"
)

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type tone struct {
	hz float64
	d  time.Duration
}

type recordAudio struct{ tones []tone }

func (a *recordAudio) Tone(hz float64, d time.Duration) error {
	a.tones = append(a.tones, tone{hz, d})
	return nil
}

type keyboard chan hal.KeyEvent

func (k keyboard) Events() <-chan hal.KeyEvent { return k }
func (k keyboard) Keyboard() hal.Keyboard      { return k }

// testHAL wires a host framebuffer to a scripted keyboard and a recording
// audio device.
type testHAL struct {
	disp  hal.Display
	keys  keyboard
	audio *recordAudio
	log   *lineLog
}

func newTestHAL(w, h int) *testHAL {
	log := &lineLog{}
	return &testHAL{
		disp:  hal.New(hal.HostConfig{Width: w, Height: h, Logger: log}).Display(),
		keys:  make(keyboard, 16),
		audio: &recordAudio{},
		log:   log,
	}
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return h.disp }
func (h *testHAL) Input() hal.Input     { return h.keys }
func (h *testHAL) Audio() hal.Audio     { return h.audio }

// park moves every orb far from the player and stops it.
func park(s *System) {
	for i := range s.sim.State.Orbs {
		s.sim.State.Orbs[i] = game.Orb{X: 500 + float64(i)*10, Y: 350}
	}
}

func TestNewWithoutDisplayIsDisabled(t *testing.T) {
	s := New(hal.New(hal.HostConfig{Logger: &lineLog{}}), Config{Seed: 1}, nil)

	assert.False(t, s.Enabled())
	assert.NoError(t, s.Step())
	assert.Zero(t, s.Frames())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Fingerprint())
}

func TestNewWithSmallDisplayIsDisabled(t *testing.T) {
	s := New(newTestHAL(320, 240), Config{Seed: 1}, nil)
	assert.False(t, s.Enabled())
}

func TestNewShowsZeroScore(t *testing.T) {
	h := newTestHAL(ScreenWidth, ScreenHeight)
	core, logs := observer.New(zap.InfoLevel)

	s := New(h, Config{Seed: 7}, zap.New(core))

	require.True(t, s.Enabled())
	assert.Equal(t, "Score: 0", s.score.Text())
	require.Len(t, logs.FilterMessage("game started").All(), 1)
	assert.Equal(t, uint64(7), logs.All()[0].ContextMap()["seed"])
}

func TestNewWithoutStripStillRuns(t *testing.T) {
	s := New(newTestHAL(CanvasWidth, CanvasHeight), Config{Seed: 1}, nil)
	require.True(t, s.Enabled())
	assert.Nil(t, s.score)
	assert.NoError(t, s.Step())
}

func TestStepAppliesKeyEvents(t *testing.T) {
	h := newTestHAL(ScreenWidth, ScreenHeight)
	s := New(h, Config{Seed: 3}, nil)
	park(s)

	h.keys <- hal.KeyEvent{Code: hal.KeyRight, Press: true}
	h.keys <- hal.KeyEvent{Rune: 'S', Press: true}
	require.NoError(t, s.Step())
	assert.Equal(t, game.Player{X: 155, Y: 155}, s.sim.State.Player)

	h.keys <- hal.KeyEvent{Code: hal.KeyRight}
	h.keys <- hal.KeyEvent{Rune: 'S'}
	h.keys <- hal.KeyEvent{Code: hal.KeyUnknown, Press: true}
	require.NoError(t, s.Step())
	assert.Equal(t, game.Player{X: 155, Y: 155}, s.sim.State.Player)
	assert.Equal(t, uint64(2), s.Frames())
}

func TestStepCollectUpdatesScoreAndPlaysTone(t *testing.T) {
	h := newTestHAL(ScreenWidth, ScreenHeight)
	core, logs := observer.New(zap.InfoLevel)
	s := New(h, Config{Seed: 3, Sound: true}, zap.New(core))
	park(s)
	s.sim.State.Orbs[1] = game.Orb{X: 150, Y: 150}

	require.NoError(t, s.Step())

	assert.Equal(t, 1, s.Score())
	assert.Equal(t, "Score: 1", s.score.Text())
	assert.Equal(t, []tone{{880, 50 * time.Millisecond}}, h.audio.tones)

	collected := logs.FilterMessage("orb collected").All()
	require.Len(t, collected, 1)
	assert.Equal(t, int64(1), collected[0].ContextMap()["orb"])
	assert.Equal(t, int64(1), collected[0].ContextMap()["score"])
}

func TestStepSilentWithoutSound(t *testing.T) {
	h := newTestHAL(ScreenWidth, ScreenHeight)
	s := New(h, Config{Seed: 3}, nil)
	park(s)
	s.sim.State.Orbs[0] = game.Orb{X: 150, Y: 150}

	require.NoError(t, s.Step())

	assert.Equal(t, 1, s.Score())
	assert.Empty(t, h.audio.tones)
}

func TestStepDrawsPlayer(t *testing.T) {
	h := newTestHAL(ScreenWidth, ScreenHeight)
	s := New(h, Config{Seed: 3}, nil)
	park(s)

	require.NoError(t, s.Step())

	fb := h.disp.Framebuffer()
	p := rgb565.Load(fb.Buffer(), 150*fb.StrideBytes()+150*2)
	c := game.PlayerColor
	assert.Equal(t, rgb565.Pack(c.R, c.G, c.B), p)
}

func TestSameSeedSameGame(t *testing.T) {
	run := func() uint64 {
		h := newTestHAL(ScreenWidth, ScreenHeight)
		s := New(h, Config{Seed: 99}, nil)
		h.keys <- hal.KeyEvent{Code: hal.KeyDown, Press: true}
		for i := 0; i < 200; i++ {
			require.NoError(t, s.Step())
		}
		return s.Fingerprint()
	}
	assert.Equal(t, run(), run())
}

func TestStepRecoversPanic(t *testing.T) {
	h := newTestHAL(ScreenWidth, ScreenHeight)
	s := New(h, Config{Seed: 3}, nil)
	park(s)
	s.sim.State.Orbs[0] = game.Orb{X: 150, Y: 150}
	s.sim.OnCollect(func(game.Collect) { panic("boom") })

	err := s.Step()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	assert.Equal(t, "Panic:", h.log.lines[0])
	assert.Contains(t, strings.Join(h.log.lines, "\n"), "panic: boom")

	fb := h.disp.Framebuffer()
	corner := rgb565.Load(fb.Buffer(), (fb.Height()-1)*fb.StrideBytes()+(fb.Width()-1)*2)
	assert.Equal(t, rgb565.Pack(255, 255, 255), corner)

	assert.Equal(t, err, s.Step(), "stays failed")
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		s          string
		n          int
		head, tail string
	}{
		{"hello", 2, "he", "llo"},
		{"hello", 10, "hello", ""},
		{"héllo", 2, "hé", "llo"},
		{"", 3, "", ""},
		{"abc", 0, "", "abc"},
	}
	for _, tt := range tests {
		head, tail := takeRunes(tt.s, tt.n)
		assert.Equal(t, tt.head, head)
		assert.Equal(t, tt.tail, tail)
	}
}
