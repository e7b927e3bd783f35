package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// HostConfig sizes the host framebuffer and supplies the log sink.
type HostConfig struct {
	Width  int
	Height int
	// Logger receives HAL log lines. Nil writes to stdout.
	Logger Logger
}

type keyboardSource interface {
	Keyboard
	poll()
}

type hostHAL struct {
	logger Logger
	fb     *hostFramebuffer
	kbd    keyboardSource
	aud    Audio
}

// New returns a host HAL without keyboard or audio.
func New(cfg HostConfig) HAL {
	return newHost(cfg, nullKeyboard{}, nullAudio{})
}

func newHost(cfg HostConfig, kbd keyboardSource, aud Audio) *hostHAL {
	logger := cfg.Logger
	if logger == nil {
		logger = &hostLogger{w: os.Stdout}
	}
	h := &hostHAL{logger: logger, kbd: kbd, aud: aud}
	if cfg.Width > 0 && cfg.Height > 0 {
		h.fb = newHostFramebuffer(cfg.Width, cfg.Height)
	}
	return h
}

func (h *hostHAL) Logger() Logger { return h.logger }
func (h *hostHAL) Input() Input   { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Audio() Audio   { return h.aud }

func (h *hostHAL) Display() Display {
	if h.fb == nil {
		return nil
	}
	return hostDisplay{fb: h.fb}
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd keyboardSource
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// nullKeyboard never produces events.
type nullKeyboard struct{}

func (nullKeyboard) Events() <-chan KeyEvent { return nil }
func (nullKeyboard) poll()                   {}

type nullAudio struct{}

func (nullAudio) Tone(float64, time.Duration) error { return ErrNotImplemented }

// emitKey queues ev without blocking; events are dropped when the queue is full.
func emitKey(ch chan KeyEvent, ev KeyEvent) {
	select {
	case ch <- ev:
	default:
	}
}
