package hal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Host HostConfig
	Hz   int
	// Hold is how long a key counts as held after its last press or
	// auto-repeat. Terminals report no key releases, so it has to outlast the
	// keyboard's initial repeat delay.
	Hold time.Duration
	// Screen overrides the terminal screen, mainly for tests.
	Screen tcell.Screen
}

// DefaultTerminalHold covers the usual 500-660 ms auto-repeat delays.
const DefaultTerminalHold = 750 * time.Millisecond

var errTerminalQuit = errors.New("terminal: quit")

// RunTerminal renders the framebuffer into the terminal with half-block
// cells and feeds key presses to the app. Esc or Ctrl-C stops it with a nil
// error; ctx ending stops it with ctx.Err().
func RunTerminal(ctx context.Context, cfg TerminalConfig, newApp func(HAL) func() error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Hold <= 0 {
		cfg.Hold = DefaultTerminalHold
	}

	screen := cfg.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}

	kbd := newTermKeyboard(cfg.Hold, time.Now)
	h := newHost(cfg.Host, kbd, newTerminalAudio())
	if h.fb == nil {
		screen.Fini()
		return errNoFramebuffer
	}
	step := newApp(h)

	g, gctx := errgroup.WithContext(ctx)

	// PollEvent returns nil once the screen is finalized by the tick loop.
	g.Go(func() error {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return nil
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return errTerminalQuit
				}
				kbd.feed(ev)
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	})

	g.Go(func() error {
		defer screen.Fini()

		t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return ctx.Err()
			case <-t.C:
				kbd.poll()
				if step != nil {
					if err := step(); err != nil {
						return err
					}
				}
				drawTerminal(screen, h.fb)
				screen.Show()
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errTerminalQuit) {
		return err
	}
	return nil
}

// drawTerminal paints fb scaled to the screen, two pixel rows per cell: the
// upper half block takes the top sample as foreground and the bottom sample
// as background.
func drawTerminal(screen tcell.Screen, fb *hostFramebuffer) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	sample := func(cx, sub int) tcell.Color {
		x := cx * fb.width / cols
		y := sub * fb.height / (rows * 2)
		r, g, b := fb.pixelRGB(x, y)
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			style := tcell.StyleDefault.
				Foreground(sample(cx, cy*2)).
				Background(sample(cx, cy*2+1))
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

type termKey struct {
	code KeyCode
	r    rune
}

// termKeyboard turns terminal key presses into press/release pairs. A key
// stays held until hold passes without another press of it.
type termKeyboard struct {
	ch   chan KeyEvent
	hold time.Duration
	now  func() time.Time

	mu   sync.Mutex
	held map[termKey]time.Time // key -> time of last press
}

func newTermKeyboard(hold time.Duration, now func() time.Time) *termKeyboard {
	return &termKeyboard{
		ch:   make(chan KeyEvent, 64),
		hold: hold,
		now:  now,
		held: make(map[termKey]time.Time),
	}
}

func (k *termKeyboard) Events() <-chan KeyEvent { return k.ch }

var termKeyCodes = map[tcell.Key]KeyCode{
	tcell.KeyUp:    KeyUp,
	tcell.KeyDown:  KeyDown,
	tcell.KeyLeft:  KeyLeft,
	tcell.KeyRight: KeyRight,
}

func (k *termKeyboard) feed(ev *tcell.EventKey) {
	var key termKey
	if code, ok := termKeyCodes[ev.Key()]; ok {
		key.code = code
	} else if ev.Key() == tcell.KeyRune {
		key.r = ev.Rune()
	} else {
		return
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if _, ok := k.held[key]; !ok {
		emitKey(k.ch, KeyEvent{Code: key.code, Rune: key.r, Press: true})
	}
	k.held[key] = k.now()
}

func (k *termKeyboard) poll() {
	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.now()
	for key, at := range k.held {
		if now.Sub(at) > k.hold {
			delete(k.held, key)
			emitKey(k.ch, KeyEvent{Code: key.code, Rune: key.r})
		}
	}
}
