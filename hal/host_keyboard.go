//go:build cgo

package hal

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent

	// held remembers the event sent on press so the release matches it even
	// if Shift changed in between.
	held map[ebiten.Key]KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{
		ch:   make(chan KeyEvent, 64),
		held: make(map[ebiten.Key]KeyEvent),
	}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

var hostKeyCodes = map[ebiten.Key]KeyCode{
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyEscape:     KeyEscape,
}

var hostKeyRunes = map[ebiten.Key]rune{
	ebiten.KeyW: 'w',
	ebiten.KeyA: 'a',
	ebiten.KeyS: 's',
	ebiten.KeyD: 'd',
}

func (k *hostKeyboard) poll() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	for key, code := range hostKeyCodes {
		k.edge(key, KeyEvent{Code: code})
	}
	for key, r := range hostKeyRunes {
		if shift {
			r = unicode.ToUpper(r)
		}
		k.edge(key, KeyEvent{Rune: r})
	}
}

func (k *hostKeyboard) edge(key ebiten.Key, ev KeyEvent) {
	if inpututil.IsKeyJustPressed(key) {
		ev.Press = true
		k.held[key] = ev
		emitKey(k.ch, ev)
	}
	if inpututil.IsKeyJustReleased(key) {
		if prev, ok := k.held[key]; ok {
			ev = prev
			delete(k.held, key)
		}
		ev.Press = false
		emitKey(k.ch, ev)
	}
}
