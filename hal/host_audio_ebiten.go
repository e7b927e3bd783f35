//go:build cgo

package hal

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// windowAudio plays tones through Ebiten's audio context.
type windowAudio struct {
	mu  sync.Mutex
	ctx *audio.Context

	// last keeps the most recent player reachable until it finishes.
	last *audio.Player
}

func newWindowAudio() Audio { return &windowAudio{} }

func (a *windowAudio) Tone(freqHz float64, d time.Duration) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ctx == nil {
		// Ebiten allows one audio context per process.
		a.ctx = audio.CurrentContext()
		if a.ctx == nil {
			a.ctx = audio.NewContext(toneSampleRate)
		}
	}

	pcm, err := sineS16(a.ctx.SampleRate(), freqHz, d, 0.25)
	if err != nil {
		return err
	}
	p := a.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	a.last = p
	return nil
}
