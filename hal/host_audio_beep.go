//go:build cgo

package hal

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// terminalAudio plays tones through the beep speaker.
type terminalAudio struct {
	once sync.Once
	err  error
	rate beep.SampleRate
}

func newTerminalAudio() Audio {
	return &terminalAudio{rate: beep.SampleRate(toneSampleRate)}
}

func (a *terminalAudio) Tone(freqHz float64, d time.Duration) error {
	a.once.Do(func() {
		a.err = speaker.Init(a.rate, a.rate.N(time.Second/10))
	})
	if a.err != nil {
		return a.err
	}

	sine, err := generators.SineTone(a.rate, freqHz)
	if err != nil {
		return err
	}
	speaker.Play(beep.Take(a.rate.N(d), sine))
	return nil
}
