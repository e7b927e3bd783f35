package hal

import (
	"fmt"
	"math"
	"time"
)

const toneSampleRate = 44100

// sineS16 renders a sine tone as 16-bit little-endian stereo frames. The
// last few milliseconds fade out to avoid a click.
func sineS16(sampleRate int, freqHz float64, d time.Duration, volume float64) ([]byte, error) {
	if sampleRate <= 0 || freqHz <= 0 || d <= 0 {
		return nil, fmt.Errorf("tone: invalid rate %d, freq %g or duration %v", sampleRate, freqHz, d)
	}
	n := int(d.Seconds() * float64(sampleRate))
	fade := sampleRate / 200
	if fade > n/2 {
		fade = n / 2
	}

	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		amp := volume
		if left := n - i; left < fade {
			amp *= float64(left) / float64(fade)
		}
		s := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*freqHz*float64(i)/float64(sampleRate)))
		j := i * 4
		out[j+0] = byte(s)
		out[j+1] = byte(s >> 8)
		out[j+2] = byte(s)
		out[j+3] = byte(s >> 8)
	}
	return out, nil
}
