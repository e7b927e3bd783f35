package rgb565

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackUnpack(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
	}
	for _, tt := range tests {
		got := Pack(tt.r, tt.g, tt.b)
		assert.Equal(t, tt.want, got, "Pack(%d, %d, %d)", tt.r, tt.g, tt.b)

		r, g, b := Unpack(got)
		assert.Equal(t, [3]uint8{tt.r, tt.g, tt.b}, [3]uint8{r, g, b})
	}
}

func TestLoadStore(t *testing.T) {
	buf := make([]byte, 4)
	Store(buf, 2, 0xABCD)

	assert.Equal(t, []byte{0, 0, 0xCD, 0xAB}, buf)
	assert.Equal(t, uint16(0xABCD), Load(buf, 2))
}

func TestOver(t *testing.T) {
	white := Pack(255, 255, 255)
	red := color.RGBA{R: 255, A: 255}

	assert.Equal(t, Pack(255, 0, 0), Over(white, red, 1))
	assert.Equal(t, white, Over(white, red, 0))
	assert.Equal(t, white, Over(white, color.RGBA{R: 255}, 1))

	half := Over(Pack(0, 0, 0), color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.5)
	r, g, b := Unpack(half)
	assert.InDelta(t, 128, int(r), 8)
	assert.InDelta(t, 128, int(g), 8)
	assert.InDelta(t, 128, int(b), 8)
}

func TestOverConvergesToSource(t *testing.T) {
	trail := color.RGBA{R: 10, G: 14, B: 39, A: 204}
	p := Pack(255, 0, 110)
	for i := 0; i < 20; i++ {
		p = Over(p, trail, 1)
	}
	r, g, b := Unpack(p)
	assert.InDelta(t, 10, int(r), 9)
	assert.InDelta(t, 14, int(g), 5)
	assert.InDelta(t, 39, int(b), 9)
}
