package game

// Rand is the randomness source for orb placement. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// Orb is a bouncing collectible.
type Orb struct {
	X, Y   float64
	VX, VY float64
}

// NewOrb returns an orb at a random position inside the canvas with a random
// velocity in [-1, 1) on each axis.
func NewOrb(rng Rand) Orb {
	return Orb{
		X:  OrbRadius + rng.Float64()*(CanvasWidth-2*OrbRadius),
		Y:  OrbRadius + rng.Float64()*(CanvasHeight-2*OrbRadius),
		VX: (rng.Float64() - 0.5) * 2,
		VY: (rng.Float64() - 0.5) * 2,
	}
}

// AdvanceOrb moves o by its velocity and keeps it on the canvas.
//
// The wall test runs on the moved but unclamped position, then the clamp
// always applies. An orb that crosses a wall is reflected and snapped back in
// the same call.
func AdvanceOrb(o *Orb) {
	o.X += o.VX
	o.Y += o.VY

	if o.X-OrbRadius < 0 || o.X+OrbRadius > CanvasWidth {
		o.VX = -o.VX
	}
	if o.Y-OrbRadius < 0 || o.Y+OrbRadius > CanvasHeight {
		o.VY = -o.VY
	}

	o.X = clamp(o.X, OrbRadius, CanvasWidth-OrbRadius)
	o.Y = clamp(o.Y, OrbRadius, CanvasHeight-OrbRadius)
}

// RenderOrb draws o as a glowing circle.
func RenderOrb(o Orb, surf Surface) {
	surf.SetFill(OrbColor)
	surf.SetGlow(OrbColor, GlowBlur)
	surf.FillCircle(o.X, o.Y, OrbRadius)
}
