package game

import (
	"fmt"
	"math"
)

// Collect records an orb picked up during a frame.
type Collect struct {
	Index int
	Orb   Orb // the orb as it was when collected
	Score int // score after the pickup
}

// Step advances s by one frame without drawing.
func Step(s *State, keys Keys, rng Rand) []Collect {
	return Frame(s, keys, rng, nil)
}

// Frame advances s by one frame and, when surf is non-nil, draws it.
//
// Each orb is moved, drawn and then tested against the player in index order,
// so a collected orb is drawn at its last position and its replacement first
// appears on the next frame.
func Frame(s *State, keys Keys, rng Rand, surf Surface) []Collect {
	if surf != nil {
		surf.SetGlow(TrailColor, 0)
		surf.SetFill(TrailColor)
		surf.FillRect(0, 0, CanvasWidth, CanvasHeight)
	}

	movePlayer(&s.Player, keys)
	if surf != nil {
		RenderPlayer(s.Player, surf)
	}

	var collected []Collect
	for i := range s.Orbs {
		AdvanceOrb(&s.Orbs[i])
		if surf != nil {
			RenderOrb(s.Orbs[i], surf)
		}

		dx := s.Player.X - s.Orbs[i].X
		dy := s.Player.Y - s.Orbs[i].Y
		if math.Sqrt(dx*dx+dy*dy) < CollectDistance {
			s.Score++
			collected = append(collected, Collect{Index: i, Orb: s.Orbs[i], Score: s.Score})
			s.Orbs[i] = NewOrb(rng)
		}
	}
	return collected
}

func movePlayer(p *Player, keys Keys) {
	dx, dy := keys.Direction()
	p.X = clamp(p.X+dx*PlayerSpeed, PlayerHalfSize, CanvasWidth-PlayerHalfSize)
	p.Y = clamp(p.Y+dy*PlayerSpeed, PlayerHalfSize, CanvasHeight-PlayerHalfSize)
}

// RenderPlayer draws p as a glowing square.
func RenderPlayer(p Player, surf Surface) {
	surf.SetFill(PlayerColor)
	surf.SetGlow(PlayerColor, GlowBlur)
	surf.FillRect(p.X-PlayerHalfSize, p.Y-PlayerHalfSize, 2*PlayerHalfSize, 2*PlayerHalfSize)
}

// ScoreText formats a score the way the score display shows it.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
