package game

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Player is the square avatar; X, Y is its center.
type Player struct {
	X, Y float64
}

// State is the whole simulation: one player, a fixed set of orbs and the score.
type State struct {
	Player Player
	Orbs   [OrbCount]Orb
	Score  int
}

// NewState places the player at its start position and spawns OrbCount orbs.
func NewState(rng Rand) *State {
	s := &State{Player: Player{X: PlayerStartX, Y: PlayerStartY}}
	for i := range s.Orbs {
		s.Orbs[i] = NewOrb(rng)
	}
	return s
}

// Fingerprint hashes every field of s. Equal states hash equal.
func (s *State) Fingerprint() uint64 {
	var buf [8 * (3 + 4*OrbCount)]byte
	b := buf[:0]
	put := func(f float64) {
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(f))
	}
	put(s.Player.X)
	put(s.Player.Y)
	for _, o := range s.Orbs {
		put(o.X)
		put(o.Y)
		put(o.VX)
		put(o.VY)
	}
	b = binary.LittleEndian.AppendUint64(b, uint64(s.Score))
	return xxhash.Sum64(b)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
