package game

// Raw key identifiers for the arrow keys. Letter keys are identified by the
// rune as typed ("w", "W").
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Keys is the held state of every key seen so far, keyed by raw identifier.
// It is not safe for concurrent use; hosts funnel key events to the goroutine
// that runs the frame step.
type Keys map[string]bool

// Press marks id as held.
func (k Keys) Press(id string) { k[id] = true }

// Release marks id as no longer held.
func (k Keys) Release(id string) { k[id] = false }

// Held reports whether any of ids is held.
func (k Keys) Held(ids ...string) bool {
	for _, id := range ids {
		if k[id] {
			return true
		}
	}
	return false
}

// Direction returns the per-axis movement sign of the held keys. Opposite
// directions cancel and perpendicular ones compose.
func (k Keys) Direction() (dx, dy float64) {
	if k.Held(KeyArrowUp, "w", "W") {
		dy--
	}
	if k.Held(KeyArrowDown, "s", "S") {
		dy++
	}
	if k.Held(KeyArrowLeft, "a", "A") {
		dx--
	}
	if k.Held(KeyArrowRight, "d", "D") {
		dx++
	}
	return dx, dy
}
