package game

// Simulation owns a State together with everything a host needs to drive it:
// held keys, the random source, the score display and collect observers.
type Simulation struct {
	State *State
	Keys  Keys

	rng       Rand
	score     ScoreDisplay
	observers []func(Collect)
}

// New starts a game. score may be nil.
func New(rng Rand, score ScoreDisplay) *Simulation {
	sim := &Simulation{
		State: NewState(rng),
		Keys:  make(Keys),
		rng:   rng,
		score: score,
	}
	if score != nil {
		score.SetText(ScoreText(0))
	}
	return sim
}

// OnCollect registers fn to run after every orb pickup, once the score
// display has been updated.
func (sim *Simulation) OnCollect(fn func(Collect)) {
	sim.observers = append(sim.observers, fn)
}

// Frame runs one frame step, drawing to surf when it is non-nil.
func (sim *Simulation) Frame(surf Surface) []Collect {
	collected := Frame(sim.State, sim.Keys, sim.rng, surf)
	for _, c := range collected {
		if sim.score != nil {
			sim.score.SetText(ScoreText(c.Score))
		}
		for _, fn := range sim.observers {
			fn(c)
		}
	}
	return collected
}
