package engine

// --- Round context ----------------------------------------------------
type roundContext struct {
	state  *CombatState
	rng    RNG
	events []Event
}

func newRoundContext(state *CombatState, rng RNG) *roundContext {
	return &roundContext{state: state, rng: rng, events: make([]Event, 0, 16)}
}

func (rc *roundContext) add(events ...Event) { rc.events = append(rc.events, events...) }

func (rc *roundContext) enter(stage Stage) { rc.state.Stage = stage }
