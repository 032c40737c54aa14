package game

// StatusKind names the timed effects a combatant can carry.
type StatusKind string

const (
	StatusPoison StatusKind = "poison"
	StatusShield StatusKind = "shield"
	StatusStun   StatusKind = "stun"
	StatusBurn   StatusKind = "burn"
)

// Phase decides in which pass of the round a status fires.
type Phase string

const (
	PhaseStartTurn Phase = "start_turn"
	PhaseOnHit     Phase = "on_hit"
	PhaseEndTurn   Phase = "end_turn"
)

// Status is one active timed effect. Duration counts remaining ticks;
// DamagePerTurn is used by Poison and Burn, Points by Shield.
type Status struct {
	Kind          StatusKind
	Phase         Phase
	Duration      int
	DamagePerTurn int
	Points        int
}

func NewPoison(damagePerTurn, duration int) Status {
	return Status{Kind: StatusPoison, Phase: PhaseStartTurn, Duration: duration, DamagePerTurn: damagePerTurn}
}

func NewShield(points, duration int) Status {
	return Status{Kind: StatusShield, Phase: PhaseOnHit, Duration: duration, Points: points}
}

func NewStun(duration int) Status {
	return Status{Kind: StatusStun, Phase: PhaseStartTurn, Duration: duration}
}

func NewBurn(damagePerTurn, duration int) Status {
	return Status{Kind: StatusBurn, Phase: PhaseEndTurn, Duration: duration, DamagePerTurn: damagePerTurn}
}
