package engine

import "github.com/FredLuc12/MiniRPG/internal/game"

// ApplyStatus appends a status to the target's list.
func ApplyStatus(target *game.Combatant, s game.Status) Event {
	target.Statuses = append(target.Statuses, s)
	return Event{Kind: EventStatusApplied, Target: target.Name, Status: s.Kind, Duration: s.Duration, Amount: s.DamagePerTurn + s.Points}
}

// ResolveStartOfTurn runs the start-of-turn pass. Every status not bound to
// the end of turn is visited in insertion order: start-turn statuses fire,
// then each visited status ticks once and expires at zero.
func ResolveStartOfTurn(target *game.Combatant) []Event {
	return resolvePass(target, game.PhaseStartTurn, func(s game.Status) bool {
		return s.Phase != game.PhaseEndTurn
	})
}

// ResolveEndOfTurn runs the same pass over end-of-turn statuses only.
func ResolveEndOfTurn(target *game.Combatant) []Event {
	return resolvePass(target, game.PhaseEndTurn, func(s game.Status) bool {
		return s.Phase == game.PhaseEndTurn
	})
}

func resolvePass(target *game.Combatant, fires game.Phase, visits func(game.Status) bool) []Event {
	var events []Event
	kept := make([]game.Status, 0, len(target.Statuses))
	for _, s := range target.Statuses {
		if !visits(s) {
			kept = append(kept, s)
			continue
		}
		if s.Phase == fires {
			events = append(events, fireStatus(target, s))
		}
		s.Duration--
		if s.Duration <= 0 {
			events = append(events, expireStatus(target, s))
			continue
		}
		kept = append(kept, s)
	}
	target.Statuses = kept
	return events
}

func fireStatus(target *game.Combatant, s game.Status) Event {
	switch s.Kind {
	case game.StatusPoison, game.StatusBurn:
		target.HP -= s.DamagePerTurn
		return Event{Kind: EventStatusDamage, Target: target.Name, Status: s.Kind, Amount: s.DamagePerTurn}
	case game.StatusStun:
		return Event{Kind: EventTurnSkipped, Target: target.Name, Status: s.Kind}
	}
	return Event{Kind: EventStatusApplied, Target: target.Name, Status: s.Kind, Duration: s.Duration}
}

func expireStatus(target *game.Combatant, s game.Status) Event {
	return Event{Kind: EventStatusExpired, Target: target.Name, Status: s.Kind, Amount: s.Points}
}

// AbsorbThroughShields passes incoming damage through the target's shields in
// insertion order and returns what is left. A shield emptied here is forced
// to duration 0. Every status visited by this call ticks as well, so a shield
// may lose two duration points in the same round (once here, once in the
// start-of-turn pass).
func AbsorbThroughShields(target *game.Combatant, incoming int) (int, []Event) {
	var events []Event
	remaining := incoming
	kept := make([]game.Status, 0, len(target.Statuses))
	for _, s := range target.Statuses {
		if s.Kind == game.StatusShield {
			absorbed := min(max(remaining, 0), s.Points)
			s.Points -= absorbed
			remaining -= absorbed
			if absorbed > 0 {
				events = append(events, Event{Kind: EventShieldAbsorbed, Target: target.Name, Status: s.Kind, Amount: absorbed})
			}
			if s.Points <= 0 {
				s.Duration = 0
			}
		}
		s.Duration--
		if s.Duration <= 0 {
			events = append(events, expireStatus(target, s))
			continue
		}
		kept = append(kept, s)
	}
	target.Statuses = kept
	return remaining, events
}

// IsStunned reports whether any stun is active, whatever the pass order.
func IsStunned(target *game.Combatant) bool {
	for _, s := range target.Statuses {
		if s.Kind == game.StatusStun {
			return true
		}
	}
	return false
}
