package engine

import "github.com/FredLuc12/MiniRPG/internal/game"

const (
	fleeBase       = 0.5
	fleePerAgility = 0.01
	fleeMin        = 0.1
	fleeMax        = 0.9
	defendBonus    = 5
)

// FleeChance is 50% shifted by one point per agility difference, kept in [10%, 90%].
func FleeChance(actor, opponent *game.Combatant) float64 {
	return clampFloat(fleeBase+fleePerAgility*float64(actor.Agility-opponent.Agility), fleeMin, fleeMax)
}

// ResolveFlee makes a single draw against FleeChance.
func ResolveFlee(rng RNG, actor, opponent *game.Combatant) bool {
	return rng.Float64() < FleeChance(actor, opponent)
}

// ResolveDefend raises base defense by 5. The bonus is never removed, so
// repeated defends stack across rounds.
func ResolveDefend(actor *game.Combatant) Event {
	actor.Defense += defendBonus
	return Event{Kind: EventDefend, Actor: actor.Name, Amount: defendBonus}
}
