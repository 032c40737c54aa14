package engine

import "github.com/FredLuc12/MiniRPG/internal/game"

const (
	criticalChance     = 0.10
	criticalMultiplier = 2
	varianceSpread     = 2
)

// ComputeDamage rolls physical damage: attack minus defense, a uniform
// variance in [-2, 2], a 10% chance to double, floored at 1, then absorbed
// by the defender's shields. The result is what the caller subtracts from HP.
func ComputeDamage(rng RNG, attacker, defender *game.Combatant) (int, []Event) {
	var events []Event
	base := attacker.EffectiveAttack() - defender.EffectiveDefense()
	dmg := base + rng.Intn(2*varianceSpread+1) - varianceSpread
	if rng.Float64() < criticalChance {
		dmg *= criticalMultiplier
		events = append(events, Event{Kind: EventCriticalHit, Actor: attacker.Name, Target: defender.Name})
	}
	if dmg < 1 {
		dmg = 1
	}
	final, shieldEvents := AbsorbThroughShields(defender, dmg)
	return final, append(events, shieldEvents...)
}

// attack performs a standard strike and records it.
func (rc *roundContext) attack(attacker, defender *game.Combatant) {
	dmg, events := ComputeDamage(rc.rng, attacker, defender)
	rc.add(events...)
	defender.HP -= dmg
	rc.add(Event{Kind: EventAttack, Actor: attacker.Name, Target: defender.Name, Amount: dmg})
}

// checkPhase moves a boss into its second phase once it falls to half HP.
func (rc *roundContext) checkPhase(c *game.Combatant) {
	if c.Rank != game.RankBoss || c.Phase != 1 {
		return
	}
	if c.HP <= c.MaxHP/2 {
		c.Phase = 2
		rc.add(Event{Kind: EventPhaseChanged, Target: c.Name, Amount: c.Phase})
	}
}
