package engine

import (
	"errors"

	"github.com/FredLuc12/MiniRPG/internal/game"
)

var ErrSkillNotLearned = errors.New("skill not learned")

const (
	fireballPoisonDamage   = 8
	fireballPoisonDuration = 3
	shieldSkillPoints      = 40
	shieldSkillDuration    = 3
	sneakStunChance        = 0.30
	sneakStunDuration      = 1
)

// SkillOutcome reports what a skill did. Damage has already been applied.
type SkillOutcome struct {
	Skill  game.SkillID
	Damage int
	Events []Event
}

// ResolveSkill runs one skill. Unknown ids return game.ErrUnknownSkill and
// change nothing.
func ResolveSkill(rng RNG, skill game.SkillID, caster, target *game.Combatant) (SkillOutcome, error) {
	out := SkillOutcome{Skill: skill}
	switch skill {
	case game.SkillPowerStrike:
		dmg, events := ComputeDamage(rng, caster, target)
		out.Events = append(out.Events, events...)
		out.Damage = scale(dmg, 3, 2)
		target.HP -= out.Damage
	case game.SkillFireball:
		// Magic bypasses shields.
		out.Damage = max(1, scale(caster.EffectiveIntelligence(), 12, 10)-target.EffectiveDefense())
		target.HP -= out.Damage
		out.Events = append(out.Events, ApplyStatus(target, game.NewPoison(fireballPoisonDamage, fireballPoisonDuration)))
	case game.SkillShield:
		out.Events = append(out.Events, ApplyStatus(caster, game.NewShield(shieldSkillPoints, shieldSkillDuration)))
	case game.SkillSneakAttack:
		dmg, events := ComputeDamage(rng, caster, target)
		out.Events = append(out.Events, events...)
		out.Damage = scale(dmg, 12, 10)
		target.HP -= out.Damage
		if rng.Float64() < sneakStunChance {
			out.Events = append(out.Events, ApplyStatus(target, game.NewStun(sneakStunDuration)))
		}
	default:
		return SkillOutcome{}, game.ErrUnknownSkill
	}
	return out, nil
}
