package engine

import (
	"errors"

	"github.com/FredLuc12/MiniRPG/internal/game"
)

var ErrMissingTarget = errors.New("item effect needs a target")

const bombDamage = 40

// ItemOutcome reports the effect of a consumable.
type ItemOutcome struct {
	Effect game.ItemEffect
	Healed int
	Damage int
}

// ResolveItem applies a consumable effect from the fixed catalog. Unknown
// effects return game.ErrUnknownItemEffect and change nothing.
func ResolveItem(actor *game.Combatant, effect game.ItemEffect, target *game.Combatant) (ItemOutcome, error) {
	out := ItemOutcome{Effect: effect}
	switch effect {
	case game.EffectHeal30:
		out.Healed = actor.Heal(30)
	case game.EffectHeal40:
		out.Healed = actor.Heal(40)
	case game.EffectBomb:
		if target == nil {
			return ItemOutcome{}, ErrMissingTarget
		}
		out.Damage = bombDamage
		target.HP -= bombDamage
	default:
		return ItemOutcome{}, game.ErrUnknownItemEffect
	}
	return out, nil
}
