package engine

import (
	"errors"

	"github.com/FredLuc12/MiniRPG/internal/game"
)

var ErrUnknownAction = errors.New("unknown action")

const (
	enemyBurnChance   = 0.30
	enemyBurnDamage   = 12
	enemyBurnDuration = 2
)

// executePlayerAction resolves the player's decision. It returns true when
// the player escaped.
func (rc *roundContext) executePlayerAction(action PlayerAction) bool {
	player, enemy := rc.state.Player, rc.state.Enemy
	if IsStunned(player) {
		rc.add(Event{Kind: EventActionBlocked, Actor: player.Name, Status: game.StatusStun})
		return false
	}

	switch action.Kind {
	case ActionAttack:
		rc.attack(player, enemy)
	case ActionSkill:
		if !player.HasSkill(action.Skill) {
			err := ErrSkillNotLearned
			if _, perr := game.ParseSkill(string(action.Skill)); perr != nil {
				err = game.ErrUnknownSkill
			}
			rc.reject(player, action, err)
			return false
		}
		out, err := ResolveSkill(rc.rng, action.Skill, player, enemy)
		if err != nil {
			rc.reject(player, action, err)
			return false
		}
		rc.add(out.Events...)
		rc.add(Event{Kind: EventSkill, Actor: player.Name, Target: enemy.Name, Skill: out.Skill, Amount: out.Damage})
	case ActionItem:
		rc.useItem(player, enemy, action)
	case ActionDefend:
		rc.add(ResolveDefend(player))
	case ActionFlee:
		if ResolveFlee(rc.rng, player, enemy) {
			rc.add(Event{Kind: EventFled, Actor: player.Name})
			return true
		}
		rc.add(Event{Kind: EventFleeFailed, Actor: player.Name})
	default:
		rc.reject(player, action, ErrUnknownAction)
	}
	rc.checkPhase(enemy)
	return false
}

// useItem consumes a consumable from the player's inventory. The item stays
// in the bag when its effect cannot be resolved.
func (rc *roundContext) useItem(player, enemy *game.Combatant, action PlayerAction) {
	if player.Inventory == nil {
		rc.reject(player, action, game.ErrItemNotInInventory)
		return
	}
	it := player.Inventory.Get(action.Item)
	if it == nil {
		rc.reject(player, action, game.ErrItemNotInInventory)
		return
	}
	if it.Kind != game.KindConsumable {
		rc.reject(player, action, game.ErrWrongItemKind)
		return
	}
	out, err := ResolveItem(player, it.Effect, enemy)
	if err != nil {
		rc.reject(player, action, err)
		return
	}
	_, _ = player.Inventory.Remove(it.Name)
	ev := Event{Kind: EventItemUsed, Actor: player.Name, Item: it.Name, Amount: out.Healed}
	if out.Damage > 0 {
		ev.Target = enemy.Name
		ev.Amount = out.Damage
	}
	rc.add(ev)
}

func (rc *roundContext) reject(actor *game.Combatant, action PlayerAction, err error) {
	rc.add(Event{Kind: EventActionRejected, Actor: actor.Name, Skill: action.Skill, Item: action.Item, Err: err})
}

// executeEnemyTurn runs the fixed enemy policy: enemies with the special
// skill trait burn the player 30% of the time, otherwise they attack.
func (rc *roundContext) executeEnemyTurn() {
	player, enemy := rc.state.Player, rc.state.Enemy
	if enemy.IsDefeated() {
		return
	}
	if IsStunned(enemy) {
		rc.add(Event{Kind: EventActionBlocked, Actor: enemy.Name, Status: game.StatusStun})
		return
	}
	if enemy.HasTrait(game.TraitSpecialSkill) && rc.rng.Float64() < enemyBurnChance {
		rc.add(ApplyStatus(player, game.NewBurn(enemyBurnDamage, enemyBurnDuration)))
		return
	}
	rc.attack(enemy, player)
}
