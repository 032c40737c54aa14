package service

import (
	"github.com/FredLuc12/MiniRPG/internal/constants"
	"github.com/FredLuc12/MiniRPG/internal/engine"
	"github.com/FredLuc12/MiniRPG/internal/game"
	"github.com/FredLuc12/MiniRPG/internal/quest"
)

// Thresholds of the unattended policy, in percent of max HP.
const (
	autoHealBelow  = 35
	autoFleeBelow  = 15
	autoShieldAt   = 60
	autoReturnHome = 40
)

// StepReport describes what AutoStep did. Exactly one field is set.
type StepReport struct {
	MovedTo string
	Explore *ExploreResult
	Action  *ActionResult
}

// ChooseAction is the fixed policy used when nobody is at the controls:
// drink a potion when low, flee when nearly dead, otherwise open with the
// best skill the hero knows.
func ChooseAction(player, enemy *game.Combatant) engine.PlayerAction {
	if below(player, autoHealBelow) {
		if name := healingItem(player); name != "" {
			return engine.UseItem(name)
		}
		if below(player, autoFleeBelow) {
			return engine.Flee()
		}
	}
	if player.HasSkill(game.SkillShield) && below(player, autoShieldAt) && !shielded(player) {
		return engine.UseSkill(game.SkillShield)
	}
	for _, id := range []game.SkillID{game.SkillFireball, game.SkillPowerStrike, game.SkillSneakAttack} {
		if player.HasSkill(id) {
			return engine.UseSkill(id)
		}
	}
	return engine.Attack()
}

// ChooseDestination sends a wounded hero home to rest and otherwise follows
// the quest: the forest until the key is found, then the dungeon.
func ChooseDestination(g *Game) string {
	if below(g.Player, autoReturnHome) {
		return constants.ZoneVillage
	}
	if g.Quest.Stage() == quest.StageSeekKey {
		return constants.ZoneForest
	}
	return constants.ZoneDungeon
}

// AutoStep advances the session by one decision of the unattended policy.
func (g *Game) AutoStep(rng engine.RNG) (StepReport, error) {
	if g.Over() {
		return StepReport{}, ErrGameOver
	}
	if g.Encounter != nil {
		res, err := g.SubmitAction(ChooseAction(g.Player, g.Encounter.State.Enemy), rng)
		if err != nil {
			return StepReport{}, err
		}
		return StepReport{Action: &res}, nil
	}
	if dest := ChooseDestination(g); dest != g.Position {
		if err := g.Move(dest); err != nil {
			return StepReport{}, err
		}
		return StepReport{MovedTo: dest}, nil
	}
	res, err := g.Explore(rng)
	if err != nil {
		return StepReport{}, err
	}
	if res.Item != nil && !res.ItemDropped {
		equipBest(g.Player)
	}
	return StepReport{Explore: &res}, nil
}

// equipBest wears the strongest weapon and armor in the bag.
func equipBest(p *game.Combatant) {
	for _, it := range p.Inventory.Items() {
		switch it.Kind {
		case game.KindWeapon:
			if p.Weapon == nil || it.AttackBonus > p.Weapon.AttackBonus {
				_ = p.EquipWeapon(it.Name)
			}
		case game.KindArmor:
			if p.Armor == nil || it.DefenseBonus > p.Armor.DefenseBonus {
				_ = p.EquipArmor(it.Name)
			}
		}
	}
}

func below(c *game.Combatant, percent int) bool {
	return c.HP*100 < c.MaxHP*percent
}

func healingItem(c *game.Combatant) string {
	if c.Inventory == nil {
		return ""
	}
	for _, it := range c.Inventory.Items() {
		if it.Kind == game.KindConsumable && (it.Effect == game.EffectHeal30 || it.Effect == game.EffectHeal40) {
			return it.Name
		}
	}
	return ""
}

func shielded(c *game.Combatant) bool {
	for _, s := range c.Statuses {
		if s.Kind == game.StatusShield && s.Points > 0 {
			return true
		}
	}
	return false
}
