package service

import (
	"github.com/FredLuc12/MiniRPG/internal/constants"
	"github.com/FredLuc12/MiniRPG/internal/engine"
	"github.com/FredLuc12/MiniRPG/internal/game"
	"github.com/FredLuc12/MiniRPG/internal/logging"

	"github.com/google/uuid"
)

const (
	minVictoryGold = 10
	maxVictoryGold = 30
)

// Encounter is a running combat against one enemy.
type Encounter struct {
	ID    string
	State *engine.CombatState
	Boss  bool
}

// Reward is what a won encounter paid out.
type Reward struct {
	Gold          int
	QuestAdvanced bool
	// Legendary is the boss reward, already equipped.
	Legendary *game.Item
}

// ActionResult is one resolved round plus, once the encounter is won, its reward.
type ActionResult struct {
	engine.RoundOutcome
	Reward *Reward
}

func (g *Game) startEncounter(arch game.Archetype, boss bool) {
	enemy := arch.NewCombatant(game.FactionEnemy)
	g.Encounter = &Encounter{
		ID:    uuid.NewString(),
		State: engine.NewCombatState(g.Player, enemy),
		Boss:  boss,
	}
	logging.Info("encounter started", g.logFields(logging.Fields{
		constants.LogFieldEncounterID: g.Encounter.ID,
		constants.LogFieldEnemy:       enemy.Name,
	}))
}

// SubmitAction plays one round of the active encounter. When the round ends
// the encounter, it is cleared and any victory reward is applied.
func (g *Game) SubmitAction(action engine.PlayerAction, rng engine.RNG) (ActionResult, error) {
	enc := g.Encounter
	if enc == nil {
		return ActionResult{}, ErrNoEncounter
	}
	out := engine.ExecuteRound(enc.State, action, rng)
	res := ActionResult{RoundOutcome: out}
	if !out.Result.Terminal() {
		return res, nil
	}

	g.Encounter = nil
	if out.Result == engine.ResultVictory {
		res.Reward = g.reward(enc, rng)
	}
	logging.Info("encounter finished", g.logFields(logging.Fields{
		constants.LogFieldEncounterID: enc.ID,
		constants.LogFieldEnemy:       enc.State.Enemy.Name,
		constants.LogFieldRound:       out.Round,
		constants.LogFieldResult:      string(out.Result),
		constants.LogFieldGold:        g.Gold,
	}))
	return res, nil
}

func (g *Game) reward(enc *Encounter, rng engine.RNG) *Reward {
	r := &Reward{Gold: minVictoryGold + rng.Intn(maxVictoryGold-minVictoryGold+1)}
	g.Gold += r.Gold
	r.QuestAdvanced = g.Quest.OnEnemyDefeated(rng, enc.Boss)
	if enc.Boss {
		r.Legendary = g.grantLegendary(rng)
	}
	return r
}

// grantLegendary picks one of the two legendary pieces with even odds and
// equips it. A full bag does not stop the hero from wearing it.
func (g *Game) grantLegendary(rng engine.RNG) *game.Item {
	rewards := g.World.LegendaryRewards
	if len(rewards) == 0 {
		return nil
	}
	pick := rewards[0]
	if len(rewards) > 1 && rng.Float64() >= 0.5 {
		pick = rewards[1]
	}
	it := *pick
	p := g.Player
	if err := p.Inventory.Add(&it); err != nil {
		logging.Warn("legendary reward not stored", err, g.logFields(logging.Fields{constants.LogFieldItem: it.Name}))
	}
	if it.Kind == game.KindWeapon {
		p.Weapon = &it
	} else {
		p.Armor = &it
	}
	return &it
}
