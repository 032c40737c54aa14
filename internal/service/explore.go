package service

import (
	"errors"

	"github.com/FredLuc12/MiniRPG/internal/constants"
	"github.com/FredLuc12/MiniRPG/internal/engine"
	"github.com/FredLuc12/MiniRPG/internal/explore"
	"github.com/FredLuc12/MiniRPG/internal/game"
	"github.com/FredLuc12/MiniRPG/internal/logging"
)

const restHeal = 50

// ExploreResult reports what one exploration step produced. Only the fields
// relevant to Event are set.
type ExploreResult struct {
	Zone    string
	Event   game.EventTag
	Message string
	// Enemy is set when the event opened an encounter.
	Enemy         string
	Gold          int
	Healed        int
	Item          *game.Item
	ItemDropped   bool
	QuestAdvanced bool
}

// Explore samples one event in the current zone and applies it. Combat and
// boss events open an encounter that must be finished with SubmitAction.
func (g *Game) Explore(rng engine.RNG) (ExploreResult, error) {
	if g.Over() {
		return ExploreResult{}, ErrGameOver
	}
	if g.Encounter != nil {
		return ExploreResult{}, ErrEncounterActive
	}
	zone, err := g.CurrentZone()
	if err != nil {
		return ExploreResult{}, err
	}
	if !g.Quest.CanEnter(zone) {
		return ExploreResult{}, ErrZoneSealed
	}

	res := ExploreResult{Zone: zone.Key, Event: explore.SampleEvent(zone, rng)}
	switch res.Event {
	case game.EventCombat:
		err = g.startCombat(zone, rng, &res)
	case game.EventBoss:
		g.startEncounter(g.World.Boss, true)
		res.Enemy = g.World.Boss.Name
		res.Message = g.World.Boss.Name + " rises before you!"
	case game.EventChest:
		g.openChest(zone, rng, &res)
	case game.EventDialogue:
		res.Message = zone.Dialogue
	case game.EventKey:
		res.QuestAdvanced = g.Quest.OnKeyEvent()
		res.Message = "A strange glint catches your eye: the Dungeon Key!"
	case game.EventRest:
		res.Healed = g.Player.Heal(min(restHeal, g.Player.MaxHP-g.Player.HP))
		res.Message = "You rest for a while."
	case game.EventMerchant:
		res.Message = "A travelling merchant greets you."
	default:
		res.Event = game.EventNothing
		res.Message = "Nothing happens."
	}
	if err != nil {
		return ExploreResult{}, err
	}
	if res.QuestAdvanced {
		logging.Info("quest advanced", g.logFields(nil))
	}
	logging.Info("explored", g.logFields(logging.Fields{constants.LogFieldEvent: string(res.Event)}))
	return res, nil
}

func (g *Game) startCombat(zone game.Zone, rng engine.RNG, res *ExploreResult) error {
	if len(zone.Enemies) == 0 {
		res.Event = game.EventNothing
		res.Message = "The area is quiet."
		return nil
	}
	arch, ok := g.World.Enemy(zone.Enemies[rng.Intn(len(zone.Enemies))])
	if !ok {
		return errors.New("zone references an enemy missing from the catalog")
	}
	g.startEncounter(arch, false)
	res.Enemy = arch.Name
	res.Message = arch.Name + " appears!"
	return nil
}

// openChest gives the forest key while it is still missing, otherwise a
// random piece of loot. Loot that does not fit in the bag is left behind.
func (g *Game) openChest(zone game.Zone, rng engine.RNG, res *ExploreResult) {
	if g.Quest.OnChest(rng, zone.Key) {
		res.QuestAdvanced = true
		res.Message = "A mysterious chest holds the Dungeon Key!"
		return
	}
	loot := g.World.ChestLoot
	if len(loot) == 0 {
		res.Message = "The chest is empty."
		return
	}
	pick := loot[rng.Intn(len(loot))]
	if pick.Item == nil {
		g.Gold += pick.Gold
		res.Gold = pick.Gold
		res.Message = "You find some gold."
		return
	}
	it := *pick.Item
	res.Item = &it
	if err := g.Player.Inventory.Add(&it); err != nil {
		res.ItemDropped = true
		res.Message = "Your bag is full; you leave " + it.Name + " behind."
		logging.Warn("chest loot dropped", err, g.logFields(logging.Fields{constants.LogFieldItem: it.Name}))
		return
	}
	res.Message = "You find " + it.Name + "."
}
