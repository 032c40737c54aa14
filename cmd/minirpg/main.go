package main

import (
	"github.com/FredLuc12/MiniRPG/internal/constants"
	"github.com/FredLuc12/MiniRPG/internal/engine"
	"github.com/FredLuc12/MiniRPG/internal/game"
	"github.com/FredLuc12/MiniRPG/internal/logging"
	"github.com/FredLuc12/MiniRPG/internal/random"
	"github.com/FredLuc12/MiniRPG/internal/service"
	"github.com/FredLuc12/MiniRPG/internal/version"
)

// minirpg plays the saved session unattended: it resumes the slot (or
// starts a new hero), runs the autopilot until the quest ends, the hero
// dies or the step budget runs out, and saves the result.
func main() {
	cfg := loadEnvOrExit()
	logging.Info("minirpg starting", logging.Fields{constants.LogFieldVersion: version.String()})

	world := loadWorldOrExit(cfg.WorldPath)
	repo := createRepositoryOrExit(cfg.DBPath)

	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		logging.Fatal("Failed to draw a seed", err, nil)
	}
	rng := engine.NewRNG(seed)

	g, err := service.LoadOrNew(repo, cfg.SaveSlot, world, func() (*game.Combatant, error) {
		return service.NewCharacter(world, cfg.Class, cfg.Hero)
	})
	if err != nil {
		logging.Fatal("Failed to load game", err, logging.Fields{constants.LogFieldSlot: cfg.SaveSlot})
	}
	logging.Info("session ready", logging.Fields{
		constants.LogFieldSessionID:  g.ID,
		constants.LogFieldSeed:       seed,
		constants.LogFieldZone:       g.Position,
		constants.LogFieldQuestStage: g.Quest.Stage(),
		"objective":                  g.Quest.Description(),
	})

	steps := 0
	for ; steps < cfg.MaxSteps && !g.Over(); steps++ {
		report, err := g.AutoStep(rng)
		if err != nil {
			logging.Error("step failed", err, logging.Fields{constants.LogFieldSessionID: g.ID})
			break
		}
		logStep(g, report)
	}
	// a fight cut short by the step budget is abandoned rather than saved
	g.Encounter = nil

	if g.Player.IsDefeated() {
		logging.Info("the hero has fallen", logging.Fields{constants.LogFieldSessionID: g.ID, "steps": steps})
		if err := repo.DeleteSnapshot(cfg.SaveSlot); err != nil {
			logging.Error("failed to clear save", err, logging.Fields{constants.LogFieldSlot: cfg.SaveSlot})
		}
		return
	}
	if err := g.SaveGame(repo, cfg.SaveSlot); err != nil {
		logging.Fatal("Failed to save game", err, logging.Fields{constants.LogFieldSlot: cfg.SaveSlot})
	}
	logging.Info("session ended", logging.Fields{
		constants.LogFieldSessionID:  g.ID,
		constants.LogFieldQuestStage: g.Quest.Stage(),
		constants.LogFieldGold:       g.Gold,
		"objective":                  g.Quest.Description(),
		"steps":                      steps,
	})
}

func logStep(g *service.Game, r service.StepReport) {
	switch {
	case r.Explore != nil:
		f := logging.Fields{constants.LogFieldZone: r.Explore.Zone, constants.LogFieldEvent: string(r.Explore.Event), "message": r.Explore.Message}
		if r.Explore.Enemy != "" {
			f[constants.LogFieldEnemy] = r.Explore.Enemy
		}
		logging.Info("event", f)
	case r.Action != nil:
		f := logging.Fields{
			constants.LogFieldRound:  r.Action.Round,
			constants.LogFieldResult: string(r.Action.Result),
			"hp":                     g.Player.DisplayHP(),
			"events":                 len(r.Action.Events),
		}
		if r.Action.Reward != nil {
			f[constants.LogFieldGold] = r.Action.Reward.Gold
			if r.Action.Reward.Legendary != nil {
				f[constants.LogFieldItem] = r.Action.Reward.Legendary.Name
			}
		}
		logging.Info("round", f)
	}
}
