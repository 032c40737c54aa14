package engine

import (
	"errors"
	"testing"

	"github.com/FredLuc12/MiniRPG/internal/engine/enginetest"
	"github.com/FredLuc12/MiniRPG/internal/game"
)

func newHero() *game.Combatant {
	return &game.Combatant{
		Name: "Hero", Faction: game.FactionPlayer,
		HP: 100, MaxHP: 100, Attack: 30, Defense: 10, Agility: 50, Intelligence: 40,
		Skills:    []game.SkillID{game.SkillPowerStrike, game.SkillSneakAttack},
		Inventory: game.NewInventory(),
	}
}

func newWolf() *game.Combatant {
	return &game.Combatant{
		Name: "Wolf", Faction: game.FactionEnemy, Rank: game.RankStandard,
		HP: 50, MaxHP: 50, Attack: 25, Defense: 5, Agility: 30, Phase: 1,
	}
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestExecuteRound_AttackExchange(t *testing.T) {
	state := NewCombatState(newHero(), newWolf())
	out := ExecuteRound(state, Attack(), &enginetest.Scripted{})
	if out.Result != ResultContinuing || out.Round != 1 {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if state.Enemy.HP != 25 || state.Player.HP != 85 {
		t.Fatalf("HP after exchange: hero=%d wolf=%d", state.Player.HP, state.Enemy.HP)
	}
	if state.Stage != StageTurnStart {
		t.Fatalf("stage = %s, want %s", state.Stage, StageTurnStart)
	}
}

func TestExecuteRound_StunnedPlayerDealsNothing(t *testing.T) {
	state := NewCombatState(newHero(), newWolf())
	ApplyStatus(state.Player, game.NewStun(2))
	out := ExecuteRound(state, Attack(), &enginetest.Scripted{})
	if state.Enemy.HP != 50 {
		t.Fatalf("stunned player hit the wolf: HP=%d", state.Enemy.HP)
	}
	if !hasEvent(out.Events, EventActionBlocked) {
		t.Fatalf("expected a blocked action event")
	}
}

func TestExecuteRound_StunnedEnemyDealsNothing(t *testing.T) {
	state := NewCombatState(newHero(), newWolf())
	// no crit, then stun proc
	rng := &enginetest.Scripted{Floats: []float64{0.5, 0.1}}
	out := ExecuteRound(state, UseSkill(game.SkillSneakAttack), rng)
	if state.Player.HP != 100 {
		t.Fatalf("stunned wolf dealt damage: hero HP=%d", state.Player.HP)
	}
	if state.Enemy.HP != 50-30 {
		t.Fatalf("sneak attack: wolf HP=%d", state.Enemy.HP)
	}
	if !hasEvent(out.Events, EventActionBlocked) {
		t.Fatalf("expected the wolf's turn to be blocked")
	}
}

func TestExecuteRound_FleeSkipsEnemyAndEndPass(t *testing.T) {
	hero := newHero()
	hero.Agility = 100
	ApplyStatus(hero, game.NewBurn(12, 2))
	state := NewCombatState(hero, newWolf())
	out := ExecuteRound(state, Flee(), &enginetest.Scripted{Floats: []float64{0.5}})
	if out.Result != ResultEscaped || state.Stage != StageEscaped {
		t.Fatalf("expected escape, got %+v stage %s", out, state.Stage)
	}
	if hero.HP != 100 {
		t.Fatalf("nothing should hit the hero after fleeing, HP=%d", hero.HP)
	}
	if hero.Statuses[0].Duration != 2 {
		t.Fatalf("burn ticked after escape")
	}
}

func TestExecuteRound_FailedFleeLetsEnemyAct(t *testing.T) {
	state := NewCombatState(newHero(), newWolf())
	out := ExecuteRound(state, Flee(), &enginetest.Scripted{})
	if out.Result != ResultContinuing || !hasEvent(out.Events, EventFleeFailed) {
		t.Fatalf("expected failed flee, got %+v", out)
	}
	if state.Player.HP != 85 {
		t.Fatalf("wolf should still attack, hero HP=%d", state.Player.HP)
	}
}

func TestExecuteRound_VictorySkipsEnemyTurn(t *testing.T) {
	wolf := newWolf()
	wolf.HP = 10
	state := NewCombatState(newHero(), wolf)
	out := ExecuteRound(state, Attack(), &enginetest.Scripted{})
	if out.Result != ResultVictory || state.Stage != StageVictory {
		t.Fatalf("expected victory, got %+v", out)
	}
	if state.Player.HP != 100 {
		t.Fatalf("defeated wolf acted")
	}
}

func TestExecuteRound_StatusDeathSkipsActions(t *testing.T) {
	hero := newHero()
	hero.HP = 10
	ApplyStatus(hero, game.NewPoison(20, 3))
	state := NewCombatState(hero, newWolf())
	out := ExecuteRound(state, Attack(), &enginetest.Scripted{})
	if out.Result != ResultDefeat {
		t.Fatalf("expected defeat, got %s", out.Result)
	}
	if state.Enemy.HP != 50 {
		t.Fatalf("dead hero still attacked")
	}
}

func TestExecuteRound_DefeatBeatsVictory(t *testing.T) {
	hero := newHero()
	hero.HP = 5
	wolf := newWolf()
	wolf.HP = 5
	ApplyStatus(hero, game.NewPoison(10, 1))
	ApplyStatus(wolf, game.NewPoison(10, 1))
	out := ExecuteRound(NewCombatState(hero, wolf), Attack(), &enginetest.Scripted{})
	if out.Result != ResultDefeat {
		t.Fatalf("simultaneous knockout should be a defeat, got %s", out.Result)
	}
}

func TestExecuteRound_TerminalIsSticky(t *testing.T) {
	wolf := newWolf()
	wolf.HP = 1
	state := NewCombatState(newHero(), wolf)
	ExecuteRound(state, Attack(), &enginetest.Scripted{})
	out := ExecuteRound(state, Attack(), &enginetest.Scripted{})
	if out.Result != ResultVictory || out.Round != 1 || len(out.Events) != 0 {
		t.Fatalf("finished combat advanced: %+v", out)
	}
}

func TestExecuteRound_EnemyBurnsThenEndPassTicks(t *testing.T) {
	champion := newWolf()
	champion.Name = "Corrupted Champion"
	champion.Traits = []game.Trait{game.TraitSpecialSkill}
	state := NewCombatState(newHero(), champion)
	ExecuteRound(state, Defend(), &enginetest.Scripted{Floats: []float64{0.1}})
	if state.Player.HP != 88 {
		t.Fatalf("burn should fire once in the end pass, HP=%d", state.Player.HP)
	}
	if len(state.Player.Statuses) != 1 || state.Player.Statuses[0].Duration != 1 {
		t.Fatalf("burn state: %+v", state.Player.Statuses)
	}
}

// Defend raises base defense permanently, so the bonus stacks each time it
// is chosen.
func TestExecuteRound_DefendStacks(t *testing.T) {
	state := NewCombatState(newHero(), newWolf())
	for i := 0; i < 3; i++ {
		ExecuteRound(state, Defend(), &enginetest.Scripted{})
	}
	if state.Player.Defense != 25 {
		t.Fatalf("defense = %d, want 25 after three defends", state.Player.Defense)
	}
}

func TestExecuteRound_InvalidActionsAreRejected(t *testing.T) {
	cases := []struct {
		name   string
		action PlayerAction
		want   error
	}{
		{"unlearned skill", UseSkill(game.SkillFireball), ErrSkillNotLearned},
		{"unknown skill", UseSkill(game.SkillID("charge")), game.ErrUnknownSkill},
		{"missing item", UseItem("Elixir"), game.ErrItemNotInInventory},
		{"weapon as item", UseItem("Steel Sword"), game.ErrWrongItemKind},
		{"unknown effect", UseItem("Mystery Vial"), game.ErrUnknownItemEffect},
		{"unknown action", PlayerAction{Kind: "dance"}, ErrUnknownAction},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hero := newHero()
			_ = hero.Inventory.Add(game.NewWeapon("Steel Sword", 15, 0))
			_ = hero.Inventory.Add(game.NewConsumable("Mystery Vial", game.ItemEffect("teleport")))
			state := NewCombatState(hero, newWolf())
			out := ExecuteRound(state, tc.action, &enginetest.Scripted{})

			var rejected *Event
			for i := range out.Events {
				if out.Events[i].Kind == EventActionRejected {
					rejected = &out.Events[i]
				}
			}
			if rejected == nil || !errors.Is(rejected.Err, tc.want) {
				t.Fatalf("expected rejection with %v, got %+v", tc.want, out.Events)
			}
			if state.Enemy.HP != 50 {
				t.Fatalf("rejected action damaged the wolf")
			}
			if hero.Inventory.Len() != 2 {
				t.Fatalf("rejected action consumed an item")
			}
			if out.Result != ResultContinuing {
				t.Fatalf("result = %s", out.Result)
			}
		})
	}
}

func TestExecuteRound_PotionConsumed(t *testing.T) {
	hero := newHero()
	hero.HP = 40
	_ = hero.Inventory.Add(game.NewConsumable("Health Potion", game.EffectHeal30))
	state := NewCombatState(hero, newWolf())
	ExecuteRound(state, UseItem("Health Potion"), &enginetest.Scripted{})
	if hero.Inventory.Has("Health Potion") {
		t.Fatalf("potion should be consumed")
	}
	if hero.HP != 40+30-15 {
		t.Fatalf("hero HP = %d", hero.HP)
	}
}

func TestExecuteRound_BossEntersSecondPhase(t *testing.T) {
	boss := &game.Combatant{
		Name: "Dungeon Guardian", Faction: game.FactionEnemy, Rank: game.RankBoss,
		HP: 100, MaxHP: 100, Attack: 25, Defense: 0, Phase: 1,
	}
	hero := newHero()
	hero.Attack = 60
	state := NewCombatState(hero, boss)
	out := ExecuteRound(state, Attack(), &enginetest.Scripted{})
	if boss.Phase != 2 || !hasEvent(out.Events, EventPhaseChanged) {
		t.Fatalf("boss at HP %d should be in phase 2, got %d", boss.HP, boss.Phase)
	}
}
