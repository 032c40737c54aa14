package engine

import "github.com/FredLuc12/MiniRPG/internal/game"

// Result is the outcome of a round.
type Result string

const (
	ResultContinuing Result = "continuing"
	ResultDefeat     Result = "defeat"
	ResultVictory    Result = "victory"
	ResultEscaped    Result = "escaped"
)

// Terminal reports whether no further rounds can run.
func (r Result) Terminal() bool { return r != ResultContinuing }

// Stage is a state of the round state machine.
type Stage string

const (
	StageTurnStart            Stage = "turn_start"
	StageStatusStart          Stage = "status_start"
	StagePlayerDecision       Stage = "player_decision"
	StagePlayerActionResolved Stage = "player_action_resolved"
	StageEnemyDecision        Stage = "enemy_decision"
	StageStatusEnd            Stage = "status_end"
	StageVictoryCheck         Stage = "victory_check"
	StageDefeat               Stage = "defeat"
	StageVictory              Stage = "victory"
	StageEscaped              Stage = "escaped"
)

// CombatState is one encounter between the player and an enemy.
type CombatState struct {
	Player *game.Combatant
	Enemy  *game.Combatant
	Round  int
	Stage  Stage
	Result Result
}

func NewCombatState(player, enemy *game.Combatant) *CombatState {
	return &CombatState{Player: player, Enemy: enemy, Stage: StageTurnStart, Result: ResultContinuing}
}

// RoundOutcome is what a caller sees after one round.
type RoundOutcome struct {
	Result Result
	Round  int
	Events []Event
}

// ExecuteRound drives one round through the state machine:
// TurnStart, StatusStart, PlayerDecision, PlayerActionResolved,
// EnemyDecision, StatusEnd, VictoryCheck. A finished state is returned
// unchanged.
func ExecuteRound(state *CombatState, action PlayerAction, rng RNG) RoundOutcome {
	if state.Result.Terminal() {
		return RoundOutcome{Result: state.Result, Round: state.Round}
	}
	rc := newRoundContext(state, rng)

	rc.enter(StageTurnStart)
	state.Round++

	rc.enter(StageStatusStart)
	rc.add(ResolveStartOfTurn(state.Player)...)
	rc.add(ResolveStartOfTurn(state.Enemy)...)
	if state.Player.IsDefeated() || state.Enemy.IsDefeated() {
		return rc.finalizeRound(false)
	}

	rc.enter(StagePlayerDecision)
	escaped := rc.executePlayerAction(action)
	rc.enter(StagePlayerActionResolved)
	if escaped {
		return rc.finalizeRound(true)
	}

	rc.enter(StageEnemyDecision)
	rc.executeEnemyTurn()

	rc.enter(StageStatusEnd)
	rc.add(ResolveEndOfTurn(state.Player)...)
	rc.add(ResolveEndOfTurn(state.Enemy)...)

	return rc.finalizeRound(false)
}

// finalizeRound runs the victory check. Defeat wins over victory when both
// sides drop in the same round.
func (rc *roundContext) finalizeRound(escaped bool) RoundOutcome {
	state := rc.state
	rc.enter(StageVictoryCheck)
	switch {
	case state.Player.IsDefeated():
		rc.add(Event{Kind: EventDefeated, Target: state.Player.Name})
		state.Result = ResultDefeat
		rc.enter(StageDefeat)
	case state.Enemy.IsDefeated():
		rc.add(Event{Kind: EventDefeated, Target: state.Enemy.Name})
		state.Result = ResultVictory
		rc.enter(StageVictory)
	case escaped:
		state.Result = ResultEscaped
		rc.enter(StageEscaped)
	default:
		state.Result = ResultContinuing
		rc.enter(StageTurnStart)
	}
	return RoundOutcome{Result: state.Result, Round: state.Round, Events: rc.events}
}
