package engine

import "github.com/FredLuc12/MiniRPG/internal/game"

// EventKind classifies what happened during a round.
type EventKind string

const (
	EventStatusApplied  EventKind = "status_applied"
	EventStatusDamage   EventKind = "status_damage"
	EventStatusExpired  EventKind = "status_expired"
	EventTurnSkipped    EventKind = "turn_skipped"
	EventShieldAbsorbed EventKind = "shield_absorbed"
	EventCriticalHit    EventKind = "critical_hit"
	EventAttack         EventKind = "attack"
	EventSkill          EventKind = "skill"
	EventItemUsed       EventKind = "item_used"
	EventDefend         EventKind = "defend"
	EventFled           EventKind = "fled"
	EventFleeFailed     EventKind = "flee_failed"
	// EventActionBlocked marks an action replaced by a no-op because the actor is stunned.
	EventActionBlocked EventKind = "action_blocked"
	// EventActionRejected carries the recoverable error of an invalid action.
	EventActionRejected EventKind = "action_rejected"
	EventPhaseChanged   EventKind = "phase_changed"
	EventDefeated       EventKind = "defeated"
)

// Event is one observable step of a round, in the order it happened.
type Event struct {
	Kind   EventKind
	Actor  string
	Target string
	// Amount is damage dealt, HP healed, points absorbed or defense gained.
	Amount   int
	Status   game.StatusKind
	Duration int
	Skill    game.SkillID
	Item     string
	Err      error
}
