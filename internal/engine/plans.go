package engine

import "github.com/FredLuc12/MiniRPG/internal/game"

// --- Player action model -----------------------------------------------

// ActionKind is the player's choice for the round.
type ActionKind string

const (
	ActionAttack ActionKind = "attack"
	ActionSkill  ActionKind = "skill"
	ActionItem   ActionKind = "item"
	ActionDefend ActionKind = "defend"
	ActionFlee   ActionKind = "flee"
)

// PlayerAction is the decision supplied by the caller for one round. Skill is
// read for ActionSkill and Item (an inventory item name) for ActionItem.
type PlayerAction struct {
	Kind  ActionKind
	Skill game.SkillID
	Item  string
}

func Attack() PlayerAction                  { return PlayerAction{Kind: ActionAttack} }
func Defend() PlayerAction                  { return PlayerAction{Kind: ActionDefend} }
func Flee() PlayerAction                    { return PlayerAction{Kind: ActionFlee} }
func UseSkill(id game.SkillID) PlayerAction { return PlayerAction{Kind: ActionSkill, Skill: id} }
func UseItem(name string) PlayerAction      { return PlayerAction{Kind: ActionItem, Item: name} }
