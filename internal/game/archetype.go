package game

// Archetype is a static stat preset for a character class or an enemy kind.
type Archetype struct {
	Key          string
	Name         string
	Rank         Rank
	HP           int
	MaxHP        int
	Attack       int
	Defense      int
	Agility      int
	Intelligence int
	Skills       []SkillID
	Traits       []Trait
}

// NewCombatant builds a fresh combatant from the preset. Player combatants
// get an empty inventory; enemies do not carry one.
func (a Archetype) NewCombatant(faction Faction) *Combatant {
	maxHP := a.MaxHP
	if maxHP < a.HP {
		maxHP = a.HP
	}
	c := &Combatant{
		Name:         a.Name,
		Class:        a.Key,
		Faction:      faction,
		Rank:         a.Rank,
		HP:           a.HP,
		MaxHP:        maxHP,
		Attack:       a.Attack,
		Defense:      a.Defense,
		Agility:      a.Agility,
		Intelligence: a.Intelligence,
		Skills:       append([]SkillID(nil), a.Skills...),
		Traits:       append([]Trait(nil), a.Traits...),
		Phase:        1,
	}
	if faction == FactionPlayer {
		c.Inventory = NewInventory()
	}
	return c
}
