package game

import (
	"errors"
	"fmt"
)

// ErrSnapshotInvalid is wrapped with the reason a snapshot was rejected.
var ErrSnapshotInvalid = errors.New("invalid snapshot")

// Snapshot is the plain persisted shape of a session. The core never reads
// or writes files; storage collaborators encode this value.
type Snapshot struct {
	Position     string            `json:"position"`
	QuestStage   int               `json:"quest_stage"`
	Gold         int               `json:"gold"`
	ForestVisits int               `json:"forest_visits"`
	Character    CharacterSnapshot `json:"character"`
}

type CharacterSnapshot struct {
	Name           string         `json:"name"`
	Class          string         `json:"class"`
	HP             int            `json:"hp"`
	MaxHP          int            `json:"max_hp"`
	Attack         int            `json:"attack"`
	Defense        int            `json:"defense"`
	Agility        int            `json:"agility"`
	Intelligence   int            `json:"intelligence"`
	Skills         []string       `json:"skills"`
	EquippedWeapon *ItemSnapshot  `json:"equipped_weapon,omitempty"`
	EquippedArmor  *ItemSnapshot  `json:"equipped_armor,omitempty"`
	Inventory      []ItemSnapshot `json:"inventory"`
}

// ItemSnapshot carries the kind tag plus the kind-specific fields.
type ItemSnapshot struct {
	Kind         ItemKind `json:"kind"`
	Name         string   `json:"name"`
	AttackBonus  int      `json:"attack_bonus,omitempty"`
	DefenseBonus int      `json:"defense_bonus,omitempty"`
	IntBonus     int      `json:"int_bonus,omitempty"`
	Effect       string   `json:"effect,omitempty"`
}

func snapshotItem(it *Item) ItemSnapshot {
	return ItemSnapshot{
		Kind:         it.Kind,
		Name:         it.Name,
		AttackBonus:  it.AttackBonus,
		DefenseBonus: it.DefenseBonus,
		IntBonus:     it.IntBonus,
		Effect:       string(it.Effect),
	}
}

func (s ItemSnapshot) item() (*Item, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("%w: item without name", ErrSnapshotInvalid)
	}
	switch s.Kind {
	case KindWeapon:
		return NewWeapon(s.Name, s.AttackBonus, s.IntBonus), nil
	case KindArmor:
		return NewArmor(s.Name, s.DefenseBonus, s.IntBonus), nil
	case KindConsumable:
		eff, err := ParseItemEffect(s.Effect)
		if err != nil {
			return nil, fmt.Errorf("%w: consumable %q: %v", ErrSnapshotInvalid, s.Name, err)
		}
		return NewConsumable(s.Name, eff), nil
	case KindPlain:
		return NewPlainItem(s.Name), nil
	}
	return nil, fmt.Errorf("%w: unknown item kind %q", ErrSnapshotInvalid, s.Kind)
}

// SnapshotCharacter captures a player combatant. Active statuses are not
// persisted; saves only happen outside combat.
func SnapshotCharacter(c *Combatant) CharacterSnapshot {
	cs := CharacterSnapshot{
		Name:         c.Name,
		Class:        c.Class,
		HP:           c.HP,
		MaxHP:        c.MaxHP,
		Attack:       c.Attack,
		Defense:      c.Defense,
		Agility:      c.Agility,
		Intelligence: c.Intelligence,
		Skills:       make([]string, 0, len(c.Skills)),
		Inventory:    []ItemSnapshot{},
	}
	for _, s := range c.Skills {
		cs.Skills = append(cs.Skills, string(s))
	}
	if c.Weapon != nil {
		w := snapshotItem(c.Weapon)
		cs.EquippedWeapon = &w
	}
	if c.Armor != nil {
		a := snapshotItem(c.Armor)
		cs.EquippedArmor = &a
	}
	if c.Inventory != nil {
		for _, it := range c.Inventory.Items() {
			cs.Inventory = append(cs.Inventory, snapshotItem(it))
		}
	}
	return cs
}

// RestoreCharacter rebuilds a player combatant. Equipped items point at the
// matching inventory slot when one exists.
func RestoreCharacter(cs CharacterSnapshot) (*Combatant, error) {
	if cs.Name == "" {
		return nil, fmt.Errorf("%w: character without name", ErrSnapshotInvalid)
	}
	if cs.MaxHP <= 0 {
		return nil, fmt.Errorf("%w: max_hp must be positive", ErrSnapshotInvalid)
	}
	if len(cs.Inventory) > InventoryCapacity {
		return nil, fmt.Errorf("%w: %d items exceed capacity %d", ErrSnapshotInvalid, len(cs.Inventory), InventoryCapacity)
	}
	c := &Combatant{
		Name:         cs.Name,
		Class:        cs.Class,
		Faction:      FactionPlayer,
		HP:           cs.HP,
		MaxHP:        cs.MaxHP,
		Attack:       cs.Attack,
		Defense:      cs.Defense,
		Agility:      cs.Agility,
		Intelligence: cs.Intelligence,
		Phase:        1,
		Inventory:    NewInventory(),
	}
	for _, raw := range cs.Skills {
		id, err := ParseSkill(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: skill %q", ErrSnapshotInvalid, raw)
		}
		c.Skills = append(c.Skills, id)
	}
	for _, is := range cs.Inventory {
		it, err := is.item()
		if err != nil {
			return nil, err
		}
		_ = c.Inventory.Add(it)
	}
	equip := func(is *ItemSnapshot, kind ItemKind) (*Item, error) {
		if is == nil {
			return nil, nil
		}
		if is.Kind != kind {
			return nil, fmt.Errorf("%w: %q equipped in the %s slot", ErrSnapshotInvalid, is.Name, kind)
		}
		if held := c.Inventory.Get(is.Name); held != nil && held.Kind == kind {
			return held, nil
		}
		return is.item()
	}
	var err error
	if c.Weapon, err = equip(cs.EquippedWeapon, KindWeapon); err != nil {
		return nil, err
	}
	if c.Armor, err = equip(cs.EquippedArmor, KindArmor); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the session-level fields; character fields are checked by RestoreCharacter.
func (s Snapshot) Validate() error {
	if s.Position == "" {
		return fmt.Errorf("%w: empty position", ErrSnapshotInvalid)
	}
	if s.QuestStage < 0 || s.QuestStage > 2 {
		return fmt.Errorf("%w: quest stage %d out of range", ErrSnapshotInvalid, s.QuestStage)
	}
	if s.Gold < 0 || s.ForestVisits < 0 {
		return fmt.Errorf("%w: negative counters", ErrSnapshotInvalid)
	}
	return nil
}
