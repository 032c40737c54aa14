package game

// Faction tells the scheduler which side a combatant fights for.
type Faction string

const (
	FactionPlayer Faction = "player"
	FactionEnemy  Faction = "enemy"
)

// Rank is the enemy tier used by catalogs and rewards.
type Rank string

const (
	RankStandard Rank = "standard"
	RankElite    Rank = "elite"
	RankBoss     Rank = "boss"
)

// Trait is a capability marker attached to a combatant. Traits replace
// per-archetype subtypes: behaviour checks HasTrait instead of the concrete kind.
type Trait string

const (
	// TraitSpecialSkill lets an enemy choose its burn attack instead of striking.
	TraitSpecialSkill Trait = "special_skill"
	TraitMultiAttack  Trait = "multi_attack"
	TraitFast         Trait = "fast"
	TraitThief        Trait = "thief"
	TraitResistant    Trait = "resistant"
	TraitHighHP       Trait = "high_hp"
	TraitMultiPhase   Trait = "multi_phase"
)

// Combatant is any entity taking part in a combat round. Player characters
// persist across the session; enemies are created per encounter.
type Combatant struct {
	Name         string
	Class        string
	Faction      Faction
	Rank         Rank
	HP           int
	MaxHP        int
	Attack       int
	Defense      int
	Agility      int
	Intelligence int
	Weapon       *Item
	Armor        *Item
	Skills       []SkillID
	Traits       []Trait
	// Phase is the boss phase (1 until the boss drops to half HP).
	Phase    int
	Statuses []Status
	// Inventory is nil for enemies.
	Inventory *Inventory
}

// EffectiveAttack is the base attack plus the equipped weapon bonus.
func (c *Combatant) EffectiveAttack() int {
	a := c.Attack
	if c.Weapon != nil {
		a += c.Weapon.AttackBonus
	}
	return a
}

// EffectiveDefense is the base defense plus the equipped armor bonus.
func (c *Combatant) EffectiveDefense() int {
	d := c.Defense
	if c.Armor != nil {
		d += c.Armor.DefenseBonus
	}
	return d
}

// EffectiveIntelligence adds the intelligence bonus of both equipment slots.
func (c *Combatant) EffectiveIntelligence() int {
	i := c.Intelligence
	if c.Weapon != nil {
		i += c.Weapon.IntBonus
	}
	if c.Armor != nil {
		i += c.Armor.IntBonus
	}
	return i
}

// DisplayHP returns HP clamped to zero. HP itself may go negative until the
// scheduler runs its victory check.
func (c *Combatant) DisplayHP() int {
	if c.HP < 0 {
		return 0
	}
	return c.HP
}

func (c *Combatant) IsDefeated() bool { return c.HP <= 0 }

func (c *Combatant) HasTrait(t Trait) bool {
	for _, have := range c.Traits {
		if have == t {
			return true
		}
	}
	return false
}

func (c *Combatant) HasSkill(id SkillID) bool {
	for _, have := range c.Skills {
		if have == id {
			return true
		}
	}
	return false
}

// Heal restores up to amount HP without exceeding MaxHP and returns the HP gained.
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.HP
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	if c.HP < before {
		c.HP = before
	}
	return c.HP - before
}

// EquipWeapon equips the named weapon from the inventory. The item stays in
// the inventory slot; equipping only references it.
func (c *Combatant) EquipWeapon(name string) error {
	it, err := c.equippable(name, KindWeapon)
	if err != nil {
		return err
	}
	c.Weapon = it
	return nil
}

// EquipArmor equips the named armor from the inventory.
func (c *Combatant) EquipArmor(name string) error {
	it, err := c.equippable(name, KindArmor)
	if err != nil {
		return err
	}
	c.Armor = it
	return nil
}

func (c *Combatant) equippable(name string, kind ItemKind) (*Item, error) {
	if c.Inventory == nil {
		return nil, ErrItemNotInInventory
	}
	it := c.Inventory.Get(name)
	if it == nil {
		return nil, ErrItemNotInInventory
	}
	if it.Kind != kind {
		return nil, ErrWrongItemKind
	}
	return it, nil
}
