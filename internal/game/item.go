package game

import "errors"

// InventoryCapacity is the fixed number of slots in a character's bag.
const InventoryCapacity = 10

var (
	ErrInventoryFull      = errors.New("inventory is full")
	ErrItemNotInInventory = errors.New("item not in inventory")
	ErrWrongItemKind      = errors.New("item cannot be equipped in this slot")
	ErrUnknownItemEffect  = errors.New("unknown item effect")
)

// ItemKind tags the item variant. The values double as the persisted kind names.
type ItemKind string

const (
	KindWeapon     ItemKind = "Weapon"
	KindArmor      ItemKind = "Armor"
	KindConsumable ItemKind = "Consumable"
	KindPlain      ItemKind = "Item"
)

// ItemEffect identifies the fixed effect of a consumable.
type ItemEffect string

const (
	EffectNone   ItemEffect = ""
	EffectHeal30 ItemEffect = "heal_30"
	EffectHeal40 ItemEffect = "heal_40"
	EffectBomb   ItemEffect = "bomb"
)

// ParseItemEffect validates an effect id coming from config or a save file.
func ParseItemEffect(s string) (ItemEffect, error) {
	switch e := ItemEffect(s); e {
	case EffectHeal30, EffectHeal40, EffectBomb:
		return e, nil
	}
	return EffectNone, ErrUnknownItemEffect
}

// Item is a tagged variant: only the fields of its Kind are meaningful.
// Items are identified by name.
type Item struct {
	Kind         ItemKind
	Name         string
	AttackBonus  int
	DefenseBonus int
	IntBonus     int
	Effect       ItemEffect
}

func NewWeapon(name string, attackBonus, intBonus int) *Item {
	return &Item{Kind: KindWeapon, Name: name, AttackBonus: attackBonus, IntBonus: intBonus}
}

func NewArmor(name string, defenseBonus, intBonus int) *Item {
	return &Item{Kind: KindArmor, Name: name, DefenseBonus: defenseBonus, IntBonus: intBonus}
}

func NewConsumable(name string, effect ItemEffect) *Item {
	return &Item{Kind: KindConsumable, Name: name, Effect: effect}
}

func NewPlainItem(name string) *Item {
	return &Item{Kind: KindPlain, Name: name}
}

// Inventory is an ordered bag with a fixed capacity.
type Inventory struct {
	capacity int
	items    []*Item
}

func NewInventory() *Inventory {
	return &Inventory{capacity: InventoryCapacity}
}

func (inv *Inventory) Capacity() int { return inv.capacity }
func (inv *Inventory) Len() int      { return len(inv.items) }

// Items returns a copy of the slot order.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Add appends the item; a full bag is left untouched.
func (inv *Inventory) Add(it *Item) error {
	if len(inv.items) >= inv.capacity {
		return ErrInventoryFull
	}
	inv.items = append(inv.items, it)
	return nil
}

// Remove drops the first item with the given name.
func (inv *Inventory) Remove(name string) (*Item, error) {
	for i, it := range inv.items {
		if it.Name == name {
			inv.items = append(inv.items[:i:i], inv.items[i+1:]...)
			return it, nil
		}
	}
	return nil, ErrItemNotInInventory
}

func (inv *Inventory) Has(name string) bool { return inv.Get(name) != nil }

// Get returns the first item with the given name, or nil.
func (inv *Inventory) Get(name string) *Item {
	for _, it := range inv.items {
		if it.Name == name {
			return it
		}
	}
	return nil
}
