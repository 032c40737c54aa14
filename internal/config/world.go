package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/FredLuc12/MiniRPG/internal/game"
	"github.com/FredLuc12/MiniRPG/internal/keys"

	"gopkg.in/yaml.v3"
)

type archetypeEntry struct {
	Name         string   `yaml:"name"`
	Rank         string   `yaml:"rank"`
	HP           int      `yaml:"hp"`
	MaxHP        int      `yaml:"max_hp"`
	Attack       int      `yaml:"attack"`
	Defense      int      `yaml:"defense"`
	Agility      int      `yaml:"agility"`
	Intelligence int      `yaml:"intelligence"`
	Skills       []string `yaml:"skills"`
	Traits       []string `yaml:"traits"`
}

type eventEntry struct {
	Tag    string  `yaml:"tag"`
	Weight float64 `yaml:"weight"`
}

type zoneEntry struct {
	Key         string       `yaml:"key"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Dialogue    string       `yaml:"dialogue"`
	Access      string       `yaml:"access"`
	Events      []eventEntry `yaml:"events"`
	Enemies     []string     `yaml:"enemies"`
}

type itemEntry struct {
	Kind         string `yaml:"kind"`
	Name         string `yaml:"name"`
	AttackBonus  int    `yaml:"attack_bonus"`
	DefenseBonus int    `yaml:"defense_bonus"`
	IntBonus     int    `yaml:"int_bonus"`
	Effect       string `yaml:"effect"`
	Gold         int    `yaml:"gold"`
}

type rawWorld struct {
	Classes          []archetypeEntry `yaml:"classes"`
	Enemies          []archetypeEntry `yaml:"enemies"`
	Boss             *archetypeEntry  `yaml:"boss"`
	Zones            []zoneEntry      `yaml:"zones"`
	ChestLoot        []itemEntry      `yaml:"chest_loot"`
	LegendaryRewards []itemEntry      `yaml:"legendary_rewards"`
}

// Loot is one chest outcome: either an item template or a gold amount.
type Loot struct {
	Item *game.Item
	Gold int
}

// World is the static catalog the game loop draws from. Lists keep file
// order; lookups go by canonical key.
type World struct {
	Classes          []game.Archetype
	Enemies          []game.Archetype
	Boss             game.Archetype
	Zones            []game.Zone
	ChestLoot        []Loot
	LegendaryRewards []*game.Item

	classByKey map[string]game.Archetype
	enemyByKey map[string]game.Archetype
	zoneByKey  map[string]game.Zone
}

func (w *World) Class(key string) (game.Archetype, bool) {
	a, ok := w.classByKey[keys.FromName(key)]
	return a, ok
}

func (w *World) Enemy(key string) (game.Archetype, bool) {
	a, ok := w.enemyByKey[keys.FromName(key)]
	return a, ok
}

func (w *World) Zone(key string) (game.Zone, bool) {
	z, ok := w.zoneByKey[keys.FromName(key)]
	return z, ok
}

// LoadWorld reads and validates the YAML world file at path.
func LoadWorld(path string) (*World, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file %s: %w", path, err)
	}
	w, err := ParseWorld(b)
	if err != nil {
		return nil, fmt.Errorf("world file %s: %w", path, err)
	}
	return w, nil
}

// ParseWorld decodes and validates a world document.
func ParseWorld(data []byte) (*World, error) {
	var rw rawWorld
	if err := yaml.Unmarshal(data, &rw); err != nil {
		return nil, fmt.Errorf("failed to parse world: %w", err)
	}
	if len(rw.Classes) == 0 {
		return nil, fmt.Errorf("classes is empty")
	}
	if len(rw.Zones) == 0 {
		return nil, fmt.Errorf("zones is empty")
	}
	if rw.Boss == nil {
		return nil, fmt.Errorf("boss is missing")
	}

	w := &World{
		classByKey: make(map[string]game.Archetype, len(rw.Classes)),
		enemyByKey: make(map[string]game.Archetype, len(rw.Enemies)),
		zoneByKey:  make(map[string]game.Zone, len(rw.Zones)),
	}
	for _, e := range rw.Classes {
		a, err := e.archetype(game.RankStandard)
		if err != nil {
			return nil, fmt.Errorf("class: %w", err)
		}
		if _, exists := w.classByKey[a.Key]; exists {
			return nil, fmt.Errorf("duplicate class '%s'", a.Name)
		}
		w.classByKey[a.Key] = a
		w.Classes = append(w.Classes, a)
	}
	for _, e := range rw.Enemies {
		a, err := e.archetype(game.RankStandard)
		if err != nil {
			return nil, fmt.Errorf("enemy: %w", err)
		}
		if _, exists := w.enemyByKey[a.Key]; exists {
			return nil, fmt.Errorf("duplicate enemy '%s'", a.Name)
		}
		w.enemyByKey[a.Key] = a
		w.Enemies = append(w.Enemies, a)
	}
	boss, err := rw.Boss.archetype(game.RankBoss)
	if err != nil {
		return nil, fmt.Errorf("boss: %w", err)
	}
	w.Boss = boss

	for _, ze := range rw.Zones {
		z, err := ze.zone()
		if err != nil {
			return nil, err
		}
		if _, exists := w.zoneByKey[z.Key]; exists {
			return nil, fmt.Errorf("duplicate zone '%s'", z.Key)
		}
		for _, ek := range z.Enemies {
			if _, ok := w.enemyByKey[ek]; !ok {
				return nil, fmt.Errorf("zone '%s' references unknown enemy '%s'", z.Key, ek)
			}
		}
		w.zoneByKey[z.Key] = z
		w.Zones = append(w.Zones, z)
	}

	for _, ie := range rw.ChestLoot {
		if strings.EqualFold(ie.Kind, "gold") {
			if ie.Gold <= 0 {
				return nil, fmt.Errorf("chest_loot gold entry needs a positive amount")
			}
			w.ChestLoot = append(w.ChestLoot, Loot{Gold: ie.Gold})
			continue
		}
		it, err := ie.item()
		if err != nil {
			return nil, fmt.Errorf("chest_loot: %w", err)
		}
		w.ChestLoot = append(w.ChestLoot, Loot{Item: it})
	}
	for _, ie := range rw.LegendaryRewards {
		it, err := ie.item()
		if err != nil {
			return nil, fmt.Errorf("legendary_rewards: %w", err)
		}
		if it.Kind != game.KindWeapon && it.Kind != game.KindArmor {
			return nil, fmt.Errorf("legendary_rewards: '%s' must be a weapon or armor", it.Name)
		}
		w.LegendaryRewards = append(w.LegendaryRewards, it)
	}
	return w, nil
}

func (e archetypeEntry) archetype(defaultRank game.Rank) (game.Archetype, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return game.Archetype{}, fmt.Errorf("entry missing 'name'")
	}
	if e.HP <= 0 {
		return game.Archetype{}, fmt.Errorf("'%s' needs positive hp", name)
	}
	rank := defaultRank
	if e.Rank != "" {
		rank = game.Rank(strings.ToLower(e.Rank))
		switch rank {
		case game.RankStandard, game.RankElite, game.RankBoss:
		default:
			return game.Archetype{}, fmt.Errorf("'%s' has unknown rank '%s'", name, e.Rank)
		}
	}
	a := game.Archetype{
		Key:          keys.FromName(name),
		Name:         name,
		Rank:         rank,
		HP:           e.HP,
		MaxHP:        e.MaxHP,
		Attack:       e.Attack,
		Defense:      e.Defense,
		Agility:      e.Agility,
		Intelligence: e.Intelligence,
	}
	for _, s := range e.Skills {
		id, err := game.ParseSkill(s)
		if err != nil {
			return game.Archetype{}, fmt.Errorf("'%s' skill '%s': %w", name, s, err)
		}
		a.Skills = append(a.Skills, id)
	}
	for _, t := range e.Traits {
		a.Traits = append(a.Traits, game.Trait(keys.FromName(t)))
	}
	return a, nil
}

func (ze zoneEntry) zone() (game.Zone, error) {
	key := keys.FromName(ze.Key)
	if key == "" {
		key = keys.FromName(ze.Name)
	}
	if key == "" {
		return game.Zone{}, fmt.Errorf("zone entry missing 'key'")
	}
	z := game.Zone{
		Key:         key,
		Name:        ze.Name,
		Description: ze.Description,
		Dialogue:    ze.Dialogue,
	}
	switch game.Access(strings.ToLower(ze.Access)) {
	case game.AccessNone:
	case game.AccessQuest:
		z.Access = game.AccessQuest
	default:
		return game.Zone{}, fmt.Errorf("zone '%s' has unknown access '%s'", key, ze.Access)
	}
	for _, ev := range ze.Events {
		if ev.Weight < 0 {
			return game.Zone{}, fmt.Errorf("zone '%s' event '%s' has negative weight", key, ev.Tag)
		}
		z.Events = append(z.Events, game.WeightedEvent{Tag: game.EventTag(strings.ToLower(ev.Tag)), Weight: ev.Weight})
	}
	for _, en := range ze.Enemies {
		z.Enemies = append(z.Enemies, keys.FromName(en))
	}
	return z, nil
}

func (ie itemEntry) item() (*game.Item, error) {
	name := strings.TrimSpace(ie.Name)
	if name == "" {
		return nil, fmt.Errorf("item entry missing 'name'")
	}
	switch strings.ToLower(ie.Kind) {
	case "weapon":
		return game.NewWeapon(name, ie.AttackBonus, ie.IntBonus), nil
	case "armor":
		return game.NewArmor(name, ie.DefenseBonus, ie.IntBonus), nil
	case "consumable":
		effect, err := game.ParseItemEffect(ie.Effect)
		if err != nil {
			return nil, fmt.Errorf("'%s': %w", name, err)
		}
		return game.NewConsumable(name, effect), nil
	case "item":
		return game.NewPlainItem(name), nil
	}
	return nil, fmt.Errorf("'%s' has unknown kind '%s'", name, ie.Kind)
}
