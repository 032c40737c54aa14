package service

import (
	"errors"
	"fmt"

	"github.com/FredLuc12/MiniRPG/internal/config"
	"github.com/FredLuc12/MiniRPG/internal/constants"
	"github.com/FredLuc12/MiniRPG/internal/game"
	"github.com/FredLuc12/MiniRPG/internal/logging"
	"github.com/FredLuc12/MiniRPG/internal/quest"

	"github.com/google/uuid"
)

const startingGold = 50

var (
	ErrUnknownClass    = errors.New("unknown character class")
	ErrUnknownZone     = errors.New("unknown zone")
	ErrZoneSealed      = errors.New("zone is sealed until the dungeon key is found")
	ErrNoEncounter     = errors.New("no active encounter")
	ErrEncounterActive = errors.New("an encounter is in progress")
	ErrGameOver        = errors.New("game is over")
)

// Game is one play session: the hero, where they stand, the quest and the
// purse. At most one encounter is active at a time.
type Game struct {
	ID           string
	World        *config.World
	Position     string
	Quest        *quest.Gate
	Gold         int
	ForestVisits int
	Player       *game.Combatant
	Encounter    *Encounter
}

// NewCharacter builds a level-one hero from a catalog class.
func NewCharacter(world *config.World, classKey, name string) (*game.Combatant, error) {
	class, ok := world.Class(classKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, classKey)
	}
	c := class.NewCombatant(game.FactionPlayer)
	if name != "" {
		c.Name = name
	}
	return c, nil
}

// NewGame starts a session in the village with the starting purse.
func NewGame(world *config.World, player *game.Combatant) *Game {
	g := &Game{
		ID:       uuid.NewString(),
		World:    world,
		Position: constants.ZoneVillage,
		Quest:    quest.New(quest.StageSeekKey),
		Gold:     startingGold,
		Player:   player,
	}
	logging.Info("game created", logging.Fields{
		constants.LogFieldSessionID: g.ID,
		constants.LogFieldName:      player.Name,
		constants.LogFieldClass:     player.Class,
	})
	return g
}

// Over reports whether the session has ended, by death or by finishing the quest.
func (g *Game) Over() bool {
	return g.Player.IsDefeated() || g.Quest.Completed()
}

// CurrentZone returns the catalog entry for the current position.
func (g *Game) CurrentZone() (game.Zone, error) {
	z, ok := g.World.Zone(g.Position)
	if !ok {
		return game.Zone{}, fmt.Errorf("%w: %q", ErrUnknownZone, g.Position)
	}
	return z, nil
}

// Move travels to another zone. Sealed zones can be walked to but not explored.
func (g *Game) Move(zoneKey string) error {
	if g.Encounter != nil {
		return ErrEncounterActive
	}
	z, ok := g.World.Zone(zoneKey)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownZone, zoneKey)
	}
	from := g.Position
	g.Position = z.Key
	if z.Key == constants.ZoneForest {
		g.ForestVisits++
	}
	logging.Info("moved", logging.Fields{constants.LogFieldSessionID: g.ID, "from": from, constants.LogFieldZone: z.Key})
	return nil
}

func (g *Game) logFields(extra logging.Fields) logging.Fields {
	f := logging.Fields{
		constants.LogFieldSessionID:  g.ID,
		constants.LogFieldZone:       g.Position,
		constants.LogFieldQuestStage: g.Quest.Stage(),
	}
	for k, v := range extra {
		f[k] = v
	}
	return f
}
