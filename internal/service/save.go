package service

import (
	"errors"
	"fmt"

	"github.com/FredLuc12/MiniRPG/internal/config"
	"github.com/FredLuc12/MiniRPG/internal/constants"
	"github.com/FredLuc12/MiniRPG/internal/game"
	"github.com/FredLuc12/MiniRPG/internal/logging"
	"github.com/FredLuc12/MiniRPG/internal/quest"
	"github.com/FredLuc12/MiniRPG/internal/storage"

	"github.com/google/uuid"
)

// SaveRepo is the minimal repository interface required to save and load
// sessions. Using a small interface simplifies testing.
type SaveRepo interface {
	SaveSnapshot(slot, sessionID string, snap game.Snapshot) error
	LoadSnapshot(slot string) (*game.Snapshot, error)
}

// Snapshot captures the session outside of combat.
func (g *Game) Snapshot() game.Snapshot {
	return game.Snapshot{
		Position:     g.Position,
		QuestStage:   g.Quest.Stage(),
		Gold:         g.Gold,
		ForestVisits: g.ForestVisits,
		Character:    game.SnapshotCharacter(g.Player),
	}
}

// Restore rebuilds a session from a snapshot. Any inconsistency is reported
// as game.ErrSnapshotInvalid.
func Restore(world *config.World, snap game.Snapshot) (*Game, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	if _, ok := world.Zone(snap.Position); !ok {
		return nil, fmt.Errorf("%w: unknown position %q", game.ErrSnapshotInvalid, snap.Position)
	}
	player, err := game.RestoreCharacter(snap.Character)
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:           uuid.NewString(),
		World:        world,
		Position:     snap.Position,
		Quest:        quest.New(snap.QuestStage),
		Gold:         snap.Gold,
		ForestVisits: snap.ForestVisits,
		Player:       player,
	}, nil
}

// SaveGame writes the session to slot. Saving in the middle of a fight is refused.
func (g *Game) SaveGame(repo SaveRepo, slot string) error {
	if g.Encounter != nil {
		return ErrEncounterActive
	}
	if err := repo.SaveSnapshot(slot, g.ID, g.Snapshot()); err != nil {
		logging.Error("save failed", err, g.logFields(logging.Fields{constants.LogFieldSlot: slot}))
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	logging.Info("game saved", g.logFields(logging.Fields{constants.LogFieldSlot: slot}))
	return nil
}

// LoadOrNew resumes the session saved in slot. A missing or corrupted save
// falls back to a fresh game around the hero built by fresh; only storage
// failures are returned.
func LoadOrNew(repo SaveRepo, slot string, world *config.World, fresh func() (*game.Combatant, error)) (*Game, error) {
	snap, err := repo.LoadSnapshot(slot)
	if err == nil {
		g, rerr := Restore(world, *snap)
		if rerr == nil {
			logging.Info("game loaded", g.logFields(logging.Fields{constants.LogFieldSlot: slot}))
			return g, nil
		}
		err = fmt.Errorf("%w: %v", storage.ErrSaveCorrupted, rerr)
	}

	switch {
	case errors.Is(err, storage.ErrSaveNotFound):
		logging.Info("no save found, starting a new game", logging.Fields{constants.LogFieldSlot: slot})
	case errors.Is(err, storage.ErrSaveCorrupted):
		logging.Warn("save is corrupted, starting a new game", err, logging.Fields{constants.LogFieldSlot: slot})
	default:
		return nil, fmt.Errorf("load slot %s: %w", slot, err)
	}
	player, err := fresh()
	if err != nil {
		return nil, err
	}
	return NewGame(world, player), nil
}
