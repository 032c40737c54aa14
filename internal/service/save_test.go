package service

import (
	"errors"
	"testing"

	"github.com/FredLuc12/MiniRPG/internal/game"
	"github.com/FredLuc12/MiniRPG/internal/storage"
)

type mockSaveRepo struct {
	saves   map[string]game.Snapshot
	loadErr error
	saveErr error
}

func newMockSaveRepo() *mockSaveRepo {
	return &mockSaveRepo{saves: map[string]game.Snapshot{}}
}

func (m *mockSaveRepo) SaveSnapshot(slot, sessionID string, snap game.Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves[slot] = snap
	return nil
}

func (m *mockSaveRepo) LoadSnapshot(slot string) (*game.Snapshot, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	snap, ok := m.saves[slot]
	if !ok {
		return nil, storage.ErrSaveNotFound
	}
	return &snap, nil
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	g := newTestGame(t)
	_ = g.Player.Inventory.Add(game.NewWeapon("Sharp Dagger", 8, 0))
	_ = g.Player.EquipWeapon("Sharp Dagger")
	_ = g.Move("forest")
	g.Quest.Advance()
	g.Gold = 99
	g.Player.HP = 42

	repo := newMockSaveRepo()
	if err := g.SaveGame(repo, "main"); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadOrNew(repo, "main", g.World, func() (*game.Combatant, error) {
		t.Fatalf("fallback should not run")
		return nil, nil
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Position != "forest" || loaded.Gold != 99 || loaded.ForestVisits != 1 || loaded.Quest.Stage() != 1 {
		t.Fatalf("session fields not restored: %+v", loaded)
	}
	if loaded.Player.HP != 42 || loaded.Player.EffectiveAttack() != 58 {
		t.Fatalf("hero not restored: HP=%d ATK=%d", loaded.Player.HP, loaded.Player.EffectiveAttack())
	}
	if loaded.Player.Weapon != loaded.Player.Inventory.Get("Sharp Dagger") {
		t.Fatalf("equipped weapon should be the inventory item")
	}
}

func TestSaveGame_RefusedDuringEncounter(t *testing.T) {
	g := newTestGame(t)
	g.startEncounter(game.Archetype{Name: "Rat", HP: 1}, false)
	if err := g.SaveGame(newMockSaveRepo(), "main"); !errors.Is(err, ErrEncounterActive) {
		t.Fatalf("expected ErrEncounterActive, got %v", err)
	}
}

func TestSaveGame_WrapsRepoError(t *testing.T) {
	g := newTestGame(t)
	boom := errors.New("disk full")
	repo := newMockSaveRepo()
	repo.saveErr = boom
	if err := g.SaveGame(repo, "main"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

func TestLoadOrNew_FallsBack(t *testing.T) {
	w := testWorld(t)
	fresh := func() (*game.Combatant, error) { return NewCharacter(w, "mage", "Fresh") }

	missing := newMockSaveRepo()
	corrupted := newMockSaveRepo()
	corrupted.loadErr = storage.ErrSaveCorrupted
	badPosition := newMockSaveRepo()
	badPosition.saves["main"] = game.Snapshot{Position: "atlantis", Character: game.CharacterSnapshot{Name: "Old", MaxHP: 10}}
	badCharacter := newMockSaveRepo()
	badCharacter.saves["main"] = game.Snapshot{Position: "village", Character: game.CharacterSnapshot{Name: "", MaxHP: 10}}

	for name, repo := range map[string]*mockSaveRepo{
		"missing": missing, "corrupted": corrupted, "bad position": badPosition, "bad character": badCharacter,
	} {
		g, err := LoadOrNew(repo, "main", w, fresh)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		if g.Player.Name != "Fresh" || g.Position != "village" || g.Gold != 50 {
			t.Fatalf("%s: expected a fresh game, got %+v", name, g)
		}
	}
}

func TestLoadOrNew_StorageFailure(t *testing.T) {
	repo := newMockSaveRepo()
	repo.loadErr = errors.New("database locked")
	_, err := LoadOrNew(repo, "main", testWorld(t), func() (*game.Combatant, error) {
		t.Fatalf("fallback should not run on storage failures")
		return nil, nil
	})
	if err == nil {
		t.Fatalf("expected the storage error")
	}
}
