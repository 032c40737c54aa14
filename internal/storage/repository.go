package storage

import (
	"errors"

	"github.com/FredLuc12/MiniRPG/internal/game"
)

var (
	ErrSaveNotFound  = errors.New("save not found")
	ErrSaveCorrupted = errors.New("save is corrupted")
)

// SaveSummary describes a stored slot without decoding its payload.
type SaveSummary struct {
	Slot      string
	SessionID string
}

type Repository interface {
	// SaveSnapshot writes the snapshot to slot, replacing what was there.
	SaveSnapshot(slot, sessionID string, snap game.Snapshot) error
	// LoadSnapshot returns ErrSaveNotFound for an empty slot and
	// ErrSaveCorrupted when the payload cannot be decoded or fails validation.
	LoadSnapshot(slot string) (*game.Snapshot, error)
	DeleteSnapshot(slot string) error
	ListSaves() ([]SaveSummary, error)
}
