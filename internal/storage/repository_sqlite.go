package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/FredLuc12/MiniRPG/internal/game"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveSnapshot(slot, sessionID string, snap game.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	rec := SaveRecord{Slot: slot, SessionID: sessionID, Payload: string(payload)}
	// Upsert keyed by slot so a save always overwrites the previous one.
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"session_id", "payload", "updated_at"}),
	}).Create(&rec).Error
}

func (r *sqliteRepository) LoadSnapshot(slot string) (*game.Snapshot, error) {
	var rec SaveRecord
	if err := r.db.Where("slot = ?", slot).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaveNotFound
		}
		return nil, err
	}
	var snap game.Snapshot
	if err := json.Unmarshal([]byte(rec.Payload), &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveCorrupted, err)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveCorrupted, err)
	}
	return &snap, nil
}

func (r *sqliteRepository) DeleteSnapshot(slot string) error {
	return r.db.Unscoped().Where("slot = ?", slot).Delete(&SaveRecord{}).Error
}

func (r *sqliteRepository) ListSaves() ([]SaveSummary, error) {
	var recs []SaveRecord
	if err := r.db.Select("slot", "session_id").Order("slot").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]SaveSummary, 0, len(recs))
	for _, rec := range recs {
		out = append(out, SaveSummary{Slot: rec.Slot, SessionID: rec.SessionID})
	}
	return out, nil
}
