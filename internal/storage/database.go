package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SaveRecord is one save slot. Payload holds the JSON encoded snapshot.
type SaveRecord struct {
	gorm.Model
	Slot      string `gorm:"uniqueIndex;not null"`
	SessionID string
	Payload   string `gorm:"type:text"`
}

// OpenAndMigrate opens the sqlite database at dataSourceName and keeps the
// save schema up to date.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&SaveRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
