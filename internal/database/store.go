package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/TechSynnovate-com/Rentnova-sub002/internal/models"
)

// OpenGorm opens the write-path handle used by the batch ingest processor.
// Reads go through the raw sql Database; both point at the same file.
func OpenGorm(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm handle: %w", err)
	}
	return db, nil
}

// UpsertListings inserts or replaces a batch of listings inside the caller's
// transaction.
func UpsertListings(tx *gorm.DB, batch []*models.Property) error {
	if len(batch) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(batch).Error
}
