package migrations

import (
	"serenemind.app/configs/configslog"
	"serenemind.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSongsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating songs table...")
	if err := db.AutoMigrate(&models.Song{}); err != nil {
		configslog.Log.Error("Failed to migrate songs table", zap.Error(err))
		return err
	}
	return nil
}

func MigrateJournalEntriesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating journal_entries table...")
	if err := db.AutoMigrate(&models.JournalEntry{}); err != nil {
		configslog.Log.Error("Failed to migrate journal_entries table", zap.Error(err))
		return err
	}
	return nil
}

func MigrateMoodLogsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating mood_logs table...")
	if err := db.AutoMigrate(&models.MoodLog{}); err != nil {
		configslog.Log.Error("Failed to migrate mood_logs table", zap.Error(err))
		return err
	}
	return nil
}
