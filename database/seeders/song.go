package seeders

import (
	"errors"

	"serenemind.app/configs/configslog"
	"serenemind.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSongs inserts the curated relaxation playlist. Existing titles are
// left untouched, so the seeder is safe to re-run.
func SeedSongs(db *gorm.DB) error {
	songsToSeed := []models.Song{
		{Title: "Weightless", Artist: "Marconi Union", URL: "https://www.youtube.com/watch?v=UfcAVejslrU"},
		{Title: "Clair de Lune", Artist: "Claude Debussy", URL: "https://www.youtube.com/watch?v=CvFH_6DNRCY"},
		{Title: "Gymnopédie No.1", Artist: "Erik Satie", URL: "https://www.youtube.com/watch?v=S-Xm7s9eGxU"},
		{Title: "Spiegel im Spiegel", Artist: "Arvo Pärt", URL: "https://www.youtube.com/watch?v=TJ6Mzvh3XCc"},
		{Title: "Watermark", Artist: "Enya", URL: "https://www.youtube.com/watch?v=NqEcDIBSY_M"},
		{Title: "Horizon Variations", Artist: "Max Richter", URL: "https://www.youtube.com/watch?v=zGFKsdPM4dE"},
	}

	var createdCount int64
	var errorOccurred bool

	configslog.SLog.Info("Seeding songs...")

	for _, songToSeed := range songsToSeed {
		var existing models.Song
		result := db.Where("title = ? AND artist = ?", songToSeed.Title, songToSeed.Artist).First(&existing)

		if result.Error == nil {
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Failed to check existing song",
				zap.String("title", songToSeed.Title), zap.Error(result.Error))
			errorOccurred = true
			continue
		}

		if err := db.Create(&songToSeed).Error; err != nil {
			configslog.Log.Error("Failed to seed song",
				zap.String("title", songToSeed.Title), zap.Error(err))
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("Seeded %d new songs.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("All songs already present, nothing to seed.")
	}

	if errorOccurred {
		return errors.New("at least one song failed to seed")
	}
	return nil
}
