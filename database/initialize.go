package database

import (
	"serenemind.app/configs/configslog"
	"serenemind.app/database/migrations"
	"serenemind.app/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and seeders inside one transaction.
func Initialize(db *gorm.DB, migrate bool, seed bool) error {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed requested, nothing to do.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info("Running migrations...")
			if err := RunMigrationsInOrder(tx); err != nil {
				configslog.Log.Error("Migration failed", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Migrations complete.")
		}

		if seed {
			configslog.SLog.Info("Running seeders...")
			if err := RunSeeders(tx); err != nil {
				configslog.Log.Error("Seeding failed", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Seeders complete.")
		}
		return nil
	})
}

// RunMigrationsInOrder migrates every table. Patients and doctors come
// before appointments, and appointments before billing records, so the
// foreign keys resolve.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []func(*gorm.DB) error{
		migrations.MigrateSongsTable,
		migrations.MigrateJournalEntriesTable,
		migrations.MigrateMoodLogsTable,
		migrations.MigratePatientsTable,
		migrations.MigrateDoctorsTable,
		migrations.MigrateAppointmentsTable,
		migrations.MigrateBillingRecordsTable,
	}
	for _, step := range steps {
		if err := step(db); err != nil {
			return err
		}
	}
	return nil
}

// RunSeeders runs every idempotent seeder.
func RunSeeders(db *gorm.DB) error {
	return seeders.SeedSongs(db)
}
