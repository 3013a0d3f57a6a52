package migrations

import (
	"serenemind.app/configs/configslog"
	"serenemind.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigratePatientsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating patients table...")
	if err := db.AutoMigrate(&models.Patient{}); err != nil {
		configslog.Log.Error("Failed to migrate patients table", zap.Error(err))
		return err
	}
	return nil
}

func MigrateDoctorsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating doctors table...")
	if err := db.AutoMigrate(&models.Doctor{}); err != nil {
		configslog.Log.Error("Failed to migrate doctors table", zap.Error(err))
		return err
	}
	return nil
}

// MigrateAppointmentsTable requires patients and doctors to exist first.
func MigrateAppointmentsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating appointments table...")
	if err := db.AutoMigrate(&models.Appointment{}); err != nil {
		configslog.Log.Error("Failed to migrate appointments table", zap.Error(err))
		return err
	}
	return nil
}

// MigrateBillingRecordsTable requires appointments and patients to exist first.
func MigrateBillingRecordsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating billing_records table...")
	if err := db.AutoMigrate(&models.BillingRecord{}); err != nil {
		configslog.Log.Error("Failed to migrate billing_records table", zap.Error(err))
		return err
	}
	return nil
}
