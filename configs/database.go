package configs

import (
	"time"

	"serenemind.app/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB opens the global GORM connection. It must be called once at startup
// before any repository is constructed.
func InitDB(dsn string) error {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		configslog.Log.Error("Failed to open database connection", zap.Error(err))
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		configslog.Log.Error("Failed to access underlying sql.DB", zap.Error(err))
		return err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = gormDB
	configslog.SLog.Info("Database connection established")
	return nil
}

// GetDB returns the shared GORM handle.
func GetDB() *gorm.DB {
	return db
}

// SetDB swaps the shared handle. Used by tests to inject a prepared instance.
func SetDB(gormDB *gorm.DB) {
	db = gormDB
}

// CloseDB closes the underlying connection pool.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Failed to access underlying sql.DB on close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Failed to close database connection", zap.Error(err))
	}
}
