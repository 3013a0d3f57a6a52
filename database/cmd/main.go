package main

import (
	"flag"

	"serenemind.app/configs"
	"serenemind.app/configs/configslog"
	"serenemind.app/database"

	"go.uber.org/zap"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "run database migrations")
	seedFlag := flag.Bool("seed", false, "run database seeders")
	flag.Parse()

	cfg := configs.Load()
	configslog.InitLogger(cfg.LogFile, cfg.LogLevel)
	defer configslog.SyncLogger()

	if err := configs.InitDB(cfg.DatabaseURL); err != nil {
		configslog.Log.Fatal("Database initialization failed", zap.Error(err))
	}
	defer configs.CloseDB()

	configslog.SLog.Info("Running database initialization...")
	if err := database.Initialize(configs.GetDB(), *migrateFlag, *seedFlag); err != nil {
		configslog.Log.Fatal("Database initialization failed", zap.Error(err))
	}
	configslog.SLog.Info("Database initialization finished.")
}
