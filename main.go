package main

import (
	"os"
	"os/signal"
	"syscall"

	"serenemind.app/configs"
	"serenemind.app/configs/configslog"
	"serenemind.app/database"
	"serenemind.app/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.Load()
	configslog.InitLogger(cfg.LogFile, cfg.LogLevel)
	defer configslog.SyncLogger()

	if err := configs.InitDB(cfg.DatabaseURL); err != nil {
		configslog.Log.Fatal("Database initialization failed", zap.Error(err))
	}
	defer configs.CloseDB()

	if err := database.Initialize(configs.GetDB(), true, true); err != nil {
		configslog.Log.Fatal("Database migration failed", zap.Error(err))
	}

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:   engine,
		AppName: "Serenemind",
	})

	routes.SetupRoutes(app, cfg)

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		configslog.SLog.Info("Shutting down...")
		_ = app.Shutdown()
	}()

	configslog.SLog.Infof("Listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Fatal("Server stopped unexpectedly", zap.Error(err))
	}
}
