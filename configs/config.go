package configs

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds everything the application reads from the environment.
type AppConfig struct {
	Port         string
	SecretKey    string
	DatabaseURL  string
	GeminiAPIKey string
	LogFile      string
	LogLevel     string
}

// Load reads .env (if present) and builds the application configuration.
// When DATABASE_URL is not set, a local default DSN is constructed from the
// individual DB_* variables.
func Load() *AppConfig {
	_ = godotenv.Load()

	cfg := &AppConfig{
		Port:         getEnv("PORT", "5000"),
		SecretKey:    getEnv("SECRET_KEY", "dev-secret-key"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		LogFile:      os.Getenv("LOG_FILE"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DatabaseURL == "" {
		user := getEnv("DB_USER", "postgres")
		password := getEnv("DB_PASSWORD", "postgres")
		host := getEnv("DB_HOST", "localhost")
		name := getEnv("DB_NAME", "serenemind")
		cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:5432/%s?sslmode=disable",
			user, url.QueryEscape(password), host, name)
	}

	return cfg
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
