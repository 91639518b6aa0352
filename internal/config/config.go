package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseDSN  string
	GeminiAPIKey string
	GeminiModel  string
	HTTPPort     string
	LogLevel     string
}

var AppConfig Config

// Load reads the optional .env file and resolves all settings from the
// environment. GEMINI_API_KEY may be empty: the LLM provider then reports
// itself as unconfigured instead of the process refusing to start.
func Load() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, relying on environment variables")
	}

	AppConfig = Config{
		DatabaseDSN:  getEnv("DATABASE_DSN", ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		HTTPPort:     getEnv("HTTP_PORT", "8000"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
