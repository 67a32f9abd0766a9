package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	AIServiceURL    string
	ChromePath      string
	OutputDir       string
	SchemaPath      string
	DefaultLanguage string
}

func LoadConfig() *Config {
	// Load .env when present; ignored in production where env is injected.
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		AIServiceURL:    strings.TrimRight(getEnv("AI_SERVICE_URL", "http://ai-service:8000"), "/"),
		ChromePath:      getEnv("CHROME_PATH", ""),
		OutputDir:       getEnv("OUTPUT_DIR", "./output"),
		SchemaPath:      getEnv("SCHEMA_PATH", "./templates/resume.schema.json"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
