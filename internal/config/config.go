package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	JWTSecret    string
	GinMode      string
	OpenAIAPIKey string
	CORSOrigin   string
}

func Load() *Config {
	// Best effort; real deployments set env vars directly
	_ = godotenv.Load()

	return &Config{
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "3306"),
		DBUser:       getEnv("DB_USER", "mentoruser"),
		DBPassword:   getEnv("DB_PASSWORD", "mentorpassword"),
		DBName:       getEnv("DB_NAME", "mentorship"),
		JWTSecret:    getEnv("JWT_SECRET", "default-secret-key-change-me"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
