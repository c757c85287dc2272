package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	FirebaseProjectID   string
	FirebaseClientEmail string
	FirebasePrivateKey  string

	RedisURL string

	RateLimitAuth time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		RedisURL: os.Getenv("REDIS_URL"),
	}

	var err error
	if cfg.FirebaseProjectID, err = requireEnv("FIREBASE_PROJECT_ID"); err != nil {
		return nil, err
	}
	if cfg.FirebaseClientEmail, err = requireEnv("FIREBASE_CLIENT_EMAIL"); err != nil {
		return nil, err
	}
	if cfg.FirebasePrivateKey, err = requireEnv("FIREBASE_PRIVATE_KEY"); err != nil {
		return nil, err
	}

	cfg.RateLimitAuth, err = time.ParseDuration(getEnv("RATE_LIMIT_AUTH", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_AUTH: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("missing environment variable: %s", key)
	}
	return value, nil
}
