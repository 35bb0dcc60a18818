package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DevJWTSecret is the development fallback. Never deploy with it.
const DevJWTSecret = "clover-inventory-pro-secret-key-2024"

type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    string

	// Clover OAuth scaffold (no token exchange yet)
	CloverClientID    string
	CloverRedirectURL string

	// Inbound rate limit, applied uniformly across /api
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Load reads configuration from the environment. A .env file is honored
// when present, matching local development workflow.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	return &Config{
		Port:              getEnv("PORT", "3001"),
		DatabasePath:      getEnv("DATABASE_PATH", "database/inventory.db"),
		JWTSecret:         getEnv("JWT_SECRET", DevJWTSecret),
		CloverClientID:    getEnv("CLOVER_CLIENT_ID", "674JVXJ7S57T6"),
		CloverRedirectURL: getEnv("CLOVER_REDIRECT_URL", "http://localhost:3001/api/clover/callback"),
		RateLimitMax:      getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow:   time.Duration(getEnvInt("RATE_LIMIT_WINDOW_MINUTES", 15)) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
