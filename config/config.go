package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort             = "8080"
	DefaultTokenExpiryMin   = 60
	DefaultLoginMaxAttempts = 5
	DefaultLockoutMinutes   = 15
	DefaultAllowedOrigins   = "*"

	// DefaultJWTSecret is for development only; production refuses to start
	// without an explicit JWT_SECRET.
	DefaultJWTSecret = "dev-secret-change-me"
)

type Config struct {
	Env              string
	Port             string
	DBURL            string
	JWTSecret        string
	TokenExpiryMin   int
	LoginMaxAttempts int
	LockoutMinutes   int
	AllowedOrigins   string
}

func Load() *Config {
	env := getEnv("ENV", "development")

	// Environment variables always win over the .env file.
	if env == "production" {
		_ = godotenv.Load("config/.env.prod")
	} else {
		_ = godotenv.Load("config/.env.dev")
	}

	cfg := &Config{
		Env:              env,
		Port:             getEnv("PORT", DefaultPort),
		DBURL:            mustGetEnv("DB_URL"),
		JWTSecret:        getEnv("JWT_SECRET", DefaultJWTSecret),
		TokenExpiryMin:   getEnvAsInt("TOKEN_EXPIRY_MINUTES", DefaultTokenExpiryMin),
		LoginMaxAttempts: getEnvAsInt("LOGIN_MAX_ATTEMPTS", DefaultLoginMaxAttempts),
		LockoutMinutes:   getEnvAsInt("LOCKOUT_MINUTES", DefaultLockoutMinutes),
		AllowedOrigins:   getEnv("ALLOWED_ORIGINS", DefaultAllowedOrigins),
	}

	if cfg.Env == "production" && cfg.JWTSecret == DefaultJWTSecret {
		log.Fatalf("Missing required config: JWT_SECRET")
	}

	return cfg
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
