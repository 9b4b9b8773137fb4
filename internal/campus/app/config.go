package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer          string // Required: issuer claim for access tokens
	JWTSecret       string // Required: HMAC secret for access tokens
	DatabaseFile    string // Optional: path to SQLite database file (default: ./campus.db)
	AdminEmail      string // Optional: bootstrap admin email; promoted on boot when set
	AdminPassword   string // Optional: when set with AdminEmail, the account is created on boot
	SeedCatalog     bool   // Optional: seed default languages and categories on boot (default: true)
	Env             string // Environment (dev, staging, prod) (default: dev)
	LogLevel        string // Log level (debug, info, warn, error) (default: info)
	LogFormat       string // Log format (json, text) (default: json)
	Port            int    // HTTP server port (default: 8080)

	AccessTokenTTL       time.Duration // Access token lifetime (default: 1h)
	VerificationTTL      time.Duration // Verification code lifetime (default: 15m)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               getEnvOrDefault("CAMPUS_ISSUER", "campus-api"),
		JWTSecret:            os.Getenv("CAMPUS_JWT_SECRET"),
		DatabaseFile:         getEnvOrDefault("CAMPUS_DATABASE_FILE", "campus.db"),
		AdminEmail:           os.Getenv("CAMPUS_ADMIN_EMAIL"),
		AdminPassword:        os.Getenv("CAMPUS_ADMIN_PASSWORD"),
		SeedCatalog:          getEnvBoolOrDefault("CAMPUS_SEED_CATALOG", true),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		AccessTokenTTL:       getEnvDurationOrDefault("CAMPUS_ACCESS_TOKEN_TTL", time.Hour),
		VerificationTTL:      getEnvDurationOrDefault("CAMPUS_VERIFICATION_TTL", 15*time.Minute),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
