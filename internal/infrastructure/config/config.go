package config

import (
	"os"
	"strconv"
)

// Store backends selectable via STORE_BACKEND.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendSQLite = "sqlite"
)

// Config holds application configuration values.
type Config struct {
	Port         string
	StoreBackend string
	RedisURL     string
	MongoURI     string
	MongoDBName  string
	SQLitePath   string
	SeedOnStart  bool
	RateLimit    float64
}

// NewConfig creates a new Config instance, loading values from
// environment variables.
func NewConfig() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		StoreBackend: getEnv("STORE_BACKEND", BackendMemory),
		RedisURL:     getEnv("REDIS_URL", ""),
		MongoURI:     getEnv("MONGODB_URI", ""),
		MongoDBName:  getEnv("MONGODB_DB_NAME", "stayhub"),
		SQLitePath:   getEnv("SQLITE_PATH", "stayhub.db"),
		SeedOnStart:  getEnvAsBool("SEED_ON_START", true),
		RateLimit:    getEnvAsFloat("RATE_LIMIT_RPS", 10),
	}
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}

// Helper function to get an environment variable as a float or return a default value.
func getEnvAsFloat(name string, fallback float64) float64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseFloat(valStr, 64); err == nil {
		return val
	}
	return fallback
}
