package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Remote      RemoteConfig
	Engine      EngineConfig
	Breaker     BreakerConfig
}

// RemoteConfig configures the HTTP binding to the remote transaction store.
// Requests carry no timeout in the upstream client; here expiry is treated as
// a transport failure.
type RemoteConfig struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerSecond int
	Burst             int
}

type EngineConfig struct {
	ResolveConcurrency int
	CategoryCacheSize  int
	CategoryCacheTTL   time.Duration
}

type BreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func Load() *Config {
	// .env is a dev convenience; absence is fine
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Remote: RemoteConfig{
			BaseURL:           getEnv("LEDGER_BASE_URL", "http://localhost:8080"),
			APIKey:            getEnv("LEDGER_API_KEY", ""),
			Timeout:           getDurationEnv("LEDGER_HTTP_TIMEOUT", 10*time.Second),
			RequestsPerSecond: getIntEnv("LEDGER_REQUESTS_PER_SECOND", 20),
			Burst:             getIntEnv("LEDGER_REQUEST_BURST", 40),
		},
		Engine: EngineConfig{
			ResolveConcurrency: getIntEnv("LEDGER_RESOLVE_CONCURRENCY", 8),
			CategoryCacheSize:  getIntEnv("LEDGER_CATEGORY_CACHE_SIZE", 256),
			CategoryCacheTTL:   getDurationEnv("LEDGER_CATEGORY_CACHE_TTL", 5*time.Minute),
		},
		Breaker: BreakerConfig{
			MaxFailures:     getIntEnv("LEDGER_BREAKER_MAX_FAILURES", 5),
			ResetTimeout:    getDurationEnv("LEDGER_BREAKER_RESET_TIMEOUT", 30*time.Second),
			HalfOpenMaxSucc: getIntEnv("LEDGER_BREAKER_HALF_OPEN_SUCCESSES", 3),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
