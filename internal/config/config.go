package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	DefaultRateLimitPerMinute = 60
	DefaultCacheTTLSeconds    = 90
)

// Config holds application configuration
type Config struct {
	Env         string
	Port        string
	MetricsPort string
	RedisURL    string

	RateLimitPerMinute int
	CacheTTLSeconds    int

	SportsDataNFLKey string
	SportsDataNBAKey string
	SportradarNFLKey string
	SportradarNBAKey string
	TrackProviderKey string

	CORSOrigins []string
}

// Load reads configuration from environment variables, applying defaults
// for anything unset.
func Load() Config {
	return Config{
		Env:         getEnv("ENV", "local"),
		Port:        getEnv("EDGE_API_PORT", ":8090"),
		MetricsPort: getEnv("METRICS_PORT", "9091"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_REQUESTS_PER_MINUTE", DefaultRateLimitPerMinute),
		CacheTTLSeconds:    getEnvInt("CACHE_TTL_SECONDS", DefaultCacheTTLSeconds),

		SportsDataNFLKey: getEnv("SPORTSDATA_NFL_API_KEY", ""),
		SportsDataNBAKey: getEnv("SPORTSDATA_NBA_API_KEY", ""),
		SportradarNFLKey: getEnv("SPORTRADAR_NFL_API_KEY", ""),
		SportradarNBAKey: getEnv("SPORTRADAR_NBA_API_KEY", ""),
		TrackProviderKey: getEnv("TRACK_PROVIDER_API_KEY", ""),

		CORSOrigins: getEnvList("CORS_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:3001",
		}),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable; unparsable or
// non-positive values fall back to the default.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

// getEnvList retrieves a comma-separated environment variable
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
