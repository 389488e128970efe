package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings for the dispatch server.
type Config struct {
	AppEnv   string
	HTTPAddr string

	Postgres PostgresConfig
	Redis    RedisConfig

	// CacheBackend is "memory" (go-cache) or "redis".
	CacheBackend string

	// Optional overrides for the embedded lookup tables.
	AircraftSpeedsFile string
	TaxiTimesFile      string

	AirportsSourceURL   string
	AirportSyncInterval time.Duration

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int

	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	ShutdownTimeout time.Duration
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// DSN returns a postgres:// connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", p.User, p.Password, p.Host, p.Port, p.Database)
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

// Load reads the configuration from the environment, applying defaults for
// anything unset.
func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Postgres: PostgresConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			User:     getEnv("PG_USER", "dispatch"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_DB", "dispatch"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		CacheBackend:        strings.ToLower(getEnv("CACHE_BACKEND", "memory")),
		AircraftSpeedsFile:  os.Getenv("AIRCRAFT_SPEEDS_FILE"),
		TaxiTimesFile:       os.Getenv("TAXI_TIMES_FILE"),
		AirportsSourceURL:   getEnv("AIRPORTS_SOURCE_URL", "https://raw.githubusercontent.com/mwgg/Airports/refs/heads/master/airports.json"),
		AirportSyncInterval: getEnvDuration("AIRPORT_SYNC_INTERVAL", 24*time.Hour),
		CORSAllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		RateLimitRPS:        getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:      getEnvInt("RATE_LIMIT_BURST", 20),
		LogFile:             os.Getenv("LOG_FILE"),
		LogMaxSizeMB:        getEnvInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups:       getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays:       getEnvInt("LOG_MAX_AGE_DAYS", 28),
		ShutdownTimeout:     getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
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

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
