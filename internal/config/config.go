package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Data sources for the mapping table.
const (
	SourceSheets   = "sheets"
	SourcePostgres = "postgres"
	SourceStatic   = "static"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel string

	// Server
	ServerAddr   string
	RateLimitMax int // requests per minute per IP, 0 disables
	MetricsPath  string

	// Mapping table cache
	CacheTTL          time.Duration // env: CACHE_TTL_MS
	CacheWarmInterval time.Duration // 0 disables the background warmer
	DataSource        string

	// Google Sheets
	GoogleServiceAccountEmail string
	GooglePrivateKey          string
	SheetID                   string
	SheetRange                string

	// Postgres source
	DatabaseURL   string
	DatabaseTable string
	RunMigrations bool

	// Shared snapshot store
	RedisURL string
	RedisKey string

	// Static table, used as the source for DATA_SOURCE=static and as the
	// fallback table otherwise
	StaticRowsFile string

	// Redirect composition
	StaticFBID       string
	StaticFBClick    string
	RedirectKeyParam string
	MaxKeywords      int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 0),
		MetricsPath:  getEnv("METRICS_PATH", "/metrics"),

		CacheTTL:          time.Duration(getEnvInt("CACHE_TTL_MS", 600000)) * time.Millisecond,
		CacheWarmInterval: getEnvDuration("CACHE_WARM_INTERVAL", 0),
		DataSource:        strings.ToLower(getEnv("DATA_SOURCE", SourceSheets)),

		GoogleServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
		GooglePrivateKey:          getEnv("GOOGLE_PRIVATE_KEY", ""),
		SheetID:                   getEnv("SHEET_ID", ""),
		SheetRange:                getEnv("SHEET_RANGE", "Redirects!A:J"),

		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DatabaseTable: getEnv("DATABASE_TABLE", "redirect_rows"),
		RunMigrations: getEnv("RUN_MIGRATIONS", "") != "",

		RedisURL: getEnv("REDIS_URL", ""),
		RedisKey: getEnv("REDIS_KEY", "linkrotator:table"),

		StaticRowsFile: getEnv("STATIC_ROWS_FILE", "rows.yaml"),

		StaticFBID:       getEnv("STATIC_FBID", "820262166096188"),
		StaticFBClick:    getEnv("STATIC_FBCLICK", "Purchase"),
		RedirectKeyParam: getEnv("REDIRECT_KEY_PARAM", "rid"),
		MaxKeywords:      getEnvInt("MAX_KEYWORDS", 3),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// UsesSharedSnapshot returns true if a redis snapshot store is configured.
func (c *Config) UsesSharedSnapshot() bool {
	return c.RedisURL != ""
}
