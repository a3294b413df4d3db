package config

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"CACHE_TTL_MS", "DATA_SOURCE", "SHEET_RANGE", "REDIRECT_KEY_PARAM", "STATIC_FBID", "STATIC_FBCLICK", "MAX_KEYWORDS", "CACHE_WARM_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.CacheTTL != 10*time.Minute {
		t.Errorf("CacheTTL = %v, want 10m", cfg.CacheTTL)
	}
	if cfg.DataSource != SourceSheets {
		t.Errorf("DataSource = %q, want %q", cfg.DataSource, SourceSheets)
	}
	if cfg.SheetRange != "Redirects!A:J" {
		t.Errorf("SheetRange = %q", cfg.SheetRange)
	}
	if cfg.RedirectKeyParam != "rid" {
		t.Errorf("RedirectKeyParam = %q, want rid", cfg.RedirectKeyParam)
	}
	if cfg.StaticFBID != "820262166096188" || cfg.StaticFBClick != "Purchase" {
		t.Errorf("static ids = %q/%q", cfg.StaticFBID, cfg.StaticFBClick)
	}
	if cfg.MaxKeywords != 3 {
		t.Errorf("MaxKeywords = %d, want 3", cfg.MaxKeywords)
	}
	if cfg.CacheWarmInterval != 0 {
		t.Errorf("CacheWarmInterval = %v, want disabled", cfg.CacheWarmInterval)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CACHE_TTL_MS", "1500")
	t.Setenv("DATA_SOURCE", "Postgres")
	t.Setenv("REDIRECT_KEY_PARAM", "key")
	t.Setenv("CACHE_WARM_INTERVAL", "30s")
	t.Setenv("RATE_LIMIT_MAX", "not-a-number")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := Load()

	if cfg.CacheTTL != 1500*time.Millisecond {
		t.Errorf("CacheTTL = %v, want 1.5s", cfg.CacheTTL)
	}
	if cfg.DataSource != SourcePostgres {
		t.Errorf("DataSource = %q, want %q", cfg.DataSource, SourcePostgres)
	}
	if cfg.RedirectKeyParam != "key" {
		t.Errorf("RedirectKeyParam = %q, want key", cfg.RedirectKeyParam)
	}
	if cfg.CacheWarmInterval != 30*time.Second {
		t.Errorf("CacheWarmInterval = %v, want 30s", cfg.CacheWarmInterval)
	}
	if cfg.RateLimitMax != 0 {
		t.Errorf("RateLimitMax = %d, want fallback 0", cfg.RateLimitMax)
	}
	if !cfg.UsesSharedSnapshot() {
		t.Error("UsesSharedSnapshot() = false, want true")
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		level  string
		prefix string
		debug  bool
	}{
		{"development text", "development", "debug", "time=", true},
		{"production json", "production", "info", "{", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&Config{Env: tt.env, LogLevel: tt.level}, &buf)
			logger.Info("hello")

			if !strings.HasPrefix(buf.String(), tt.prefix) {
				t.Errorf("output %q does not start with %q", buf.String(), tt.prefix)
			}
			if got := logger.Enabled(context.Background(), slog.LevelDebug); got != tt.debug {
				t.Errorf("debug enabled = %v, want %v", got, tt.debug)
			}
		})
	}
}
