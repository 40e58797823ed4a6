package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mmdatafocus/fleetops_backend/utils"
)

func init() {
	// Load env from .env
	godotenv.Load()
}

// DashboardTopVessels is how many vessels the crew ranking keeps.
//
// Set via env:
// - DASHBOARD_TOP_VESSELS=5
func DashboardTopVessels() int {
	return intFromEnv("DASHBOARD_TOP_VESSELS", 5)
}

// DueSoonWindow is the look-ahead for maintenance "due soon" warnings.
//
// Set via env:
// - DUE_SOON_DAYS=7
func DueSoonWindow() time.Duration {
	days := intFromEnv("DUE_SOON_DAYS", 7)
	if days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

// StrictRecordTags rejects payloads carrying unknown status/type tags instead
// of letting the reports ignore them.
//
// Set via env:
// - STRICT_RECORD_TAGS=true
func StrictRecordTags() bool {
	return boolFromEnv("STRICT_RECORD_TAGS")
}

// SnapshotCacheEnabled turns on redis caching of computed dashboards.
//
// Set via env:
// - ENABLE_SNAPSHOT_CACHE=true
// - SNAPSHOT_CACHE_TTL_SECONDS=60
func SnapshotCacheEnabled() bool {
	return boolFromEnv("ENABLE_SNAPSHOT_CACHE")
}

func SnapshotCacheTTL() time.Duration {
	ttl := intFromEnv("SNAPSHOT_CACHE_TTL_SECONDS", 60)
	if ttl <= 0 {
		ttl = 60
	}
	return time.Duration(ttl) * time.Second
}

// ReportSlowThreshold: env REPORT_SLOW_MS (default 500ms)
func ReportSlowThreshold() time.Duration {
	ms := intFromEnv("REPORT_SLOW_MS", 500)
	if ms <= 0 {
		ms = 500
	}
	return time.Duration(ms) * time.Millisecond
}

// AuthStormWindow: env AUTH_STORM_WINDOW_MS (default 1500ms)
func AuthStormWindow() time.Duration {
	ms := intFromEnv("AUTH_STORM_WINDOW_MS", 1500)
	if ms < 0 {
		ms = 1500
	}
	return time.Duration(ms) * time.Millisecond
}

func intFromEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolFromEnv(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "y" || v == "on"
}

// RateLimitEnabled turns on the per-client redis rate limiter.
//
// Set via env:
// - RATE_LIMIT_ENABLED=true
// - RATE_LIMIT_WINDOW_SECONDS=60
// - RATE_LIMIT_MAX_REQUESTS=600
func RateLimitEnabled() bool {
	return boolFromEnv("RATE_LIMIT_ENABLED")
}

func RateLimitMaxRequests() int64 {
	n := intFromEnv("RATE_LIMIT_MAX_REQUESTS", 600)
	if n <= 0 {
		n = 600
	}
	return int64(n)
}

func RateLimitWindow() time.Duration {
	sec := intFromEnv("RATE_LIMIT_WINDOW_SECONDS", 60)
	if sec <= 0 {
		sec = 60
	}
	return time.Duration(sec) * time.Second
}

// SkipMigrations leaves schema changes to a separate job.
//
// Set via env:
// - SKIP_MIGRATIONS=true
func SkipMigrations() bool {
	return boolFromEnv("SKIP_MIGRATIONS")
}

// CorsAllowedOrigins: env CORS_ALLOWED_ORIGINS (comma-separated). Only
// consulted when IsProduction.
func CorsAllowedOrigins() []string {
	return utils.SplitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS"))
}

func IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production")
}

// ServerPort: env API_PORT, then PORT, default 8080.
func ServerPort() string {
	if port := strings.TrimSpace(os.Getenv("API_PORT")); port != "" {
		return port
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		return port
	}
	return "8080"
}
