package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port  string
	Debug bool

	// YouTube Data API
	YouTubeAPIKey string

	// Cache store
	CachePath string

	// Default number of comments fetched per video
	DefaultCommentCount int
	MaxCommentCount     int

	// Scheduled maintenance (physical compaction of expired cache rows)
	EnableMaintenance   bool
	MaintenanceSchedule string

	// Trending defaults
	TrendingRegion string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		Debug: getBoolEnv("DEBUG", false),

		YouTubeAPIKey: getEnv("YOUTUBE_API_KEY", ""),

		CachePath: getEnv("CACHE_PATH", "commentscope.db"),

		DefaultCommentCount: getIntEnv("DEFAULT_COMMENT_COUNT", 200),
		MaxCommentCount:     getIntEnv("MAX_COMMENT_COUNT", 1000),

		EnableMaintenance:   getBoolEnv("ENABLE_CACHE_MAINTENANCE", false),
		MaintenanceSchedule: getEnv("CACHE_MAINTENANCE_SCHEDULE", "0 0 */6 * * *"),

		TrendingRegion: getEnv("TRENDING_REGION", "US"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("YOUTUBE_API_KEY is required")
	}

	if c.DefaultCommentCount <= 0 {
		return fmt.Errorf("DEFAULT_COMMENT_COUNT must be positive")
	}

	if c.MaxCommentCount < c.DefaultCommentCount {
		return fmt.Errorf("MAX_COMMENT_COUNT must be at least DEFAULT_COMMENT_COUNT")
	}

	if strings.TrimSpace(c.CachePath) == "" {
		return fmt.Errorf("CACHE_PATH must not be empty")
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
