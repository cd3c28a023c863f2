// ABOUTME: Configuration management for the scraper with environment variable support
// ABOUTME: Defines configuration structures for feeds, affiliate tags, cache, and output

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Scraper contains feed and pipeline configuration
	Scraper ScraperConfig

	// Affiliate contains affiliate tag configuration
	Affiliate AffiliateConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Output contains persistence configuration
	Output OutputConfig
}

// ScraperConfig holds feed and pipeline configuration
type ScraperConfig struct {
	// FeedURLs are the feeds to scrape
	FeedURLs []string

	// MaxRetries is the retry budget for outbound GET requests
	MaxRetries int

	// FeedWorkers bounds concurrent feed processing
	FeedWorkers int

	// LinkWorkers bounds concurrent link processing per entry
	LinkWorkers int

	// UserAgent is sent on every outbound request
	UserAgent string

	// LogLevel controls logging verbosity
	LogLevel string

	// Environment names the deployment environment (development/production)
	Environment string
}

// AffiliateConfig holds the affiliate tags injected per marketplace
type AffiliateConfig struct {
	// AmazonTagUS is the tag for amazon.com links
	AmazonTagUS string

	// AmazonTagCA is the tag for amazon.ca links
	AmazonTagCA string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the cache database file location
	Path string
}

// OutputConfig holds persistence configuration
type OutputConfig struct {
	// JSONPath is where scraped items are written
	JSONPath string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Scraper: ScraperConfig{
			FeedURLs:    splitList(os.Getenv("RSS_SOURCES")),
			MaxRetries:  getEnvAsIntOrDefault("MAX_RETRIES", 3),
			FeedWorkers: getEnvAsIntOrDefault("FEED_WORKERS", 5),
			LinkWorkers: getEnvAsIntOrDefault("LINK_WORKERS", 10),
			UserAgent:   getEnvOrDefault("USER_AGENT", "RSSDealsScraper/1.0"),
			LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
			Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Affiliate: AffiliateConfig{
			AmazonTagUS: getEnvOrDefault("AMAZON_TAG_US", "mytag-20"),
			AmazonTagCA: getEnvOrDefault("AMAZON_TAG_CA", "mytagca-20"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "data/cache.db"),
			},
		},
		Output: OutputConfig{
			JSONPath: getEnvOrDefault("OUTPUT_JSON", "data/deals.json"),
		},
	}

	return cfg, nil
}

// splitList parses a comma-separated list, dropping blank entries
func splitList(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Scraper.FeedURLs) == 0 {
		return errors.New("at least one feed URL must be configured via RSS_SOURCES")
	}

	if c.Scraper.MaxRetries < 1 || c.Scraper.MaxRetries > 10 {
		return errors.New("max retries must be between 1 and 10")
	}

	if c.Scraper.FeedWorkers < 1 {
		return errors.New("feed workers must be at least 1")
	}

	if c.Scraper.LinkWorkers < 1 {
		return errors.New("link workers must be at least 1")
	}

	switch c.Cache.Type {
	case "redis", "memory", "sqlite":
	default:
		return errors.New("cache type must be 'redis', 'memory' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Output.JSONPath == "" {
		return errors.New("output path cannot be empty")
	}

	return nil
}
