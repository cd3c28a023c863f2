package config

import (
	"os"
	"testing"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Scraper.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.Scraper.MaxRetries)
	}
	if cfg.Scraper.FeedWorkers != 5 {
		t.Errorf("FeedWorkers = %d, want 5", cfg.Scraper.FeedWorkers)
	}
	if cfg.Scraper.LinkWorkers != 10 {
		t.Errorf("LinkWorkers = %d, want 10", cfg.Scraper.LinkWorkers)
	}
	if cfg.Affiliate.AmazonTagUS != "mytag-20" {
		t.Errorf("AmazonTagUS = %s, want mytag-20", cfg.Affiliate.AmazonTagUS)
	}
	if cfg.Affiliate.AmazonTagCA != "mytagca-20" {
		t.Errorf("AmazonTagCA = %s, want mytagca-20", cfg.Affiliate.AmazonTagCA)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
	}
	if cfg.Output.JSONPath != "data/deals.json" {
		t.Errorf("JSONPath = %s, want data/deals.json", cfg.Output.JSONPath)
	}
	if len(cfg.Scraper.FeedURLs) != 0 {
		t.Errorf("FeedURLs = %v, want empty", cfg.Scraper.FeedURLs)
	}
	if cfg.Scraper.Environment != "development" {
		t.Errorf("Environment = %s, want development", cfg.Scraper.Environment)
	}
}

func TestLoadFromEnv_FeedURLList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "single feed",
			value: "https://a.example/feed",
			want:  []string{"https://a.example/feed"},
		},
		{
			name:  "multiple feeds with whitespace",
			value: "https://a.example/feed, https://b.example/rss ,https://c.example/atom",
			want:  []string{"https://a.example/feed", "https://b.example/rss", "https://c.example/atom"},
		},
		{
			name:  "blank entries dropped",
			value: "https://a.example/feed,,  ,https://b.example/rss",
			want:  []string{"https://a.example/feed", "https://b.example/rss"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			os.Setenv("RSS_SOURCES", tt.value)

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}

			if len(cfg.Scraper.FeedURLs) != len(tt.want) {
				t.Fatalf("FeedURLs = %v, want %v", cfg.Scraper.FeedURLs, tt.want)
			}
			for i, url := range tt.want {
				if cfg.Scraper.FeedURLs[i] != url {
					t.Errorf("FeedURLs[%d] = %s, want %s", i, cfg.Scraper.FeedURLs[i], url)
				}
			}
		})
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("MAX_RETRIES", "5")
	os.Setenv("AMAZON_TAG_US", "shopdeals-20")
	os.Setenv("CACHE_TYPE", "sqlite")
	os.Setenv("SQLITE_CACHE_PATH", "/tmp/cache.db")
	os.Setenv("OUTPUT_JSON", "/tmp/out.json")
	os.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Scraper.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.Scraper.MaxRetries)
	}
	if cfg.Affiliate.AmazonTagUS != "shopdeals-20" {
		t.Errorf("AmazonTagUS = %s, want shopdeals-20", cfg.Affiliate.AmazonTagUS)
	}
	if cfg.Cache.Type != "sqlite" {
		t.Errorf("Cache.Type = %s, want sqlite", cfg.Cache.Type)
	}
	if cfg.Cache.SQLite.Path != "/tmp/cache.db" {
		t.Errorf("SQLite.Path = %s, want /tmp/cache.db", cfg.Cache.SQLite.Path)
	}
	if cfg.Output.JSONPath != "/tmp/out.json" {
		t.Errorf("JSONPath = %s, want /tmp/out.json", cfg.Output.JSONPath)
	}
	if cfg.Scraper.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.Scraper.LogLevel)
	}
}

func TestLoadFromEnv_InvalidIntFallsBack(t *testing.T) {
	os.Clearenv()
	os.Setenv("MAX_RETRIES", "lots")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Scraper.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want default 3", cfg.Scraper.MaxRetries)
	}
}

func validConfig() *Config {
	return &Config{
		Scraper: ScraperConfig{
			FeedURLs:    []string{"https://a.example/feed"},
			MaxRetries:  3,
			FeedWorkers: 5,
			LinkWorkers: 10,
		},
		Cache: CacheConfig{
			Type:  "memory",
			Redis: RedisConfig{Address: "localhost:6379"},
		},
		Output: OutputConfig{JSONPath: "data/deals.json"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "no feeds",
			mutate:  func(c *Config) { c.Scraper.FeedURLs = nil },
			wantErr: true,
		},
		{
			name:    "retries too low",
			mutate:  func(c *Config) { c.Scraper.MaxRetries = 0 },
			wantErr: true,
		},
		{
			name:    "retries too high",
			mutate:  func(c *Config) { c.Scraper.MaxRetries = 11 },
			wantErr: true,
		},
		{
			name:    "zero feed workers",
			mutate:  func(c *Config) { c.Scraper.FeedWorkers = 0 },
			wantErr: true,
		},
		{
			name:    "zero link workers",
			mutate:  func(c *Config) { c.Scraper.LinkWorkers = 0 },
			wantErr: true,
		},
		{
			name:    "unknown cache type",
			mutate:  func(c *Config) { c.Cache.Type = "memcached" },
			wantErr: true,
		},
		{
			name:    "sqlite cache accepted",
			mutate:  func(c *Config) { c.Cache.Type = "sqlite" },
			wantErr: false,
		},
		{
			name: "redis without address",
			mutate: func(c *Config) {
				c.Cache.Type = "redis"
				c.Cache.Redis.Address = ""
			},
			wantErr: true,
		},
		{
			name:    "empty output path",
			mutate:  func(c *Config) { c.Output.JSONPath = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
