// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, page rendering, logging, and persistence.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: File-based cache that survives restarts
// - http/standard: Standard library HTTP client with retry logic and rate limiting
// - logger/logrus: Structured logger backed by logrus
// - renderer/chromedp: Headless-browser renderer for script-heavy pages
// - storage/jsonfile: JSON file persistence for scraped items
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// SQLite Cache Example:
//
//	cache, err := sqlite.NewSQLiteCache("data/cache.db")
//	defer cache.Close()
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures, and
// a HEAD variant that never follows redirects:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger("info")
//	logger.Info("Processing feed", map[string]interface{}{
//	    "feed_url": "https://example.com/feed.rss",
//	    "items":    12,
//	})
package infrastructure
