// ABOUTME: Main entry point for the RSS deals scraper
// ABOUTME: Wires together all components and runs a single scraping pass

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rss-deals-scraper/core/interfaces"
	"rss-deals-scraper/core/links"
	"rss-deals-scraper/core/scraper"
	"rss-deals-scraper/infrastructure/cache/memory"
	"rss-deals-scraper/infrastructure/cache/redis"
	"rss-deals-scraper/infrastructure/cache/sqlite"
	stdhttp "rss-deals-scraper/infrastructure/http/standard"
	logruslogger "rss-deals-scraper/infrastructure/logger/logrus"
	chromerenderer "rss-deals-scraper/infrastructure/renderer/chromedp"
	"rss-deals-scraper/infrastructure/storage/jsonfile"
	"rss-deals-scraper/pkg/config"
	"rss-deals-scraper/pkg/featureflags"
)

func main() {
	// Load .env if present, environment variables win
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogrusLogger(cfg.Scraper.LogLevel)
	logger.Info("Starting RSS deals scraper", map[string]interface{}{
		"environment": cfg.Scraper.Environment,
		"feeds":       len(cfg.Scraper.FeedURLs),
		"cache_type":  cfg.Cache.Type,
		"output":      cfg.Output.JSONPath,
	})

	flags := featureflags.NewEnvManager("")
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create cache
	var cache interfaces.Cache
	if flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		switch cfg.Cache.Type {
		case "redis":
			redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
			if err != nil {
				logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
					"error": err.Error(),
				})
				cache = memory.NewMemoryCache()
			} else {
				defer redisCache.Close()
				cache = redisCache
				logger.Info("Using Redis cache", map[string]interface{}{
					"address": cfg.Cache.Redis.Address,
				})
			}
		case "sqlite":
			sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
			if err != nil {
				logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
					"error": err.Error(),
				})
				cache = memory.NewMemoryCache()
			} else {
				defer sqliteCache.Close()
				cache = sqliteCache
				logger.Info("Using SQLite cache", map[string]interface{}{
					"path": cfg.Cache.SQLite.Path,
				})
			}
		default:
			cache = memory.NewMemoryCache()
			logger.Info("Using memory cache", nil)
		}
	} else {
		logger.Info("Page caching disabled", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30*time.Second,
		stdhttp.WithMaxRetries(cfg.Scraper.MaxRetries),
		stdhttp.WithUserAgent(cfg.Scraper.UserAgent),
	)

	// Create renderer when JS rendering is enabled
	var renderer interfaces.Renderer
	if flags.IsEnabled(ctx, featureflags.JSRendering) {
		chromeRenderer := chromerenderer.NewChromeRenderer()
		defer chromeRenderer.Close()
		renderer = chromeRenderer
		logger.Info("JavaScript rendering enabled", nil)
	}

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
		Renderer:   renderer,
	}

	tags := links.TagTable{
		{Domain: "amazon.com", Tag: cfg.Affiliate.AmazonTagUS},
		{Domain: "amazon.ca", Tag: cfg.Affiliate.AmazonTagCA},
	}

	pipeline := links.NewPipeline(deps, tags, cfg.Scraper.LinkWorkers)
	service := scraper.NewService(deps, pipeline, cfg.Scraper.FeedWorkers)

	results, stats := service.ScrapeAllFeeds(ctx, cfg.Scraper.FeedURLs)

	writer := jsonfile.NewWriter(cfg.Output.JSONPath)
	if err := writer.Save(results); err != nil {
		logger.Error("Failed to write output", map[string]interface{}{
			"path":  cfg.Output.JSONPath,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	logger.Info("Scraping run complete", map[string]interface{}{
		"feeds_processed":   stats.TotalFeedsProcessed,
		"items_scraped":     stats.TotalItemsScraped,
		"links_processed":   stats.TotalLinksProcessed,
		"affiliate_links":   stats.TotalAffiliateLinks,
		"duration_seconds":  stats.DurationSeconds(),
		"affiliate_percent": stats.AffiliateConversionRate(),
	})
}
