// Package core contains the business logic for the RSS deals scraper.
// It is designed to be framework-agnostic and can be used independently
// of any infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (FeedItem, ProcessedLink, ScrapingResult)
// - links: Outbound-link processing (redirect resolution, affiliate tagging, classification)
// - scraper: Feed scraping orchestration across sources
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, renderer)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "rss-deals-scraper/core/interfaces"
//	    "rss-deals-scraper/core/links"
//	    "rss-deals-scraper/core/scraper"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create the service
//	tags := links.TagTable{{Domain: "amazon.com", Tag: "mytag-20"}}
//	pipeline := links.NewPipeline(deps, tags, links.DefaultLinkWorkers)
//	service := scraper.NewService(deps, pipeline, scraper.DefaultFeedWorkers)
//
//	// Scrape feeds
//	results, stats := service.ScrapeAllFeeds(ctx, []string{
//	    "https://example.com/feed.rss",
//	})
package core
