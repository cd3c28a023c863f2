// ABOUTME: Scraper service orchestrates per-feed and per-entry processing
// ABOUTME: Feed failures are isolated to their own result; siblings are never cancelled

package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"rss-deals-scraper/core/domain"
	"rss-deals-scraper/core/interfaces"
	"rss-deals-scraper/core/links"
)

// DefaultFeedWorkers bounds how many feeds are scraped concurrently.
const DefaultFeedWorkers = 5

// Service drives the scraping run: fetch each configured feed, parse it
// and run every entry's content through the link pipeline.
type Service struct {
	deps     interfaces.Dependencies
	pipeline *links.Pipeline
	workers  int
}

// NewService creates a scraper service. A workers value of 0 or less uses
// DefaultFeedWorkers.
func NewService(deps interfaces.Dependencies, pipeline *links.Pipeline, workers int) *Service {
	if workers <= 0 {
		workers = DefaultFeedWorkers
	}
	return &Service{
		deps:     deps,
		pipeline: pipeline,
		workers:  workers,
	}
}

// ScrapeAllFeeds scrapes every configured feed concurrently and returns one
// result per feed plus run totals. One feed's failure never cancels its
// siblings; stats are merged only after all feed tasks have joined.
func (s *Service) ScrapeAllFeeds(ctx context.Context, feedURLs []string) ([]domain.ScrapingResult, domain.ScrapingStats) {
	stats := domain.ScrapingStats{ScrapingStarted: time.Now().UTC()}

	s.deps.Logger.Info("Starting scrape", map[string]interface{}{
		"feeds":   len(feedURLs),
		"workers": s.workers,
	})

	// Pre-allocate so results keep the configured feed order
	results := make([]domain.ScrapingResult, len(feedURLs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, feedURL := range feedURLs {
		i, feedURL := i, feedURL
		g.Go(func() error {
			result := s.scrapeSingleFeed(gctx, feedURL)

			mu.Lock()
			results[i] = result
			mu.Unlock()

			// Failures live on the result; never fail the group
			return nil
		})
	}
	_ = g.Wait()

	for i := range results {
		stats.Add(results[i])
	}
	stats.ScrapingCompleted = time.Now().UTC()

	s.deps.Logger.Info("Scraping completed", map[string]interface{}{
		"feeds_processed": stats.TotalFeedsProcessed,
		"items_scraped":   stats.TotalItemsScraped,
	})

	return results, stats
}

// scrapeSingleFeed fetches and parses one feed and processes its entries.
// All failures accumulate as error messages on the returned result.
func (s *Service) scrapeSingleFeed(ctx context.Context, feedURL string) domain.ScrapingResult {
	result := domain.NewScrapingResult(feedURL)

	s.deps.Logger.Info("Scraping feed", map[string]interface{}{
		"url": feedURL,
	})

	body, err := s.fetchFeed(ctx, feedURL)
	if err != nil {
		msg := fmt.Sprintf("network error fetching %s: %v", feedURL, err)
		s.deps.Logger.Error(msg, nil)
		result.AddError(msg)
		return result
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		msg := fmt.Sprintf("invalid or unrecognized feed format: %s: %v", feedURL, err)
		s.deps.Logger.Error(msg, nil)
		result.AddError(msg)
		return result
	}

	if len(parsed.Items) == 0 {
		msg := fmt.Sprintf("no entries found in feed: %s", feedURL)
		s.deps.Logger.Warn(msg, nil)
		result.AddError(msg)
		return result
	}

	result.TotalItems = len(parsed.Items)

	rssDomain := ""
	if u, err := url.Parse(feedURL); err == nil {
		rssDomain = u.Host
	}

	for _, entry := range parsed.Items {
		item, err := s.processEntry(ctx, entry, rssDomain)
		if err != nil {
			s.deps.Logger.Warn("Failed to process entry", map[string]interface{}{
				"title": entry.Title,
				"error": err.Error(),
			})
			result.AddError(fmt.Sprintf("entry processing failed: %v", err))
			continue
		}
		if item != nil {
			result.Items = append(result.Items, *item)
		}
	}

	s.deps.Logger.Info("Feed processed", map[string]interface{}{
		"url":   feedURL,
		"items": result.SuccessfulItems(),
		"total": result.TotalItems,
	})

	return result
}

// fetchFeed retrieves the raw feed bytes.
func (s *Service) fetchFeed(ctx context.Context, feedURL string) ([]byte, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode())
	}

	return io.ReadAll(resp.Body())
}

// processEntry turns one feed entry into a FeedItem. An entry without a
// link is skipped (nil item, nil error). Anything that escapes a processing
// step is reported as an error, never propagated as a panic.
func (s *Service) processEntry(ctx context.Context, entry *gofeed.Item, rssDomain string) (item *domain.FeedItem, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			item = nil
			err = fmt.Errorf("entry panicked: %v", rec)
		}
	}()

	if entry.Link == "" {
		s.deps.Logger.Warn("Entry has no link, skipping", map[string]interface{}{
			"title": entry.Title,
		})
		return nil, nil
	}

	summary := extractEntryContent(entry)

	contentHTML := s.fetchEntryContent(ctx, entry.Link)

	if summary == "" && contentHTML != "" {
		summary = summarizeFromPage(contentHTML, entry.Link)
	}

	processed := s.pipeline.ProcessContentLinks(ctx, contentHTML, rssDomain)

	s.deps.Logger.Debug("Processed entry", map[string]interface{}{
		"title": entry.Title,
		"links": len(processed),
	})

	feedItem := domain.NewFeedItem(entry.Title, entry.Link, entry.PublishedParsed, summary, processed)
	return &feedItem, nil
}
