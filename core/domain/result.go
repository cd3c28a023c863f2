// ABOUTME: ScrapingResult and ScrapingStats models for per-feed outcomes and run totals
// ABOUTME: SuccessfulItems is always derived from the items slice, never set directly

package domain

import "time"

// ScrapingResult is the outcome of scraping one feed. Errors encountered
// along the way accumulate as messages instead of aborting the feed.
type ScrapingResult struct {
	// FeedURL is the URL of the scraped feed
	FeedURL string `json:"feed_url"`

	// ScrapedAt is when the scrape started
	ScrapedAt time.Time `json:"scraped_at"`

	// Items holds the successfully processed entries
	Items []FeedItem `json:"items"`

	// TotalItems is the number of entries found in the raw feed
	TotalItems int `json:"total_items"`

	// Errors holds accumulated error messages in the order they occurred
	Errors []string `json:"errors"`
}

// NewScrapingResult creates an empty result for a feed.
func NewScrapingResult(feedURL string) ScrapingResult {
	return ScrapingResult{
		FeedURL:   feedURL,
		ScrapedAt: time.Now().UTC(),
		Items:     []FeedItem{},
		Errors:    []string{},
	}
}

// SuccessfulItems is derived from the items slice; any externally supplied
// count is ignored by construction.
func (r *ScrapingResult) SuccessfulItems() int {
	return len(r.Items)
}

// SuccessRate returns the fraction of feed entries that produced an item,
// as a percentage.
func (r *ScrapingResult) SuccessRate() float64 {
	if r.TotalItems == 0 {
		return 0.0
	}
	return float64(r.SuccessfulItems()) / float64(r.TotalItems) * 100.0
}

// TotalAffiliateLinks counts affiliate links across all items.
func (r *ScrapingResult) TotalAffiliateLinks() int {
	total := 0
	for i := range r.Items {
		total += len(r.Items[i].AffiliateLinks())
	}
	return total
}

// AddError appends an error message to the result.
func (r *ScrapingResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// ScrapingStats aggregates totals across a whole scraping run. It is only
// written at the join point after all feed tasks complete.
type ScrapingStats struct {
	TotalFeedsProcessed int
	TotalItemsScraped   int
	TotalLinksProcessed int
	TotalAffiliateLinks int
	ScrapingStarted     time.Time
	ScrapingCompleted   time.Time
}

// Add merges one feed's result into the stats.
func (s *ScrapingStats) Add(result ScrapingResult) {
	s.TotalFeedsProcessed++
	s.TotalItemsScraped += result.SuccessfulItems()
	for i := range result.Items {
		s.TotalLinksProcessed += result.Items[i].LinkCount()
		s.TotalAffiliateLinks += len(result.Items[i].AffiliateLinks())
	}
}

// DurationSeconds returns how long the run took, or 0 if not completed.
func (s *ScrapingStats) DurationSeconds() float64 {
	if s.ScrapingCompleted.IsZero() {
		return 0
	}
	return s.ScrapingCompleted.Sub(s.ScrapingStarted).Seconds()
}

// AffiliateConversionRate returns the percentage of processed links that
// were converted to affiliate links.
func (s *ScrapingStats) AffiliateConversionRate() float64 {
	if s.TotalLinksProcessed == 0 {
		return 0.0
	}
	return float64(s.TotalAffiliateLinks) / float64(s.TotalLinksProcessed) * 100.0
}
