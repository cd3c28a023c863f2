// ABOUTME: Pipeline extracts outbound links from entry HTML and processes them concurrently
// ABOUTME: Per-link failures degrade to fallback records and never abort the batch

package links

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"rss-deals-scraper/core/domain"
	"rss-deals-scraper/core/interfaces"
)

// DefaultLinkWorkers bounds concurrent link resolutions within one entry.
const DefaultLinkWorkers = 10

// Pipeline runs each extracted href through the full processing chain:
// resolve redirects, strip old affiliate parameters, inject the configured
// tag, classify the network.
type Pipeline struct {
	deps     interfaces.Dependencies
	resolver *Resolver
	tags     TagTable
	workers  int
}

// NewPipeline creates a link pipeline. A workers value of 0 or less uses
// DefaultLinkWorkers.
func NewPipeline(deps interfaces.Dependencies, tags TagTable, workers int) *Pipeline {
	if workers <= 0 {
		workers = DefaultLinkWorkers
	}
	return &Pipeline{
		deps:     deps,
		resolver: NewResolver(deps.HTTPClient, deps.Logger, DefaultMaxHops),
		tags:     tags,
		workers:  workers,
	}
}

// ProcessContentLinks parses HTML content, extracts anchor hrefs and
// processes each surviving link concurrently. The returned slice preserves
// document order of the originating hrefs, not completion order. A parse
// failure of the whole content yields an empty slice, logged only.
func (p *Pipeline) ProcessContentLinks(ctx context.Context, content, rssDomain string) []domain.ProcessedLink {
	if content == "" {
		return []domain.ProcessedLink{}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		if p.deps.Logger != nil {
			p.deps.Logger.Warn("Failed to parse HTML content", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return []domain.ProcessedLink{}
	}

	hrefs := make([]string, 0)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href != "" && p.shouldProcess(href, rssDomain) {
			hrefs = append(hrefs, href)
		}
	})

	if len(hrefs) == 0 {
		return []domain.ProcessedLink{}
	}

	// Each goroutine writes its own slot, so results stay in document order
	results := make([]domain.ProcessedLink, len(hrefs))
	semaphore := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, href := range hrefs {
		wg.Add(1)
		go func(idx int, originalURL string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[idx] = p.ProcessSingleLink(ctx, originalURL)
		}(i, href)
	}

	wg.Wait()
	return results
}

// ProcessSingleLink runs one URL through the complete chain, strictly
// ordered: resolve, strip, inject, classify. It never fails: any problem at
// any step yields a degraded record carrying the original URL through.
func (p *Pipeline) ProcessSingleLink(ctx context.Context, originalURL string) (link domain.ProcessedLink) {
	defer func() {
		if rec := recover(); rec != nil {
			if p.deps.Logger != nil {
				p.deps.Logger.Warn("Failed to process link", map[string]interface{}{
					"url":   originalURL,
					"panic": rec,
				})
			}
			link = domain.NewDegradedLink(originalURL)
		}
	}()

	if !isProcessableURL(originalURL) {
		return domain.NewDegradedLink(originalURL)
	}

	resolved := p.resolver.Resolve(ctx, originalURL)
	clean := StripAffiliateParams(resolved)
	final := InjectAffiliateTag(clean, p.tags)

	return domain.ProcessedLink{
		Original:    originalURL,
		Resolved:    resolved,
		Final:       final,
		IsAffiliate: final != clean,
		Network:     ClassifyNetwork(final),
	}
}

// shouldProcess filters hrefs: only absolute http(s) URLs whose host does
// not point back at the feed's own domain. An empty rssDomain disables the
// internal-link exclusion.
func (p *Pipeline) shouldProcess(rawURL, rssDomain string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}

	if rssDomain != "" && strings.Contains(u.Host, rssDomain) {
		return false
	}

	return true
}

// isProcessableURL reports whether a URL is absolute http(s).
func isProcessableURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host != "" && (u.Scheme == "http" || u.Scheme == "https")
}
