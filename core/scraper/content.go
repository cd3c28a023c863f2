// ABOUTME: Entry content extraction: field fallback chain, page fetching, JS-rendering decision
// ABOUTME: Fetch failures yield empty content, never an error to the caller

package scraper

import (
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"
)

const (
	// contentFetchTimeout is the hard per-page deadline.
	contentFetchTimeout = 15 * time.Second

	// pageCacheTTL is how long fetched entry pages stay cached.
	pageCacheTTL = 1 * time.Hour

	// minStaticContentLen is the body length below which a page is
	// suspected to be a script-rendered shell.
	minStaticContentLen = 500
)

// spaMarkers are HTML fragments that indicate the page needs JavaScript
// execution to render real content. Matched case-insensitively.
var spaMarkers = []string{
	"data-reactroot",
	"data-react-",
	"ng-app",
	"vue-app",
	`<div id="root">`,
	`<div id="app">`,
	"loading...",
	"please enable javascript",
}

// extractEntryContent picks the entry's content with a fallback chain:
// full content first, then the summary/description, first non-empty wins.
func extractEntryContent(entry *gofeed.Item) string {
	if strings.TrimSpace(entry.Content) != "" {
		return entry.Content
	}
	if strings.TrimSpace(entry.Description) != "" {
		return entry.Description
	}
	return ""
}

// fetchEntryContent fetches the entry's linked page, consulting the
// JS-rendering collaborator when the static body looks insufficient.
// Failures are soft: the result may be empty, never an error.
func (s *Service) fetchEntryContent(ctx context.Context, pageURL string) string {
	cacheKey := "page:" + pageURL
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && len(data) > 0 {
			return string(data)
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, contentFetchTimeout)
	defer cancel()

	content := s.fetchStatic(fetchCtx, pageURL)

	if s.deps.Renderer != nil && needsJSRendering(content) {
		s.deps.Logger.Debug("Attempting JavaScript rendering", map[string]interface{}{
			"url": pageURL,
		})
		rendered, err := s.deps.Renderer.Render(ctx, pageURL)
		switch {
		case err != nil:
			// Rendering failed, the static content stands
			s.deps.Logger.Debug("JavaScript rendering failed", map[string]interface{}{
				"url":   pageURL,
				"error": err.Error(),
			})
		case rendered != "":
			content = rendered
		}
	}

	if s.deps.Cache != nil && content != "" {
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(content), pageCacheTTL)
	}

	return content
}

// fetchStatic performs the plain HTTP fetch. Only HTML bodies are used.
func (s *Service) fetchStatic(ctx context.Context, pageURL string) string {
	resp, err := s.deps.HTTPClient.Get(ctx, pageURL)
	if err != nil {
		s.deps.Logger.Debug("Request failed for entry page", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return ""
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return ""
	}

	if !strings.Contains(strings.ToLower(resp.Header("Content-Type")), "html") {
		return ""
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return ""
	}
	return string(body)
}

// needsJSRendering reports whether static content looks like a
// script-rendered shell: suspiciously short, or carrying a SPA marker.
func needsJSRendering(content string) bool {
	if len(strings.TrimSpace(content)) < minStaticContentLen {
		return true
	}

	lower := strings.ToLower(content)
	for _, marker := range spaMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// summarizeFromPage derives a summary from the fetched page when the feed
// entry itself carried none. Extraction failures yield an empty summary.
func summarizeFromPage(contentHTML, pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}

	article, err := readability.FromReader(strings.NewReader(contentHTML), u)
	if err != nil {
		return ""
	}

	if article.Excerpt != "" {
		return article.Excerpt
	}
	// NewFeedItem truncates, so the full text is safe to hand over
	return article.TextContent
}
