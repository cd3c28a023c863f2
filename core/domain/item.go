// ABOUTME: FeedItem domain model represents a single scraped entry from an RSS feed
// ABOUTME: Title and summary are normalized at construction time, never rejected

package domain

import (
	"html"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxTitleLen   = 200
	maxSummaryLen = 500
)

// FeedItem represents an individual entry from a feed together with all
// processed outbound links found in its content.
type FeedItem struct {
	// Title is the normalized entry headline
	Title string `json:"title"`

	// Link is the URL of the entry
	Link string `json:"link"`

	// Published is when the entry was published, if the feed said
	Published *time.Time `json:"published"`

	// Summary is the normalized entry summary or content excerpt
	Summary string `json:"summary"`

	// ProcessedLinks holds the outbound links in document order
	ProcessedLinks []ProcessedLink `json:"processed_links"`
}

// NewFeedItem constructs a FeedItem, normalizing title and summary.
// Construction never fails; malformed text is cleaned, not rejected.
func NewFeedItem(title, link string, published *time.Time, summary string, links []ProcessedLink) FeedItem {
	if links == nil {
		links = []ProcessedLink{}
	}
	return FeedItem{
		Title:          normalizeTitle(title),
		Link:           link,
		Published:      published,
		Summary:        normalizeSummary(summary),
		ProcessedLinks: links,
	}
}

// AffiliateLinks returns only the links that were converted to affiliate links.
func (fi *FeedItem) AffiliateLinks() []ProcessedLink {
	affiliates := make([]ProcessedLink, 0)
	for _, link := range fi.ProcessedLinks {
		if link.IsAffiliate {
			affiliates = append(affiliates, link)
		}
	}
	return affiliates
}

// LinkCount returns the total number of processed links.
func (fi *FeedItem) LinkCount() int {
	return len(fi.ProcessedLinks)
}

// normalizeTitle decodes HTML entities, collapses whitespace and truncates.
// Empty or whitespace-only titles become "Untitled".
func normalizeTitle(title string) string {
	cleaned := collapseText(title)
	if cleaned == "" {
		return "Untitled"
	}
	return truncate(cleaned, maxTitleLen)
}

// normalizeSummary applies the same decode/collapse rules as titles but
// keeps empty summaries empty.
func normalizeSummary(summary string) string {
	return truncate(collapseText(summary), maxSummaryLen)
}

func collapseText(s string) string {
	decoded := html.UnescapeString(strings.TrimSpace(s))
	return strings.Join(strings.Fields(decoded), " ")
}

// truncate limits s to max characters, not bytes, so multi-byte text is
// never cut mid-rune.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
