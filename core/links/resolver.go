// ABOUTME: Resolver follows HTTP redirect chains with loop and hop-count guards
// ABOUTME: Resolution is fail-soft: transport errors return the last URL reached

package links

import (
	"context"
	"net/url"
	"time"

	"rss-deals-scraper/core/interfaces"
)

const (
	// DefaultMaxHops bounds how many redirect hops are followed per chain.
	DefaultMaxHops = 5

	// hopTimeout is the hard per-hop deadline for the existence check.
	hopTimeout = 10 * time.Second
)

// Resolver walks redirect chains using lightweight HEAD requests with
// redirect following disabled, one hop at a time.
type Resolver struct {
	client  interfaces.HTTPClient
	logger  interfaces.Logger
	maxHops int
}

// NewResolver creates a resolver. A maxHops of 0 or less uses DefaultMaxHops.
func NewResolver(client interfaces.HTTPClient, logger interfaces.Logger, maxHops int) *Resolver {
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}
	return &Resolver{
		client:  client,
		logger:  logger,
		maxHops: maxHops,
	}
}

// Resolve follows the redirect chain starting at rawURL and returns the
// final URL reached. It never returns an error: loops, hop exhaustion and
// transport failures all stop resolution and yield the current URL.
// Loop detection compares exact URL strings seen within this chain only.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) string {
	current := rawURL
	seen := make(map[string]struct{})

	for hop := 0; hop < r.maxHops; hop++ {
		if _, visited := seen[current]; visited {
			// A loop terminates resolution but is not an error
			if r.logger != nil {
				r.logger.Warn("Redirect loop detected", map[string]interface{}{
					"url": rawURL,
				})
			}
			break
		}
		seen[current] = struct{}{}

		hopCtx, cancel := context.WithTimeout(ctx, hopTimeout)
		resp, err := r.client.Head(hopCtx, current)
		cancel()
		if err != nil {
			// Fail soft: keep the URL held before the failed hop
			if r.logger != nil {
				r.logger.Debug("Request error resolving redirects", map[string]interface{}{
					"url":   current,
					"error": err.Error(),
				})
			}
			break
		}

		status := resp.StatusCode()
		location := resp.Header("Location")
		resp.Body().Close()

		if !isRedirect(status) || location == "" {
			break
		}

		next, err := resolveLocation(current, location)
		if err != nil {
			break
		}
		current = next
	}

	return current
}

func isRedirect(status int) bool {
	switch status {
	case 301, 302, 303, 307, 308:
		return true
	}
	return false
}

// resolveLocation resolves a possibly relative Location header against the
// URL the redirect came from.
func resolveLocation(current, location string) (string, error) {
	base, err := url.Parse(current)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
