// ABOUTME: Pure URL transforms: affiliate parameter stripping, tag injection, network classification
// ABOUTME: All functions are synchronous and return their input unchanged on malformed URLs

package links

import (
	"net/url"
	"strings"

	"rss-deals-scraper/core/domain"
)

// TagEntry binds a domain substring to the affiliate tag configured for it.
type TagEntry struct {
	Domain string
	Tag    string
}

// TagTable is the ordered affiliate tag table. Order is significant:
// InjectAffiliateTag uses the first entry whose domain matches the host.
type TagTable []TagEntry

// affiliateParams is the denylist of tracking parameters removed before
// a fresh tag is injected.
var affiliateParams = map[string]struct{}{
	"tag":          {},
	"AssociateTag": {},
	"linkCode":     {},
	"linkId":       {},
	"creativeASIN": {},
	"affid":        {},
	"ref":          {},
	"utm_source":   {},
	"utm_medium":   {},
	"utm_campaign": {},
	"aff":          {},
}

// StripAffiliateParams removes known affiliate tracking parameters from the
// URL's query string, preserving multi-valued parameters. Blank-valued
// parameters are dropped. Malformed input is returned unchanged.
func StripAffiliateParams(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return rawURL
	}

	cleaned := url.Values{}
	for key, vals := range values {
		if _, denied := affiliateParams[key]; denied {
			continue
		}
		for _, v := range vals {
			if v != "" {
				cleaned.Add(key, v)
			}
		}
	}

	u.RawQuery = cleaned.Encode()
	return u.String()
}

// InjectAffiliateTag adds the configured affiliate tag for the URL's host.
// The first table entry whose domain is a substring of the lower-cased host
// wins. Amazon hosts use the "tag" parameter, everything else "aff"; any
// existing value for that parameter is overwritten. URLs with no matching
// domain, and malformed URLs, are returned unchanged.
func InjectAffiliateTag(rawURL string, table TagTable) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	host := strings.ToLower(u.Host)

	tag := ""
	matched := false
	for _, entry := range table {
		if entry.Domain != "" && strings.Contains(host, entry.Domain) {
			tag = entry.Tag
			matched = true
			break
		}
	}
	if !matched {
		return rawURL
	}

	param := "aff"
	if strings.Contains(host, "amazon") {
		param = "tag"
	}

	values := u.Query()
	values.Set(param, tag)
	u.RawQuery = values.Encode()
	return u.String()
}

// networkDomains maps host substrings to affiliate networks, in precedence
// order. The first network with a matching domain wins.
var networkDomains = []struct {
	network domain.Network
	hosts   []string
}{
	{domain.NetworkAmazon, []string{"amazon.com", "amazon.ca", "amazon.co.uk", "amzn.to"}},
	{domain.NetworkClickbank, []string{"clickbank.net", "cblinks.com"}},
	{domain.NetworkShareasale, []string{"shareasale.com"}},
	{domain.NetworkCommissionJunct, []string{"cj.com", "tkqlhce.com", "jdoqocy.com"}},
	{domain.NetworkRakuten, []string{"rakuten.com", "linksynergy.com"}},
}

// ClassifyNetwork detects which affiliate network a URL belongs to by
// host-substring match. Malformed or unrecognized URLs classify as unknown.
func ClassifyNetwork(rawURL string) domain.Network {
	u, err := url.Parse(rawURL)
	if err != nil {
		return domain.NetworkUnknown
	}

	host := strings.ToLower(u.Host)
	for _, candidate := range networkDomains {
		for _, h := range candidate.hosts {
			if strings.Contains(host, h) {
				return candidate.network
			}
		}
	}

	return domain.NetworkUnknown
}
