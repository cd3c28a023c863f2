// ABOUTME: ProcessedLink domain model represents an outbound link after affiliate processing
// ABOUTME: Network is a closed enum; unrecognized values normalize to NetworkUnknown

package domain

// Network identifies the affiliate network a link belongs to.
type Network string

// Known affiliate networks. Anything else normalizes to NetworkUnknown.
const (
	NetworkAmazon          Network = "amazon"
	NetworkClickbank       Network = "clickbank"
	NetworkShareasale      Network = "shareasale"
	NetworkCommissionJunct Network = "commission_junction"
	NetworkRakuten         Network = "rakuten"
	NetworkUnknown         Network = "unknown"
)

// NormalizeNetwork coerces an arbitrary label into the closed Network enum.
// Unrecognized labels map to NetworkUnknown rather than failing.
func NormalizeNetwork(label string) Network {
	switch Network(label) {
	case NetworkAmazon, NetworkClickbank, NetworkShareasale, NetworkCommissionJunct, NetworkRakuten:
		return Network(label)
	default:
		return NetworkUnknown
	}
}

// ProcessedLink is the immutable record produced for each href extracted
// from entry content. Constructed once by the link pipeline, never mutated.
type ProcessedLink struct {
	// Original is the href as found in the content
	Original string `json:"original"`

	// Resolved is the URL after following the redirect chain
	Resolved string `json:"resolved"`

	// Final is the URL after cleaning and affiliate tag injection
	Final string `json:"final"`

	// IsAffiliate is true iff a tag was actually injected (final differs
	// from the cleaned URL), not merely because the domain matched
	IsAffiliate bool `json:"is_affiliate"`

	// Network is the affiliate network detected from the final URL
	Network Network `json:"network"`
}

// NewDegradedLink builds the fallback record used when processing a link
// fails at any step: the original URL is passed through unchanged.
func NewDegradedLink(originalURL string) ProcessedLink {
	return ProcessedLink{
		Original:    originalURL,
		Resolved:    originalURL,
		Final:       originalURL,
		IsAffiliate: false,
		Network:     NetworkUnknown,
	}
}
