// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Every collaborator the scraping core needs arrives through this struct

package interfaces

// Dependencies holds all external collaborators required by the core
// scraping logic.
type Dependencies struct {
	// Cache provides caching for fetched pages; may be nil
	Cache Cache

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Renderer provides the JS-rendering fallback; nil when disabled
	Renderer Renderer
}
