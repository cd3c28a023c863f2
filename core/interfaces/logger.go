package interfaces

// Logger defines the structured logging interface used throughout the
// scraper. Field maps carry context such as the feed URL or link count.
//
//	logger.Warn("Failed to process link", map[string]interface{}{
//		"url":   originalURL,
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general progress messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs recoverable problems that did not stop processing.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}
