// ABOUTME: JSON file persistence for scraping results
// ABOUTME: Flattens all scraped items into a single array for downstream consumers

package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"rss-deals-scraper/core/domain"
)

// Writer persists scraped items to a JSON file.
type Writer struct {
	path string
}

// NewWriter creates a writer targeting the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Save writes every item from every result into one JSON array, creating
// parent directories as needed. The file is replaced atomically via a
// temporary sibling.
func (w *Writer) Save(results []domain.ScrapingResult) error {
	items := make([]domain.FeedItem, 0)
	for _, result := range results {
		items = append(items, result.Items...)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	dir := filepath.Dir(w.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if err := os.Rename(tmp, w.path); err != nil {
		return fmt.Errorf("failed to replace output file: %w", err)
	}

	return nil
}
