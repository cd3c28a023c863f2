package interfaces

import "context"

// Renderer is the optional JavaScript-rendering collaborator, consulted
// only when statically fetched content looks like a script-rendered shell.
// Implementations own browser resources; Close must release them on every
// exit path.
type Renderer interface {
	// Render loads the URL in a headless browser and returns the HTML
	// after script execution. An empty string with a nil error means the
	// renderer produced nothing useful.
	Render(ctx context.Context, url string) (string, error)

	// Close releases rendering resources.
	Close() error
}
