package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests.
// This abstraction keeps the core free of transport details and makes
// redirect resolution and content fetching mockable in tests.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// Returns a Response or an error if the request fails.
	Get(ctx context.Context, url string) (Response, error)

	// Head performs an HTTP HEAD request with redirect following DISABLED,
	// so 3xx responses are returned as-is with their Location header intact.
	// Used by redirect resolution to walk chains one hop at a time.
	Head(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header, or an empty
	// string if the header is not present. Names are case-insensitive.
	Header(key string) string
}
