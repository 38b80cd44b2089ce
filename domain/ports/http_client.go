package ports

import "context"

// HTTPClient defines the interface for outbound HTTP operations.
// Infrastructure adapters implement this so the relay never depends on a
// concrete transport.
type HTTPClient interface {
	// Do executes an HTTP request and returns the response.
	Do(ctx context.Context, req HTTPRequest) (*HTTPResponse, error)
}

// HTTPRequest represents an HTTP request.
type HTTPRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// HTTPResponse represents an HTTP response.
type HTTPResponse struct {
	Headers    map[string][]string
	Body       []byte
	StatusCode int
}
