// Package transport provides the net/http implementation of ports.HTTPClient.
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"

	"github.com/pamnotify-dev/pamnotify/domain/ports"
)

// maxResponseBytes caps how much of a response body is read back.
// Webhook responses are small; anything larger is truncated.
const maxResponseBytes = 1 << 20

// config holds the configuration for a Client.
// This struct is unexported to enforce the functional options pattern.
type config struct {
	tlsConfig    *tls.Config
	timeout      time.Duration
	maxRedirects int
}

func defaultConfig() config {
	return config{
		timeout:      30 * time.Second,
		maxRedirects: 10,
		tlsConfig:    nil, // Use system defaults
	}
}

// Option is a functional option for configuring a Client.
type Option func(*config)

// WithTimeout sets the timeout for HTTP requests.
// A zero or negative duration is ignored (uses default).
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxRedirects sets the maximum number of redirects to follow.
// A negative value is ignored (uses default). Setting to 0 disables
// following redirects.
func WithMaxRedirects(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxRedirects = n
		}
	}
}

// WithTLSConfig sets a custom TLS configuration.
// If nil is passed, the system default TLS configuration is used.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *config) {
		c.tlsConfig = cfg
	}
}

// Client is a ports.HTTPClient backed by net/http.
type Client struct {
	hc *http.Client
}

// New creates a Client with the given options applied over defaults.
func New(opts ...Option) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	hc := &http.Client{
		Timeout: cfg.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= cfg.maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
	if cfg.tlsConfig != nil {
		base := http.DefaultTransport.(*http.Transport).Clone()
		base.TLSClientConfig = cfg.tlsConfig
		hc.Transport = base
	}
	return &Client{hc: hc}
}

// Do implements ports.HTTPClient. The response body is fully read and
// closed on every path so the underlying connection is always released.
func (c *Client) Do(ctx context.Context, req ports.HTTPRequest) (*ports.HTTPResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	return &ports.HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}
