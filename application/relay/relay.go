// Package relay delivers login notifications to the configured webhook
// endpoint. Delivery is one-shot and transient: nothing is retried, queued
// or persisted, and a failed delivery never blocks the login it describes.
package relay

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/pamnotify-dev/pamnotify/application/conv"
	"github.com/pamnotify-dev/pamnotify/domain/entities"
	"github.com/pamnotify-dev/pamnotify/domain/errors"
	"github.com/pamnotify-dev/pamnotify/domain/ports"
	"github.com/pamnotify-dev/pamnotify/infrastructure/transport"
)

const (
	// DefaultEndpoint receives login notifications unless a deployment
	// overrides it through configuration. Tests inject a local server.
	DefaultEndpoint = "https://discord.com/api/webhooks/0/replace-me"

	// DefaultUserAgent identifies the module to the endpoint.
	DefaultUserAgent = "pamnotify/0.1"

	// DefaultTimeout bounds one delivery. A hung endpoint must not hang a
	// login, so the bound is short and always finite.
	DefaultTimeout = 5 * time.Second
)

// Notifier delivers login events. The zero configuration is usable; options
// override the endpoint, agent string, timeout and transport.
type Notifier struct {
	endpoint  string
	userAgent string
	timeout   time.Duration
	client    ports.HTTPClient
	log       *slog.Logger
}

// Option is a functional option for configuring a Notifier.
type Option func(*Notifier)

// WithEndpoint sets the target webhook URL. An empty URL is ignored.
func WithEndpoint(endpoint string) Option {
	return func(n *Notifier) {
		if endpoint != "" {
			n.endpoint = endpoint
		}
	}
}

// WithUserAgent sets the agent string sent with every delivery.
func WithUserAgent(agent string) Option {
	return func(n *Notifier) {
		if agent != "" {
			n.userAgent = agent
		}
	}
}

// WithTimeout sets the per-delivery timeout. A zero or negative duration is
// ignored (uses default).
func WithTimeout(d time.Duration) Option {
	return func(n *Notifier) {
		if d > 0 {
			n.timeout = d
		}
	}
}

// WithHTTPClient sets the HTTP client to use for deliveries.
// This is useful for injecting mocks during testing. Without it, a fresh
// transport is constructed per delivery so no connection state survives
// between session-open events.
func WithHTTPClient(c ports.HTTPClient) Option {
	return func(n *Notifier) {
		if c != nil {
			n.client = c
		}
	}
}

// WithLogger sets the logger used for delivery diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) {
		if l != nil {
			n.log = l
		}
	}
}

// New creates a Notifier with the given options applied over defaults.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		endpoint:  DefaultEndpoint,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Send delivers one login notification describing message. The session is
// used only as a conversation channel for surfacing endpoint rejections.
//
// Failure mapping: local request construction defects collapse to a system
// error; transport failures and endpoint rejections collapse to Ignore so a
// notification outage never alters the login outcome. When the rejection
// diagnostic itself fails, that failure takes precedence.
func (n *Notifier) Send(ctx context.Context, sess ports.Conversation, message string) error {
	req, err := n.buildRequest(message)
	if err != nil {
		return &errors.RelayError{Err: err, Result: entities.SystemErr}
	}

	client := n.client
	if client == nil {
		client = transport.New(transport.WithTimeout(n.timeout))
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	id := uuid.NewString()
	req.Headers["X-Request-Id"] = id
	n.log.Debug("delivering login notification", "request_id", id, "endpoint", n.endpoint)

	resp, err := client.Do(ctx, req)
	if err != nil {
		n.log.Warn("notification delivery failed", "request_id", id, "error", err)
		return &errors.RelayError{Err: err, Result: entities.Ignore}
	}

	if !Accepted(resp.StatusCode) {
		n.log.Warn("notification rejected", "request_id", id, "status", resp.StatusCode)
		diag := fmt.Sprintf("can't send login notification: got status code %d", resp.StatusCode)
		if convErr := conv.Info(sess, diag); convErr != nil {
			return convErr
		}
		return &errors.RelayError{StatusCode: resp.StatusCode, Result: entities.Ignore}
	}
	return nil
}

// buildRequest assembles the multipart POST carrying the message as the
// single form field "content".
func (n *Notifier) buildRequest(message string) (ports.HTTPRequest, error) {
	if _, err := url.ParseRequestURI(n.endpoint); err != nil {
		return ports.HTTPRequest{}, fmt.Errorf("invalid endpoint: %w", err)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	field, err := w.CreateFormField("content")
	if err != nil {
		return ports.HTTPRequest{}, fmt.Errorf("build form: %w", err)
	}
	if _, err := field.Write([]byte(message)); err != nil {
		return ports.HTTPRequest{}, fmt.Errorf("write form field: %w", err)
	}
	if err := w.Close(); err != nil {
		return ports.HTTPRequest{}, fmt.Errorf("finalize form: %w", err)
	}

	return ports.HTTPRequest{
		Method: http.MethodPost,
		URL:    n.endpoint,
		Headers: map[string]string{
			"User-Agent":   n.userAgent,
			"Content-Type": w.FormDataContentType(),
		},
		Body: body.Bytes(),
	}, nil
}
