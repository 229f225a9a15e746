// Package api provides the HTTP client that fetches the display message.
package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-logr/logr"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/diogo/headline/internal/models"
)

// MessageFetcher fetches the message shown by the view
type MessageFetcher interface {
	FetchMessage(ctx context.Context) (models.Message, error)
}

// MessageClient fetches the message from a fixed endpoint
type MessageClient struct {
	httpClient tls_client.HttpClient
	endpoint   string
	log        logr.Logger
}

// ClientOption is a function that configures the client
type ClientOption func(*MessageClient)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(client tls_client.HttpClient) ClientOption {
	return func(c *MessageClient) {
		c.httpClient = client
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(log logr.Logger) ClientOption {
	return func(c *MessageClient) {
		c.log = log
	}
}

// NewClient creates a new MessageClient for endpoint
func NewClient(endpoint string, opts ...ClientOption) (*MessageClient, error) {
	if err := ValidateEndpoint(endpoint); err != nil {
		return nil, err
	}

	client := &MessageClient{
		endpoint: endpoint,
		log:      logr.Discard(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		// Zero timeout: only the caller's context ends a request early.
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(0),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Endpoint returns the URL the client requests
func (c *MessageClient) Endpoint() string {
	return c.endpoint
}

// GetHTTPClient returns the underlying HTTP client
func (c *MessageClient) GetHTTPClient() tls_client.HttpClient {
	return c.httpClient
}

// ValidateEndpoint checks that endpoint is an absolute http(s) URL
func ValidateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", endpoint)
	}
	return nil
}
