package client

import (
	"log/slog"
	"net/http"
	"time"
)

// Option represents option
type Option func(c *Client)

// WithHost sets sidecar host
func WithHost(host string) Option {
	return func(c *Client) {
		c.host = host
	}
}

// WithPort sets sidecar port
func WithPort(port int) Option {
	return func(c *Client) {
		c.port = port
	}
}

// WithBaseURL sets the sidecar base URL, e.g. http://127.0.0.1:3000; it takes precedence over host and port.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the overall request timeout, zero leaves the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets http client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
