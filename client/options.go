package client

import (
	"net/http"
	"time"
)

// Config holds the configuration for the A2A client.
type Config struct {
	BaseURL     string            // Base URL of the agent (e.g., "https://agent.example.com")
	RPCPath     string            // Path of the JSON-RPC endpoint
	HTTPClient  *http.Client      // HTTP client to use for requests
	AuthHeaders map[string]string // Headers to include in every request
}

// Option is a function that modifies the client configuration.
type Option func(*Config)

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		RPCPath: "/a2a",
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		AuthHeaders: make(map[string]string),
	}
}

// WithRPCPath sets the path of the agent's JSON-RPC endpoint.
func WithRPCPath(path string) Option {
	return func(c *Config) {
		c.RPCPath = path
	}
}

// WithHTTPClient sets the HTTP client for the client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = httpClient
	}
}

// WithTimeout sets the timeout for requests.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if c.HTTPClient != nil {
			c.HTTPClient.Timeout = timeout
		}
	}
}

// WithAuthHeader adds a header to be included in all requests.
func WithAuthHeader(name, value string) Option {
	return func(c *Config) {
		c.AuthHeaders[name] = value
	}
}

// WithBearerToken sets the Authorization header with a Bearer token.
func WithBearerToken(token string) Option {
	return func(c *Config) {
		c.AuthHeaders["Authorization"] = "Bearer " + token
	}
}
