package server

import (
	"time"

	"github.com/Fritz-nvm/Telex-AI-agent/a2a"
	"github.com/Fritz-nvm/Telex-AI-agent/cmd/common"
)

// Config holds the configuration for the A2A server.
type Config struct {
	ListenAddress  string                // Address to listen on (e.g., ":8080")
	RPCPath        string                // Path of the JSON-RPC endpoint (e.g., "/a2a")
	AgentCardPath  string                // Path to serve the agent card
	HealthPath     string                // Path of the health endpoint
	AgentCard      *a2a.AgentCard        // The agent card describing this agent
	Store          TaskStore             // Task registry; defaults to in-memory
	Resolver       TextResolver          // The resolution pipeline (required)
	Commands       CommandHandler        // Optional chat command handler
	Logger         *common.Logger        // Logger; defaults to stdout at info
	ResolveTimeout time.Duration         // Overall pipeline deadline per task
	PushTimeout    time.Duration         // Webhook delivery timeout
}

// Option is a function that modifies the server configuration.
type Option func(*Config)

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ListenAddress: ":8080",
		RPCPath:       "/a2a",
		AgentCardPath: DefaultAgentCardPath,
		HealthPath:    "/healthz",
	}
}

// WithListenAddress sets the listen address for the server.
func WithListenAddress(addr string) Option {
	return func(c *Config) {
		c.ListenAddress = addr
	}
}

// WithRPCPath sets the path of the JSON-RPC endpoint.
func WithRPCPath(path string) Option {
	return func(c *Config) {
		c.RPCPath = path
	}
}

// WithAgentCard sets the agent card served for discovery.
func WithAgentCard(card *a2a.AgentCard) Option {
	return func(c *Config) {
		c.AgentCard = card
	}
}

// WithAgentCardPath sets the path the agent card is served at.
func WithAgentCardPath(path string) Option {
	return func(c *Config) {
		c.AgentCardPath = path
	}
}

// WithHealthPath sets the path of the health endpoint.
func WithHealthPath(path string) Option {
	return func(c *Config) {
		c.HealthPath = path
	}
}

// WithStore sets a custom TaskStore implementation.
func WithStore(store TaskStore) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithResolver sets the resolution pipeline. Required.
func WithResolver(resolver TextResolver) Option {
	return func(c *Config) {
		c.Resolver = resolver
	}
}

// WithCommandHandler sets the chat command handler.
func WithCommandHandler(commands CommandHandler) Option {
	return func(c *Config) {
		c.Commands = commands
	}
}

// WithLogger sets the logger.
func WithLogger(logger *common.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithResolveTimeout sets the overall per-task resolution deadline.
func WithResolveTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.ResolveTimeout = timeout
	}
}

// WithPushTimeout sets the webhook delivery timeout.
func WithPushTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.PushTimeout = timeout
	}
}
