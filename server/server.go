// Package server implements the A2A protocol engine of the country facts
// agent: the JSON-RPC codec, the task store, the dispatcher that drives the
// task state machine, and the webhook push notifier.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Fritz-nvm/Telex-AI-agent/cmd/common"
)

// Server hosts the A2A endpoint, the agent card and the health endpoint.
type Server struct {
	config     Config
	httpServer *http.Server
	store      TaskStore
	dispatcher *Dispatcher
	logger     *common.Logger
}

// NewServer creates a new A2A Server instance.
func NewServer(opts ...Option) (*Server, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Resolver == nil {
		return nil, fmt.Errorf("a resolver is required")
	}
	if cfg.AgentCard == nil {
		cfg.AgentCard = DefaultAgentCard("http://localhost" + cfg.ListenAddress)
	}
	if cfg.Store == nil {
		cfg.Store = NewInMemoryTaskStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = common.DefaultLogger()
	}

	notifier := NewPushNotifier(cfg.PushTimeout)
	dispatcher := NewDispatcher(cfg.Store, cfg.Resolver, notifier, cfg.Logger, DispatcherConfig{
		ResolveTimeout: cfg.ResolveTimeout,
		Commands:       cfg.Commands,
	})

	s := &Server{
		config:     cfg,
		store:      cfg.Store,
		dispatcher: dispatcher,
		logger:     cfg.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post(cfg.RPCPath, s.handleRPC)
	r.Get(cfg.AgentCardPath, AgentCardHandler(cfg.AgentCard))
	r.Get(cfg.HealthPath, HealthHandler(cfg.AgentCard))

	s.httpServer = &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Handler exposes the server's HTTP handler. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Dispatcher exposes the server's dispatcher. Used by the scheduler wiring.
func (s *Server) Dispatcher() *Dispatcher {
	return s.dispatcher
}

// Start runs the A2A server. It blocks until the server is stopped.
func (s *Server) Start() error {
	s.logger.Info("Starting A2A server for agent %q at %s%s", s.config.AgentCard.Name, s.config.ListenAddress, s.config.RPCPath)
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping A2A server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to gracefully shutdown HTTP server: %w", err)
	}
	s.logger.Info("A2A server stopped.")
	return nil
}
