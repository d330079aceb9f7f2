package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Fritz-nvm/Telex-AI-agent/cmd/common"
	"github.com/Fritz-nvm/Telex-AI-agent/country"
	gollmadapter "github.com/Fritz-nvm/Telex-AI-agent/llm/gollm"
	"github.com/Fritz-nvm/Telex-AI-agent/pkg/config"
	"github.com/Fritz-nvm/Telex-AI-agent/scheduler"
	"github.com/Fritz-nvm/Telex-AI-agent/server"
)

var (
	configFile    = flag.String("config", "", "Path to configuration file (JSON or YAML)")
	listenAddress = flag.String("listen", "", "Address to listen on (overrides configuration)")
	logLevel      = flag.String("log-level", "", "Log level (debug, info, warn, error, fatal)")
)

func main() {
	// Parse command line flags
	flag.Parse()

	// Load configuration: environment first, config file on top
	cfg, err := config.Load(*configFile)
	if err != nil {
		common.DefaultLogger().Fatal("Failed to load configuration: %v", err)
	}
	if *listenAddress != "" {
		cfg.ListenAddress = *listenAddress
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// Create logger
	logger := common.NewLogger(os.Stdout, cfg.LogLevel)
	logger.Info("Starting country facts agent")

	// Build the resolution pipeline: REST Countries lookup + LLM fact
	generator, err := gollmadapter.NewAdapter(
		gollmadapter.WithProvider(cfg.LLM.Provider),
		gollmadapter.WithModel(cfg.LLM.Model),
		gollmadapter.WithAPIKey(cfg.LLM.APIKey),
		gollmadapter.WithMaxTokens(cfg.LLM.MaxTokens),
	)
	if err != nil {
		logger.Fatal("Failed to create LLM adapter: %v", err)
	}

	countries := country.NewClient(cfg.CountryTimeout, country.WithBaseURL(cfg.CountryAPIBaseURL))
	resolver := country.NewResolver(countries, generator)

	// Create server options
	opts := []server.Option{
		server.WithListenAddress(cfg.ListenAddress),
		server.WithRPCPath(cfg.RPCPath),
		server.WithAgentCard(server.DefaultAgentCard(cfg.BaseURL)),
		server.WithResolver(resolver),
		server.WithLogger(logger),
		server.WithResolveTimeout(cfg.ResolveTimeout),
		server.WithPushTimeout(cfg.PushTimeout),
	}

	// Daily fact subscriptions ride on the same webhook notifier
	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())
	defer cancelScheduler()
	if cfg.Scheduler.Enabled {
		store := scheduler.NewStore(cfg.Scheduler.SubscriptionsPath)
		svc := scheduler.New(store, resolver, server.NewPushNotifier(cfg.PushTimeout), logger)
		opts = append(opts, server.WithCommandHandler(svc))
		go svc.Start(schedulerCtx)
	}

	// Create server
	srv, err := server.NewServer(opts...)
	if err != nil {
		logger.Fatal("Failed to create server: %v", err)
	}

	// Start server in a goroutine
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")
	cancelScheduler()

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Doesn't block if no connections, but will otherwise wait until the timeout deadline
	if err := srv.Stop(ctx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited properly")
}
