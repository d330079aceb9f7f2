// Package config holds the typed configuration of the country facts agent.
// Values come from the environment (with optional .env support for local
// development); a YAML or JSON config file can override them.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// LLMConfig configures the fact-generation language model.
type LLMConfig struct {
	Provider  string `env:"PROVIDER" envDefault:"groq" json:"provider" yaml:"provider" validate:"required"`
	Model     string `env:"MODEL" envDefault:"llama-3.1-8b-instant" json:"model" yaml:"model" validate:"required"`
	APIKey    string `env:"API_KEY" json:"apiKey" yaml:"apiKey"`
	MaxTokens int    `env:"MAX_TOKENS" envDefault:"200" json:"maxTokens" yaml:"maxTokens" validate:"gt=0"`
}

// SchedulerConfig configures the daily-fact subscription scheduler.
type SchedulerConfig struct {
	Enabled           bool   `env:"ENABLED" envDefault:"true" json:"enabled" yaml:"enabled"`
	SubscriptionsPath string `env:"SUBSCRIPTIONS_PATH" envDefault:"data/subscriptions.json" json:"subscriptionsPath" yaml:"subscriptionsPath" validate:"required"`
}

// Config is the full agent configuration.
type Config struct {
	ListenAddress     string          `env:"LISTEN_ADDRESS" envDefault:":8080" json:"listenAddress" yaml:"listenAddress" validate:"required"`
	RPCPath           string          `env:"RPC_PATH" envDefault:"/a2a" json:"rpcPath" yaml:"rpcPath" validate:"required,startswith=/"`
	LogLevel          string          `env:"LOG_LEVEL" envDefault:"info" json:"logLevel" yaml:"logLevel"`
	BaseURL           string          `env:"BASE_URL" envDefault:"http://localhost:8080" json:"baseUrl" yaml:"baseUrl" validate:"required,url"`
	CountryAPIBaseURL string          `env:"RESTCOUNTRIES_URL" envDefault:"https://restcountries.com/v3.1" json:"countryApiBaseUrl" yaml:"countryApiBaseUrl" validate:"required,url"`
	ResolveTimeout    time.Duration   `env:"RESOLVE_TIMEOUT" envDefault:"25s" json:"resolveTimeout" yaml:"resolveTimeout" validate:"gt=0"`
	PushTimeout       time.Duration   `env:"PUSH_TIMEOUT" envDefault:"10s" json:"pushTimeout" yaml:"pushTimeout" validate:"gt=0"`
	CountryTimeout    time.Duration   `env:"COUNTRY_TIMEOUT" envDefault:"15s" json:"countryTimeout" yaml:"countryTimeout" validate:"gt=0"`
	LLM               LLMConfig       `envPrefix:"LLM_" json:"llm" yaml:"llm"`
	Scheduler         SchedulerConfig `envPrefix:"SCHEDULER_" json:"scheduler" yaml:"scheduler"`
}

// Load builds the configuration: .env (when present), then environment
// variables, then the optional config file which overrides both. The result
// is validated before it is returned.
func Load(path string) (*Config, error) {
	// .env is a local development convenience; a missing file is fine.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
