package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddress)
	assert.Equal(t, "/a2a", cfg.RPCPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://restcountries.com/v3.1", cfg.CountryAPIBaseURL)
	assert.Equal(t, 25*time.Second, cfg.ResolveTimeout)
	assert.Equal(t, 10*time.Second, cfg.PushTimeout)
	assert.Equal(t, 15*time.Second, cfg.CountryTimeout)
	assert.Equal(t, "groq", cfg.LLM.Provider)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLM.Model)
	assert.Equal(t, 200, cfg.LLM.MaxTokens)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "data/subscriptions.json", cfg.Scheduler.SubscriptionsPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LISTEN_ADDRESS", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RESOLVE_TIMEOUT", "40s")
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("LLM_MODEL", "llama3")
	t.Setenv("SCHEDULER_ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddress)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 40*time.Second, cfg.ResolveTimeout)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.False(t, cfg.Scheduler.Enabled)
}

func TestLoadFileOverridesEnvironment(t *testing.T) {
	t.Setenv("LISTEN_ADDRESS", ":9090")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listenAddress: \":7070\"\nlogLevel: warn\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.ListenAddress)
	assert.Equal(t, "warn", cfg.LogLevel)
	// Values absent from the file keep their env/default values.
	assert.Equal(t, "/a2a", cfg.RPCPath)
}

func TestLoadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rpcPath": "/rpc"}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/rpc", cfg.RPCPath)
}

func TestLoadRejectsUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("RPC_PATH", "no-leading-slash")

	_, err := Load("")
	assert.Error(t, err)
}
