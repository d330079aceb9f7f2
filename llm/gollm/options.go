package gollm

// options contains the configuration options for the gollm adapter.
type options struct {
	// Provider is the LLM provider to use (e.g., "groq", "openai", "ollama").
	Provider string

	// Model is the model to use (e.g., "llama-3.1-8b-instant", "gpt-4o").
	Model string

	// APIKey is the API key to use for authentication (not needed for Ollama).
	APIKey string

	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int
}

// Option configures the gollm adapter.
type Option func(*options)

// defaultOptions returns the default options for the gollm adapter.
func defaultOptions() *options {
	return &options{
		Provider:  "groq",
		Model:     "llama-3.1-8b-instant",
		MaxTokens: 200,
	}
}

// WithProvider sets the LLM provider.
func WithProvider(provider string) Option {
	return func(o *options) {
		o.Provider = provider
	}
}

// WithModel sets the LLM model.
func WithModel(model string) Option {
	return func(o *options) {
		o.Model = model
	}
}

// WithAPIKey sets the API key for authentication.
func WithAPIKey(apiKey string) Option {
	return func(o *options) {
		o.APIKey = apiKey
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(maxTokens int) Option {
	return func(o *options) {
		o.MaxTokens = maxTokens
	}
}
