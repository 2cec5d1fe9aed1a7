package generator

import "context"

// Defaults for the post request.
const (
	DefaultModel       = "gpt-4o-mini"
	DefaultMaxTokens   = 300
	DefaultTemperature = 0.8
)

// LLMClient abstracts the model client so it can be swapped or mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings is the base configuration handed to a concrete client.
type LLMSettings struct {
	Model       string
	APIKey      string
	APIKeyEnv   string
	BaseURL     string
	MaxTokens   int
	Temperature float64
}
