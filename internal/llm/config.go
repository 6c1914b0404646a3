package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures one provider.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string // OpenAI-compatible endpoints only
	Retry    RetryConfig
	Timeout  time.Duration // per Generate call, retries included
}

// RetryConfig is exponential backoff with jitter.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// defaultModels are the aliases used when no model is configured.
var defaultModels = map[string]string{
	ProviderAnthropic:  "claude-haiku",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderGemini:     "gemini-flash",
	ProviderOpenRouter: "google/gemini-2.0-flash-exp",
	ProviderMock:       "mock",
}

// discoveryOrder lists providers and the conventional key variable probed
// when PTEPREP_LLM_PROVIDER is unset.
var discoveryOrder = []struct{ provider, keyVar string }{
	{ProviderGemini, "GEMINI_API_KEY"},
	{ProviderOpenAI, "OPENAI_API_KEY"},
	{ProviderAnthropic, "ANTHROPIC_API_KEY"},
	{ProviderOpenRouter, "OPENROUTER_API_KEY"},
}

// DefaultConfig returns a config for provider with default model and retry
// settings and no key.
func DefaultConfig(provider string) Config {
	return Config{
		Provider: provider,
		Model:    defaultModels[provider],
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// envName returns PTEPREP_<PROVIDER>_<SUFFIX>.
func envName(provider, suffix string) string {
	b := []byte("PTEPREP_")
	for _, r := range provider {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		b = append(b, byte(r))
	}
	return string(b) + "_" + suffix
}

// ConfigFromEnv resolves the provider configuration. An explicit
// PTEPREP_LLM_PROVIDER wins; otherwise the first conventional API key found
// selects the provider. ok is false when no model is configured at all.
func ConfigFromEnv() (cfg Config, ok bool) {
	return configFrom(os.Getenv)
}

func configFrom(getenv func(string) string) (Config, bool) {
	provider := getenv("PTEPREP_LLM_PROVIDER")
	var key string
	if provider == "" {
		for _, d := range discoveryOrder {
			if k := getenv(envName(d.provider, "API_KEY")); k != "" {
				provider, key = d.provider, k
				break
			}
			if k := getenv(d.keyVar); k != "" {
				provider, key = d.provider, k
				break
			}
		}
		if provider == "" {
			return Config{}, false
		}
	}

	cfg := DefaultConfig(provider)
	cfg.APIKey = key
	if k := getenv(envName(provider, "API_KEY")); k != "" {
		cfg.APIKey = k
	}
	if m := getenv(envName(provider, "MODEL")); m != "" {
		cfg.Model = m
	}
	if u := getenv(envName(provider, "BASE_URL")); u != "" {
		cfg.BaseURL = u
	}
	return cfg, true
}

// Validate reports a missing key or an unknown provider.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderMock:
		return nil
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter:
		if c.APIKey == "" {
			return fmt.Errorf("%s is required for the %s provider", envName(c.Provider, "API_KEY"), c.Provider)
		}
		return nil
	}
	return fmt.Errorf("unknown LLM provider: %q", c.Provider)
}
