// Package krishi turns loosely-specified farmer requests (a crop photo, or a
// crop and field area) into deterministic, strongly-typed, bilingual
// agricultural recommendations, using an external LLM completion service as
// the untrusted producer behind them.
package krishi

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Client is the recommendation orchestration core. It is safe for concurrent
// use; the completion backend is constructed once, lazily, on first use.
type Client struct {
	cfg Config

	mu       sync.Mutex
	provider providerClient // lazily init
}

// New creates a Client with the given config. Credentials are not validated
// here; a missing key surfaces as a ConfigError on the first operation.
func New(cfg Config) *Client {
	if cfg.DetectEnv {
		_ = godotenv.Load()
		if cfg.GroqAPIKey == "" {
			cfg.GroqAPIKey = os.Getenv("GROQ_API_KEY")
		}
		if cfg.GoogleAPIKey == "" {
			cfg.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
		}
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderGroq
	}
	if cfg.GroqBaseURL == "" {
		cfg.GroqBaseURL = defaultGroqBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Retry == (RetryConfig{}) {
		cfg.Retry = DefaultRetryConfig
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Client{cfg: cfg}
}

// ensureProvider constructs the backend exactly once; concurrent first
// callers serialize on the mutex and observe the same instance.
func (c *Client) ensureProvider() (providerClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.provider != nil {
		return c.provider, nil
	}

	var (
		pc  providerClient
		err error
	)
	switch c.cfg.Provider {
	case ProviderGroq:
		pc, err = newGroqProvider(c.cfg)
	case ProviderGoogle:
		pc, err = newGoogleProvider(c.cfg)
	default:
		err = &ConfigError{Reason: fmt.Sprintf("unknown provider %q", c.cfg.Provider)}
	}
	if err != nil {
		return nil, err
	}
	c.provider = pc
	return pc, nil
}

// modelFor maps a task kind to a model identifier. The mapping is a static
// table, not a runtime decision.
func (c *Client) modelFor(kind taskKind) string {
	if kind == taskVision {
		if c.cfg.VisionModel != "" {
			return c.cfg.VisionModel
		}
		if c.cfg.Provider == ProviderGoogle {
			return defaultGoogleVisionModel
		}
		return defaultVisionModel
	}
	if c.cfg.TextModel != "" {
		return c.cfg.TextModel
	}
	if c.cfg.Provider == ProviderGoogle {
		return defaultGoogleTextModel
	}
	return defaultTextModel
}
