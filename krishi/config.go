package krishi

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"

	// Groq model table: vision tasks need the vision-preview model, text
	// tasks run on the faster versatile model.
	defaultVisionModel = "llama-3.2-11b-vision-preview"
	defaultTextModel   = "llama-3.3-70b-versatile"

	defaultGoogleVisionModel = "gemini-2.0-flash"
	defaultGoogleTextModel   = "gemini-2.0-flash"

	defaultTimeout = 60 * time.Second
)

// Config holds client-wide configuration: credentials, model table and HTTP
// knobs. Zero values get sensible defaults in New.
type Config struct {
	// Provider selects the completion backend. Defaults to ProviderGroq.
	Provider Provider

	// Groq (OpenAI-compatible) configuration.
	GroqAPIKey  string // falls back to env GROQ_API_KEY when DetectEnv is true
	GroqBaseURL string // defaults to the public Groq endpoint

	// Google/GenAI configuration.
	GoogleAPIKey string // falls back to env GOOGLE_API_KEY when DetectEnv is true

	// Model overrides. Empty fields use the per-provider defaults above.
	VisionModel string
	TextModel   string

	// Shared client options.
	HTTPClient *http.Client
	Timeout    time.Duration // per completion call; 0 means defaultTimeout
	Retry      RetryConfig   // zero value means DefaultRetryConfig

	// Logger receives completion telemetry and, on parse failures, the raw
	// model payload. Nil disables logging.
	Logger *zap.Logger

	// DetectEnv loads .env (if present) and pulls missing API keys from
	// environment variables.
	DetectEnv bool
}
