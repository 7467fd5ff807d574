package krishi

import (
	"errors"
	"os"
	"testing"
)

func TestNew_DetectEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")
	// Ensure GOOGLE_API_KEY is unset to avoid accidental Google init.
	_ = os.Unsetenv("GOOGLE_API_KEY")

	c := New(Config{DetectEnv: true})
	if c.cfg.GroqAPIKey != "gsk-test" {
		t.Fatalf("expected Groq key to be loaded from env, got %q", c.cfg.GroqAPIKey)
	}
	if c.cfg.GoogleAPIKey != "" {
		t.Fatalf("expected Google key to be empty, got %q", c.cfg.GoogleAPIKey)
	}
}

func TestNew_AppliesDefaults(t *testing.T) {
	c := New(Config{GroqAPIKey: "gsk-test"})
	if c.cfg.Provider != ProviderGroq {
		t.Fatalf("provider = %q, want groq default", c.cfg.Provider)
	}
	if c.cfg.GroqBaseURL != defaultGroqBaseURL {
		t.Fatalf("baseURL = %q", c.cfg.GroqBaseURL)
	}
	if c.cfg.Timeout != defaultTimeout {
		t.Fatalf("timeout = %v", c.cfg.Timeout)
	}
	if c.cfg.Retry != DefaultRetryConfig {
		t.Fatalf("retry = %+v", c.cfg.Retry)
	}
	if c.cfg.Logger == nil {
		t.Fatalf("expected nop logger, got nil")
	}
}

func TestEnsureProvider_MissingKey(t *testing.T) {
	_ = os.Unsetenv("GROQ_API_KEY")

	c := New(Config{})
	_, err := c.ensureProvider()
	if err == nil {
		t.Fatalf("expected ConfigError when credential is absent")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
}

func TestEnsureProvider_ConstructsOnce(t *testing.T) {
	c := New(Config{GroqAPIKey: "gsk-test"})
	first, err := c.ensureProvider()
	if err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	second, err := c.ensureProvider()
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected the already-constructed provider to be reused")
	}
}

func TestModelFor_StaticTable(t *testing.T) {
	c := New(Config{GroqAPIKey: "gsk-test"})
	if got := c.modelFor(taskVision); got != defaultVisionModel {
		t.Fatalf("vision model = %q", got)
	}
	if got := c.modelFor(taskText); got != defaultTextModel {
		t.Fatalf("text model = %q", got)
	}

	override := New(Config{GroqAPIKey: "gsk-test", VisionModel: "custom-vision", TextModel: "custom-text"})
	if got := override.modelFor(taskVision); got != "custom-vision" {
		t.Fatalf("vision override = %q", got)
	}
	if got := override.modelFor(taskText); got != "custom-text" {
		t.Fatalf("text override = %q", got)
	}

	google := New(Config{Provider: ProviderGoogle, GoogleAPIKey: "g-test"})
	if got := google.modelFor(taskVision); got != defaultGoogleVisionModel {
		t.Fatalf("google vision model = %q", got)
	}
}
