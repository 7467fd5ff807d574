package krishi

import (
	"errors"
	"testing"
	"time"
)

func TestIsTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"network failure", &TransportError{Err: errors.New("dial tcp: refused")}, true},
		{"rate limited", &TransportError{StatusCode: 429, Err: errors.New("rate limit")}, true},
		{"server error", &TransportError{StatusCode: 503, Err: errors.New("unavailable")}, true},
		{"bad request", &TransportError{StatusCode: 400, Err: errors.New("bad request")}, false},
		{"auth failure", &TransportError{StatusCode: 401, Err: errors.New("invalid key")}, false},
		{"not transport", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isTransient(tc.err); got != tc.want {
				t.Fatalf("isTransient = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBackoffFor_GrowsAndCaps(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:       5,
		InitialBackoff:    100 * time.Millisecond,
		MaxBackoff:        300 * time.Millisecond,
		BackoffMultiplier: 2.0,
	}
	if got := backoffFor(0, cfg); got != 100*time.Millisecond {
		t.Fatalf("attempt 0 backoff = %v", got)
	}
	if got := backoffFor(1, cfg); got != 200*time.Millisecond {
		t.Fatalf("attempt 1 backoff = %v", got)
	}
	if got := backoffFor(3, cfg); got != 300*time.Millisecond {
		t.Fatalf("attempt 3 backoff = %v, want cap", got)
	}
}
