package krishi

import (
	"context"
	"errors"
	"math"
	"time"
)

// RetryConfig configures retry behavior for completion calls.
type RetryConfig struct {
	MaxAttempts       int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	BackoffMultiplier float64
}

var DefaultRetryConfig = RetryConfig{
	MaxAttempts:       3,
	InitialBackoff:    500 * time.Millisecond,
	MaxBackoff:        10 * time.Second,
	BackoffMultiplier: 2.0,
}

// complete runs one completion with the per-call timeout, retrying transient
// transport failures with exponential backoff.
func (c *Client) complete(ctx context.Context, pc providerClient, plan callPlan) (callResult, error) {
	var lastErr error
	for attempt := 0; attempt < c.cfg.Retry.MaxAttempts; attempt++ {
		res, err := c.callOnce(ctx, pc, plan)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if !isTransient(err) {
			return callResult{}, err
		}
		if attempt < c.cfg.Retry.MaxAttempts-1 {
			select {
			case <-ctx.Done():
				return callResult{}, ctx.Err()
			case <-time.After(backoffFor(attempt, c.cfg.Retry)):
			}
		}
	}
	return callResult{}, lastErr
}

// callOnce applies the per-call timeout so a hung upstream request cannot
// hang the caller indefinitely.
func (c *Client) callOnce(ctx context.Context, pc providerClient, plan callPlan) (callResult, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}
	return pc.Complete(ctx, plan)
}

// isTransient reports whether a completion failure is worth retrying:
// network-level failures, timeouts, rate limits and server errors.
func isTransient(err error) bool {
	var te *TransportError
	if !errors.As(err, &te) {
		return false
	}
	switch te.StatusCode {
	case 0, 408, 429:
		return true
	}
	return te.StatusCode >= 500
}

func backoffFor(attempt int, cfg RetryConfig) time.Duration {
	backoff := float64(cfg.InitialBackoff) * math.Pow(cfg.BackoffMultiplier, float64(attempt))
	if backoff > float64(cfg.MaxBackoff) {
		backoff = float64(cfg.MaxBackoff)
	}
	return time.Duration(backoff)
}
