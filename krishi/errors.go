package krishi

import "fmt"

// ConfigError reports a missing credential or invalid client configuration.
// It surfaces on first use of the completion backend, not at process start.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "krishi: " + e.Reason }

// UnknownCropError reports a crop identifier outside the fixed catalog.
type UnknownCropError struct {
	Crop CropType
}

func (e *UnknownCropError) Error() string {
	return fmt.Sprintf("krishi: unknown crop %q", string(e.Crop))
}

// TransportError reports a network or upstream API failure, preserving the
// upstream status when one was received.
type TransportError struct {
	StatusCode int // zero when the request never reached the service
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("krishi: completion request failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("krishi: completion request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError reports completion text that did not parse as JSON.
// Raw keeps the offending payload for logs; it is never shown to callers.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return "krishi: model response is not valid JSON: " + e.Err.Error()
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// taskError wraps err with the user-facing prefix of one orchestrator task.
// The prefix strings are part of the client-facing contract.
func taskError(prefix string, err error) error {
	return fmt.Errorf("%s: %w", prefix, err)
}
