package claudetext

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration and request building.
// All use prefix "claudetext:" for identification. Callers should use
// errors.Is/errors.As. Transport-level errors are never wrapped or
// translated; they propagate from the SDK unchanged.
var (
	ErrMissingAPIKey     = errors.New("claudetext: missing API key (use WithAPIKey or set ANTHROPIC_API_KEY)")
	ErrMarkersUnresolved = errors.New("claudetext: human and assistant turn markers must be non-empty")
	ErrInvalidParameter  = errors.New("claudetext: request parameter has unsupported type")
)

// ConfigError reports invalid or incomplete adapter configuration.
// Use errors.Is(err, ErrMissingAPIKey) etc. and errors.As(err, &configErr)
// to inspect.
type ConfigError struct {
	Field string
	Err   error
}

// Error implements error.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("claudetext: configuration field %q: %v", e.Field, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (e *ConfigError) Unwrap() error { return e.Err }

// Compile-time check that ConfigError implements error.
var _ error = (*ConfigError)(nil)
