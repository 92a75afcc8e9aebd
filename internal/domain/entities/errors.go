package entities

import "errors"

// ErrUnknownSource is returned when no adapter is registered under a name.
var ErrUnknownSource = errors.New("unknown source")

// ConfigurationError reports a setup problem (typically a missing
// credential) detected before any traversal starts.
type ConfigurationError struct {
	Message string
}

// NewConfigurationError creates a ConfigurationError with the given message.
func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{Message: message}
}

func (e *ConfigurationError) Error() string {
	return e.Message
}
