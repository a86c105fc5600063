package http

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout: DefaultTimeout,
	}
}
