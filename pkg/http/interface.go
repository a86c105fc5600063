package http

import "context"

// IClient defines a JSON HTTP client with a per-request timeout.
// Requests are sent exactly once. Implementations are safe for concurrent use.
type IClient interface {
	Post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error)
}

// NewClient creates a new HTTP client. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &clientImpl{
		client: newHTTPClient(cfg),
	}
}
