package http

import (
	"net/http"
	"time"
)

// ClientConfig holds configuration for the HTTP client.
type ClientConfig struct {
	Timeout time.Duration
	// ProxyURL routes outbound requests through an HTTP(S) proxy.
	// Empty means the environment proxy settings apply.
	ProxyURL string
}

// clientImpl implements IClient.
type clientImpl struct {
	client *http.Client
}
