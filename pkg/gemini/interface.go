package gemini

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	pkghttp "gemini-relay/pkg/http"
)

// IGemini sends generateContent calls to the Gemini API.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent posts req once. A non-nil error means no decodable reply was obtained;
	// API-level failures are reported through Response.Error.
	GenerateContent(ctx context.Context, apiKey string, req Request) (Response, error)
}

// NewGemini creates a new Gemini client. Empty fields fall back to the package defaults.
func NewGemini(cfg GeminiConfig) (IGemini, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}
	return &geminiImpl{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:  cfg.Timeout,
			ProxyURL: cfg.ProxyURL,
		}),
	}, nil
}
