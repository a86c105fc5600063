package gemini

import (
	"time"

	pkghttp "gemini-relay/pkg/http"

	"google.golang.org/genai"
)

// GeminiConfig holds the configuration for the Gemini client.
type GeminiConfig struct {
	BaseURL  string
	Model    string
	Timeout  time.Duration
	ProxyURL string
}

// geminiImpl implements IGemini using the Gemini REST API.
type geminiImpl struct {
	baseURL    string
	model      string
	httpClient pkghttp.IClient
}

// Request is the generateContent request body.
type Request struct {
	Contents []*genai.Content `json:"contents"`
}

// Response is a decoded generateContent reply. At most one of Error and Result is set;
// both are nil when the body is JSON of an unrecognized shape.
type Response struct {
	StatusCode int
	Error      *APIError
	Result     *genai.GenerateContentResponse
}

// APIError is the "error" object of a failed Google API call.
type APIError struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail is one entry of APIError.Details. Only the fields the relay inspects are decoded.
type ErrorDetail struct {
	Type     string            `json:"@type"`
	Reason   string            `json:"reason,omitempty"`
	Domain   string            `json:"domain,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}
