package gemini

import "errors"

var (
	// ErrRequestFailed means no HTTP response was received.
	ErrRequestFailed = errors.New("gemini: request failed")
	// ErrInvalidResponse means the response body was not JSON.
	ErrInvalidResponse = errors.New("gemini: invalid response body")
	// ErrInvalidBaseURL is returned by NewGemini for a base URL without scheme or host.
	ErrInvalidBaseURL = errors.New("gemini: invalid base URL")
)
