package relay

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// ErrConfiguration - no API key is configured
	ErrConfiguration = errors.New("relay: gemini api key not configured")

	// ErrPromptRequired - no prompt and the missing prompt policy is reject
	ErrPromptRequired = errors.New("relay: prompt is required")

	// ErrInvalidHistory - a history turn is not a valid Gemini content
	ErrInvalidHistory = errors.New("relay: invalid history")

	// ErrSafetyRejection - Gemini refused the request for safety reasons
	ErrSafetyRejection = errors.New("relay: blocked by safety filters")

	// ErrPromptBlocked - Gemini returned no candidates and a prompt block reason
	ErrPromptBlocked = errors.New("relay: prompt blocked")

	// ErrMalformedUpstreamResponse - the reply has neither error, candidate text nor block reason
	ErrMalformedUpstreamResponse = errors.New("relay: unexpected gemini response format")

	// ErrTransport - no usable reply was received from Gemini
	ErrTransport = errors.New("relay: gemini transport failure")
)

// UpstreamError is an error object returned by Gemini.
// Safety rejections unwrap to ErrSafetyRejection.
type UpstreamError struct {
	Code    int
	Message string
	Status  string
	Safety  bool
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("relay: gemini error %d %s: %s", e.Code, e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	if e.Safety {
		return ErrSafetyRejection
	}
	return nil
}

// PromptBlockedError carries promptFeedback.blockReason.
type PromptBlockedError struct {
	Reason string
}

func (e *PromptBlockedError) Error() string {
	return fmt.Sprintf("relay: prompt blocked: %s", e.Reason)
}

func (e *PromptBlockedError) Unwrap() error {
	return ErrPromptBlocked
}

// HistoryError points at the first invalid history turn.
type HistoryError struct {
	Index  int
	Reason string
}

func (e *HistoryError) Error() string {
	return fmt.Sprintf("relay: invalid history turn %d: %s", e.Index, e.Reason)
}

func (e *HistoryError) Unwrap() error {
	return ErrInvalidHistory
}
