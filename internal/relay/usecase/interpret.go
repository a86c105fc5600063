package usecase

import (
	"net/http"
	"strings"

	"gemini-relay/internal/relay"
	"gemini-relay/pkg/gemini"

	"google.golang.org/genai"
)

// Client-facing messages.
const (
	messageUpstreamDefault = "Error from Gemini API."
)

// interpret turns a decoded reply into text or a domain error. First match wins:
// error object, candidate text, prompt block reason, otherwise malformed.
func (uc *implUseCase) interpret(resp gemini.Response) (string, error) {
	if resp.Error != nil {
		return "", uc.upstreamError(resp.Error)
	}

	result := resp.Result
	if result == nil {
		return "", relay.ErrMalformedUpstreamResponse
	}

	if text, ok := candidateText(result.Candidates); ok {
		return text, nil
	}

	if fb := result.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return "", &relay.PromptBlockedError{Reason: string(fb.BlockReason)}
	}

	return "", relay.ErrMalformedUpstreamResponse
}

func (uc *implUseCase) upstreamError(apiErr *gemini.APIError) *relay.UpstreamError {
	code := apiErr.Code
	if code < 400 || code > 599 {
		code = http.StatusInternalServerError
	}
	msg := apiErr.Message
	if msg == "" {
		msg = messageUpstreamDefault
	}
	return &relay.UpstreamError{
		Code:    code,
		Message: msg,
		Status:  apiErr.Status,
		Safety:  uc.isSafetyRejection(apiErr.Details),
	}
}

func (uc *implUseCase) isSafetyRejection(details []gemini.ErrorDetail) bool {
	for _, d := range details {
		reason := strings.ToUpper(d.Reason)
		if reason == "" {
			continue
		}
		if _, ok := uc.safetyReasons[reason]; ok {
			return true
		}
		if strings.Contains(reason, "SAFETY") {
			return true
		}
	}
	return false
}

// candidateText concatenates the non-thought text parts of the first candidate.
// ok is false when that candidate has no text.
func candidateText(candidates []*genai.Candidate) (string, bool) {
	if len(candidates) == 0 || candidates[0] == nil || candidates[0].Content == nil {
		return "", false
	}
	var sb strings.Builder
	for _, part := range candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", false
	}
	return sb.String(), true
}
