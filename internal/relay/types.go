package relay

import (
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Convention is the way the upstream contents were assembled from a GenerateInput.
type Convention string

const (
	// ConventionCombined appends a synthesized user turn carrying the prompt to the history.
	ConventionCombined Convention = "combined"
	// ConventionPreassembled forwards a history that already ends with the user turn.
	ConventionPreassembled Convention = "preassembled"
)

// PromptPolicy decides what happens when the combined convention has no prompt.
type PromptPolicy string

const (
	PromptPolicyDefault PromptPolicy = "default"
	PromptPolicyReject  PromptPolicy = "reject"
)

// ParsePromptPolicy parses a policy name. The empty string means PromptPolicyDefault.
func ParsePromptPolicy(s string) (PromptPolicy, error) {
	switch PromptPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PromptPolicyDefault:
		return PromptPolicyDefault, nil
	case PromptPolicyReject:
		return PromptPolicyReject, nil
	default:
		return "", fmt.Errorf("relay: unknown missing prompt policy %q", s)
	}
}

// GenerateInput is one client generation request.
type GenerateInput struct {
	Prompt  string
	History []*genai.Content
}

// GenerateOutput is the text produced by the first candidate.
type GenerateOutput struct {
	Text       string
	Convention Convention
}

// DefaultPrompt is used for an empty prompt under PromptPolicyDefault when none is configured.
const DefaultPrompt = "Write a story about a magical bag."

// DefaultSafetyReasons are the error detail reasons reported as safety rejections.
var DefaultSafetyReasons = []string{"SAFETY", "PROHIBITED_CONTENT", "BLOCKLIST", "SPII"}
