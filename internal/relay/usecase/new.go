package usecase

import (
	"strings"

	"gemini-relay/internal/relay"
	"gemini-relay/pkg/gemini"
	"gemini-relay/pkg/log"
	"gemini-relay/pkg/metrics"
)

// Config is the request-independent input of the relay.
type Config struct {
	APIKey              string
	DefaultPrompt       string
	MissingPromptPolicy relay.PromptPolicy
	SafetyReasons       []string
}

type implUseCase struct {
	l             log.Logger
	gemini        gemini.IGemini
	metrics       *metrics.Metrics
	cfg           Config
	safetyReasons map[string]struct{}
}

// New - Factory function
func New(l log.Logger, gemini gemini.IGemini, metrics *metrics.Metrics, cfg Config) relay.UseCase {
	if cfg.DefaultPrompt == "" {
		cfg.DefaultPrompt = relay.DefaultPrompt
	}
	if cfg.MissingPromptPolicy == "" {
		cfg.MissingPromptPolicy = relay.PromptPolicyDefault
	}
	if cfg.SafetyReasons == nil {
		cfg.SafetyReasons = relay.DefaultSafetyReasons
	}

	reasons := make(map[string]struct{}, len(cfg.SafetyReasons))
	for _, r := range cfg.SafetyReasons {
		if r = strings.ToUpper(strings.TrimSpace(r)); r != "" {
			reasons[r] = struct{}{}
		}
	}

	return &implUseCase{
		l:             l,
		gemini:        gemini,
		metrics:       metrics,
		cfg:           cfg,
		safetyReasons: reasons,
	}
}
