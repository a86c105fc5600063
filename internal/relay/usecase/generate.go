package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gemini-relay/internal/relay"
	"gemini-relay/pkg/gemini"
	"gemini-relay/pkg/metrics"

	"google.golang.org/genai"
)

// Generate - validate → assemble contents → generateContent → interpret
func (uc *implUseCase) Generate(ctx context.Context, input relay.GenerateInput) (relay.GenerateOutput, error) {
	if uc.cfg.APIKey == "" {
		return relay.GenerateOutput{}, uc.fail(ctx, relay.ErrConfiguration)
	}

	history, err := normalizeHistory(input.History)
	if err != nil {
		return relay.GenerateOutput{}, uc.fail(ctx, err)
	}

	contents, convention, err := uc.assembleContents(input.Prompt, history)
	if err != nil {
		return relay.GenerateOutput{}, uc.fail(ctx, err)
	}

	start := time.Now()
	resp, err := uc.gemini.GenerateContent(ctx, uc.cfg.APIKey, gemini.Request{Contents: contents})
	uc.metrics.ObserveUpstream(time.Since(start))
	if err != nil {
		return relay.GenerateOutput{}, uc.fail(ctx, fmt.Errorf("%w: %v", relay.ErrTransport, err))
	}

	text, err := uc.interpret(resp)
	if err != nil {
		return relay.GenerateOutput{}, uc.fail(ctx, err)
	}

	uc.metrics.ObserveGeneration(metrics.OutcomeSuccess)
	return relay.GenerateOutput{Text: text, Convention: convention}, nil
}

// assembleContents picks the calling convention. A history whose last turn is from the user
// and comes without a prompt is forwarded as is.
func (uc *implUseCase) assembleContents(prompt string, history []*genai.Content) ([]*genai.Content, relay.Convention, error) {
	if prompt == "" && len(history) > 0 && history[len(history)-1].Role == roleUser {
		return history, relay.ConventionPreassembled, nil
	}

	if prompt == "" {
		if uc.cfg.MissingPromptPolicy == relay.PromptPolicyReject {
			return nil, "", relay.ErrPromptRequired
		}
		prompt = uc.cfg.DefaultPrompt
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	contents = append(contents, history...)
	contents = append(contents, userTurn(prompt))
	return contents, relay.ConventionCombined, nil
}

// fail logs err once and records its outcome.
func (uc *implUseCase) fail(ctx context.Context, err error) error {
	var upstreamErr *relay.UpstreamError
	switch {
	case errors.Is(err, relay.ErrInvalidHistory), errors.Is(err, relay.ErrPromptRequired):
		uc.l.Warnf(ctx, "relay.usecase.Generate: rejected input: %v", err)
	case errors.As(err, &upstreamErr):
		uc.l.Errorf(ctx, "relay.usecase.Generate: gemini returned error: code=%d status=%s safety=%t message=%q",
			upstreamErr.Code, upstreamErr.Status, upstreamErr.Safety, upstreamErr.Message)
	default:
		uc.l.Errorf(ctx, "relay.usecase.Generate: %v", err)
	}
	uc.metrics.ObserveGeneration(outcomeOf(err))
	return err
}

func outcomeOf(err error) string {
	var upstreamErr *relay.UpstreamError
	switch {
	case errors.Is(err, relay.ErrConfiguration):
		return metrics.OutcomeConfiguration
	case errors.Is(err, relay.ErrInvalidHistory), errors.Is(err, relay.ErrPromptRequired):
		return metrics.OutcomeInvalidInput
	case errors.Is(err, relay.ErrSafetyRejection):
		return metrics.OutcomeSafety
	case errors.As(err, &upstreamErr):
		return metrics.OutcomeUpstreamError
	case errors.Is(err, relay.ErrPromptBlocked):
		return metrics.OutcomePromptBlocked
	case errors.Is(err, relay.ErrMalformedUpstreamResponse):
		return metrics.OutcomeMalformed
	default:
		return metrics.OutcomeTransport
	}
}
