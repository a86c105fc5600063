package httpserver

import (
	"context"
	"time"

	"gemini-relay/internal/middleware"
	"gemini-relay/internal/relay"
	relayHTTP "gemini-relay/internal/relay/delivery/http"
	relayUsecase "gemini-relay/internal/relay/usecase"

	"github.com/gin-gonic/gin"
)

func (srv HTTPServer) setupRelayDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	policy, err := relay.ParsePromptPolicy(srv.config.Relay.MissingPromptPolicy)
	if err != nil {
		return err
	}

	uc := relayUsecase.New(srv.l, srv.gemini, srv.metrics, relayUsecase.Config{
		APIKey:              srv.config.Gemini.APIKey,
		DefaultPrompt:       srv.config.Relay.DefaultPrompt,
		MissingPromptPolicy: policy,
		SafetyReasons:       srv.config.Gemini.SafetyReasons,
	})

	handler := relayHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Relay domain registered (model %s, timeout %s, missing prompt policy %s)",
		srv.config.Gemini.Model, time.Duration(srv.config.Gemini.Timeout)*time.Second, policy)
	return nil
}
