package http

import (
	"gemini-relay/internal/middleware"
	"gemini-relay/internal/relay"
	"gemini-relay/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - relay HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc relay.UseCase
}

// New - Factory
func New(l log.Logger, uc relay.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
