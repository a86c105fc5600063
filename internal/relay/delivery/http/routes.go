package http

import (
	"gemini-relay/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api")
	{
		api.POST("/generate", h.Generate)
	}
}
