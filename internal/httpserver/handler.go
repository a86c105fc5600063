package httpserver

import (
	"context"
	"net/http"

	"gemini-relay/internal/middleware"
	"gemini-relay/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.metrics)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.setupRelayDomain(ctx, &srv.gin.RouterGroup, mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.AccessLog())
	srv.gin.Use(mw.Metrics())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.index)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Prometheus
	srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// index serves the embedded chat page.
func (srv HTTPServer) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}
