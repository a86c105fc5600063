package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog logs one line per request after it has been served.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		m.l.Infof(c.Request.Context(), "%s %s %d %s %dB",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), c.Writer.Size())
	}
}

// Metrics records request counts and latencies by route pattern.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
