package middleware

import (
	"gemini-relay/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is read from the request and echoed on the response.
const HeaderRequestID = "X-Request-ID"

const maxRequestIDLen = 128

// RequestID returns a middleware that puts a request ID into the request context.
// A client-supplied ID is kept when it is short enough, otherwise a UUID is generated.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		ctx := log.SetRequestIDToContext(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}
