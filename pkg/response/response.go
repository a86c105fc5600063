package response

import (
	"errors"
	"net/http"

	pkgErrors "gemini-relay/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes data as a 200 JSON response.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error writes err as an ErrorResp. Errors that are not *errors.HTTPError become a generic 500.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode(), ErrorResp{Error: httpErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: MessageInternalError})
}

// PanicError writes the response for a recovered panic. The panic value is never exposed.
func PanicError(c *gin.Context, _ any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResp{Error: MessageInternalError})
}
