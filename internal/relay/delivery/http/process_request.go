package http

import (
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

// processGenerateRequest binds the JSON body. An empty body is the same as {}.
func (h *handler) processGenerateRequest(c *gin.Context) (generateReq, error) {
	var req generateReq
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return generateReq{}, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return req, nil
}
