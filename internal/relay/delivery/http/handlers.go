package http

import (
	"gemini-relay/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Generate content with Gemini
// @Description Relay a prompt, optionally with conversation history and inline images, to Gemini generateContent.
// @Description A history that ends with a user turn and comes without a prompt is forwarded unchanged.
// @Tags Relay
// @Accept json
// @Produce json
// @Param body body generateReq true "Generation request"
// @Success 200 {object} generateResp
// @Failure 400 {object} response.ErrorResp
// @Failure 500 {object} response.ErrorResp
// @Router /api/generate [post]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "relay.delivery.http.Generate: processGenerateRequest failed: %v", err)
		response.Error(c, errInvalidBody)
		return
	}

	// The usecase logs its own failures.
	o, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(o))
}
