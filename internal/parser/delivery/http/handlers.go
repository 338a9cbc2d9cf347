package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Matt-PMCT/todo-me-sub007/pkg/response"
)

// Parse godoc
// @Summary     Parse task text
// @Description Extracts due date, project, tags and priority from natural language task text and returns the cleaned title with highlight spans.
// @Tags        Parser
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Task text and optional setting overrides"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, scopeFrom(c), req.toInput(h.defaults))
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}
