package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
)

const userIDHeader = "X-User-ID"

// DefaultUserID is the scope owner used for requests without a user
// header. Startup seeding targets the same owner.
const DefaultUserID = "default"

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// scopeFrom derives the owner scope from the trusted user header set by
// the gateway. Requests without one fall into a shared default scope.
func scopeFrom(c *gin.Context) model.Scope {
	userID := strings.TrimSpace(c.GetHeader(userIDHeader))
	if userID == "" {
		userID = DefaultUserID
	}
	return model.Scope{UserID: userID}
}
