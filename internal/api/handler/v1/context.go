package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/intellcap/association-api/internal/api/handler/v1/response"
	"github.com/intellcap/association-api/internal/api/middleware"
)

// getUserIDFromContext returns the authenticated caller's ID stored by
// the JWT middleware.
func getUserIDFromContext(ctx *gin.Context) (uint, *response.Err) {
	value, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return 0, response.ErrUnauthorized("user is not authenticated")
	}

	userID, ok := value.(uint)
	if !ok {
		return 0, response.ErrUnauthorized("user is not authenticated")
	}

	return userID, nil
}
