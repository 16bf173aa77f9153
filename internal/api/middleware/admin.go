package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/intellcap/association-api/internal/api/handler/v1/response"
	"github.com/intellcap/association-api/internal/domain"
)

type UserGetter interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// RequireAdmin loads the authenticated user and rejects anyone without
// the admin role. It must run after VerifyJWT.
func RequireAdmin(svc UserGetter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get(ContextKeyUserID)
		if !exists {
			response.RenderErr(ctx, response.ErrUnauthorized("user is not authenticated"))

			return
		}

		id, ok := userID.(uint)
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized("user is not authenticated"))

			return
		}

		user, err := svc.GetUser(ctx.Request.Context(), id)
		if err != nil {
			response.RenderErr(ctx, response.ErrPermissionDenied("admin access required"))

			return
		}

		if !user.IsAdmin() {
			response.RenderErr(ctx, response.ErrPermissionDenied("admin access required"))

			return
		}

		ctx.Next()
	}
}
