package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the body of every error response.
type Err struct {
	HTTPStatusCode int    `json:"-"`
	Message        string `json:"message"`
}

func (e *Err) Error() string {
	return e.Message
}

// RenderErr writes the error response and aborts the request. Server
// side errors are logged but never leaked to the client.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("server side error",
			zap.Int("status", err.HTTPStatusCode),
			zap.String("message", err.Message),
			zap.String("path", ctx.Request.URL.Path),
		)
	}

	ctx.AbortWithStatusJSON(err.HTTPStatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
	}
}

func ErrUnauthorized(message string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        message,
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        err.Error(),
	}
}

func ErrPermissionDenied(message string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusForbidden,
		Message:        message,
	}
}

func ErrInvalidToken(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusForbidden,
		Message:        err.Error(),
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Message:        fmt.Sprintf("%s not found with %s=%v", resource, key, value),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusConflict,
		Message:        err.Error(),
	}
}

// ErrInternalServerError logs the underlying error and returns a
// generic message to the client.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        "internal server error",
	}
}
