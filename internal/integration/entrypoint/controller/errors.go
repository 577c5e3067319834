package controller

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// logInternalError records an unexpected failure before a 500 response is written.
func logInternalError(ctx *gin.Context, msg string, err error) {
	slog.ErrorContext(ctx.Request.Context(), msg,
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
}
