// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/integration/entrypoint/dto"
)

// parseUUIDParam reads a UUID path parameter and writes a 400 response when it is malformed.
func parseUUIDParam(ctx *gin.Context, name, label, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + label + " ID format",
			Code:  code,
		})
		return uuid.Nil, false
	}
	return id, true
}
