package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/targetscope/targetscope/pkg/server/dto"
	"github.com/targetscope/targetscope/pkg/types"
)

// writeError maps a service error onto an HTTP status and a uniform error
// body. Missing snapshots are a readiness problem, not a client fault.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"

	switch {
	case errors.Is(err, types.ErrNoSnapshot):
		status = http.StatusServiceUnavailable
		code = "no_snapshot"
	case errors.Is(err, types.ErrUnknownEntity):
		status = http.StatusNotFound
		code = "entity_not_found"
	case errors.Is(err, types.ErrInvalidSeed),
		errors.Is(err, types.ErrUnknownMaturity),
		errors.Is(err, types.ErrEmptyQuery),
		errors.Is(err, types.ErrInvalidLimit):
		status = http.StatusBadRequest
		code = "invalid_request"
	}

	c.JSON(status, dto.ErrorResponse{
		Error:   code,
		Message: err.Error(),
		Code:    status,
	})
}

// badRequest writes a 400 with the given message.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "invalid_request",
		Message: message,
		Code:    http.StatusBadRequest,
	})
}
