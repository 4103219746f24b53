package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/middleware"
)

// parseIDParam parses a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return id, nil
}

// requireCallerID reads the authenticated user ID from the context. It
// responds 401 and returns false when the identity is missing, which only
// happens if a route is misconfigured without JWTAuth.
func requireCallerID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		})
		return 0, false
	}
	return userID, true
}

// respondInvalidRequest writes the standard malformed-request response
func respondInvalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.APIResponse{
		Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").
			WithDetails(err.Error()),
	})
}
