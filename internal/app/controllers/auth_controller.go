package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/app/services"
	"github.com/kerem/campusdesk/internal/middleware"
)

// AuthController handles registration, login and account endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController instance
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register a new account
// @Description Creates an account and returns an access token. Role defaults to student.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /api/auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	token, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{Data: token})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /api/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	token, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: token})
}

// GetUser godoc
// @Summary Get a user profile
// @Description Returns a profile. Callers may read their own; others require admin.
// @Tags auth
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/auth/{userId} [get]
func (ac *AuthController) GetUser(c *gin.Context) {
	callerID, ok := requireCallerID(c)
	if !ok {
		return
	}

	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	user, err := ac.authService.GetUser(c.Request.Context(), callerID, targetID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: user})
}

// ListUsers godoc
// @Summary List all users
// @Description Returns all registered users. Admin only.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/auth/ [get]
func (ac *AuthController) ListUsers(c *gin.Context) {
	users, err := ac.authService.ListUsers(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: users})
}

// UpdateUser godoc
// @Summary Update a user profile
// @Description Applies a partial update. Role changes require admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/auth/{userId} [put]
func (ac *AuthController) UpdateUser(c *gin.Context) {
	callerID, ok := requireCallerID(c)
	if !ok {
		return
	}

	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	user, err := ac.authService.UpdateUser(c.Request.Context(), callerID, targetID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: user})
}

// DeleteUser godoc
// @Summary Delete a user account
// @Description Removes an account. Timetable entries owned by it are kept.
// @Tags auth
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/auth/{userId} [delete]
func (ac *AuthController) DeleteUser(c *gin.Context) {
	callerID, ok := requireCallerID(c)
	if !ok {
		return
	}

	targetID, err := parseIDParam(c, "userId")
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	if err := ac.authService.DeleteUser(c.Request.Context(), callerID, targetID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "User deleted successfully"}})
}
