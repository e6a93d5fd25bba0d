package handler

import (
	"net/http"

	"gymtrack/internal/dto"
	"gymtrack/internal/middleware"
	"gymtrack/internal/service"
	"gymtrack/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler login and password change endpoints.
type AuthHandler struct {
	authService *service.AuthService
	logger      *logrus.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(authService *service.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login handles POST /api/users/login. Credentials arrive form-encoded,
// the email in the username field.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequest(c, "username and password are required")
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	h.logger.WithField("user_id", resp.User.ID).Info("user logged in")
	c.JSON(http.StatusOK, resp)
}

// ChangePassword handles PUT /api/users/me/password for the
// authenticated user.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.Unauthorized(c, "not authenticated")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.ChangePassword(userID, &req); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	h.logger.WithField("user_id", userID).Info("password changed")
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
