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

// UserHandler account endpoints.
type UserHandler struct {
	userService *service.UserService
	logger      *logrus.Logger
}

// NewUserHandler creates a user handler.
func NewUserHandler(userService *service.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Create handles POST /api/users. Registration is public.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("user registered")
	c.JSON(http.StatusCreated, user)
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	offset, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	users, total, err := h.userService.List(offset, limit)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserListResponse{Users: users, Total: total})
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "not authenticated")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe handles PUT /api/users/me.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.Unauthorized(c, "not authenticated")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Update(userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteMe handles DELETE /api/users/me.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.Unauthorized(c, "not authenticated")
		return
	}

	if err := h.userService.Delete(userID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	h.logger.WithField("user_id", userID).Info("account deleted")
	c.Status(http.StatusNoContent)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListLogs handles GET /api/users/:id/logs. A user may only read their
// own logs.
func (h *UserHandler) ListLogs(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	callerID, ok := middleware.GetUserID(c)
	if !ok {
		utils.Unauthorized(c, "not authenticated")
		return
	}
	if callerID != id {
		utils.Forbidden(c, "cannot read another user's logs")
		return
	}

	offset, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	exerciseID, ok := parseOptionalUintQuery(c, "exercise_id")
	if !ok {
		return
	}

	logs, total, err := h.userService.ListLogs(id, offset, limit, exerciseID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs, "total": total})
}
