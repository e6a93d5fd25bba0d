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

// LogHandler performed-set endpoints.
type LogHandler struct {
	logService *service.LogService
	logger     *logrus.Logger
}

// NewLogHandler creates a log handler.
func NewLogHandler(logService *service.LogService, logger *logrus.Logger) *LogHandler {
	return &LogHandler{
		logService: logService,
		logger:     logger,
	}
}

// Create handles POST /api/logs. The entry is recorded for the
// authenticated user. A user_id query parameter is accepted but must
// match the token's subject.
func (h *LogHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.Unauthorized(c, "not authenticated")
		return
	}

	requested, ok := parseOptionalUintQuery(c, "user_id")
	if !ok {
		return
	}
	if requested != nil && *requested != userID {
		utils.Forbidden(c, "cannot record logs for another user")
		return
	}

	var req dto.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	log, err := h.logService.Create(userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

// Get handles GET /api/logs/:id.
func (h *LogHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	log, err := h.logService.Get(id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// Update handles PUT /api/logs/:id. Only the owner may modify an entry.
func (h *LogHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.Unauthorized(c, "not authenticated")
		return
	}

	log, err := h.logService.Get(id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	if log.UserID != userID {
		utils.Forbidden(c, "cannot modify another user's log")
		return
	}

	var req dto.UpdateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	updated, err := h.logService.Update(id, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/logs/:id. Only the owner may delete an
// entry.
func (h *LogHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.Unauthorized(c, "not authenticated")
		return
	}

	log, err := h.logService.Get(id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	if log.UserID != userID {
		utils.Forbidden(c, "cannot delete another user's log")
		return
	}

	if err := h.logService.Delete(id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
