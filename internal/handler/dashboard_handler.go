package handler

import (
	"net/http"

	"gymtrack/internal/middleware"
	"gymtrack/internal/service"
	"gymtrack/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DashboardHandler derived-state endpoint.
type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *logrus.Logger
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(dashboardService *service.DashboardService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Get handles GET /api/dashboard/:user_id. A user may only read their
// own dashboard.
func (h *DashboardHandler) Get(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	callerID, ok := middleware.GetUserID(c)
	if !ok {
		utils.Unauthorized(c, "not authenticated")
		return
	}
	if callerID != userID {
		utils.Forbidden(c, "cannot read another user's dashboard")
		return
	}

	resp, err := h.dashboardService.Get(userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
