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

// WorkoutHandler workout and prescription endpoints.
type WorkoutHandler struct {
	workoutService *service.WorkoutService
	logService     *service.LogService
	logger         *logrus.Logger
}

// NewWorkoutHandler creates a workout handler.
func NewWorkoutHandler(workoutService *service.WorkoutService, logService *service.LogService, logger *logrus.Logger) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
		logService:     logService,
		logger:         logger,
	}
}

// Create handles POST /api/workouts.
func (h *WorkoutHandler) Create(c *gin.Context) {
	var req dto.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	workout, err := h.workoutService.Create(&req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// List handles GET /api/workouts, optionally filtered by user_id.
func (h *WorkoutHandler) List(c *gin.Context) {
	offset, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	userID, ok := parseOptionalUintQuery(c, "user_id")
	if !ok {
		return
	}

	workouts, total, err := h.workoutService.List(offset, limit, userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.WorkoutListResponse{Workouts: workouts, Total: total})
}

// Get handles GET /api/workouts/:id.
func (h *WorkoutHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	workout, err := h.workoutService.Get(id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// Update handles PUT /api/workouts/:id. A present exercises field
// replaces the whole prescription list atomically.
func (h *WorkoutHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	workout, err := h.workoutService.Update(id, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// Delete handles DELETE /api/workouts/:id.
func (h *WorkoutHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workoutService.Delete(id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListExercises handles GET /api/workouts/:id/exercises.
func (h *WorkoutHandler) ListExercises(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	prescriptions, err := h.workoutService.ListExercises(id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

// AddExercises handles POST /api/workouts/:id/exercises, appending
// prescriptions without touching existing ones.
func (h *WorkoutHandler) AddExercises(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddExercisesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	prescriptions, err := h.workoutService.AddExercises(id, req.Exercises)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, prescriptions)
}

// ListLogs handles GET /api/workouts/:id/logs.
func (h *WorkoutHandler) ListLogs(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	offset, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	logs, total, err := h.logService.ListForWorkout(id, offset, limit)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs, "total": total})
}

// AddLogs handles POST /api/workouts/:id/logs, recording a batch of
// performed sets for the authenticated user.
func (h *WorkoutHandler) AddLogs(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.Unauthorized(c, "not authenticated")
		return
	}

	var req dto.AddLogsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	logs, err := h.logService.AddToWorkout(userID, id, req.Logs)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, logs)
}
