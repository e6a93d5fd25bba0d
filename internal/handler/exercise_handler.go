package handler

import (
	"net/http"

	"gymtrack/internal/dto"
	"gymtrack/internal/service"
	"gymtrack/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ExerciseHandler exercise catalog endpoints.
type ExerciseHandler struct {
	exerciseService *service.ExerciseService
	logger          *logrus.Logger
}

// NewExerciseHandler creates an exercise handler.
func NewExerciseHandler(exerciseService *service.ExerciseService, logger *logrus.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
		logger:          logger,
	}
}

// Create handles POST /api/exercises.
func (h *ExerciseHandler) Create(c *gin.Context) {
	var req dto.CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	exercise, err := h.exerciseService.Create(&req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// List handles GET /api/exercises.
func (h *ExerciseHandler) List(c *gin.Context) {
	offset, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	exercises, total, err := h.exerciseService.List(offset, limit)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ExerciseListResponse{Exercises: exercises, Total: total})
}

// Get handles GET /api/exercises/:id.
func (h *ExerciseHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	exercise, err := h.exerciseService.Get(id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// Update handles PUT /api/exercises/:id.
func (h *ExerciseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	exercise, err := h.exerciseService.Update(id, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// Delete handles DELETE /api/exercises/:id.
func (h *ExerciseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.exerciseService.Delete(id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search handles GET /api/exercises/search/:name. Matching ignores case
// and diacritics.
func (h *ExerciseHandler) Search(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		utils.BadRequest(c, "search term is required")
		return
	}

	exercises, err := h.exerciseService.SearchByName(name)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// ByMuscleGroup handles GET /api/exercises/muscle/:group.
func (h *ExerciseHandler) ByMuscleGroup(c *gin.Context) {
	group := c.Param("group")
	if group == "" {
		utils.BadRequest(c, "muscle group is required")
		return
	}

	exercises, err := h.exerciseService.ListByMuscleGroup(group)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// Cardio handles GET /api/exercises/cardio.
func (h *ExerciseHandler) Cardio(c *gin.Context) {
	exercises, err := h.exerciseService.ListCardio()
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}
