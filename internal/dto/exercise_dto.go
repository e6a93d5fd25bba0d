package dto

import (
	"gymtrack/internal/models"
)

// CreateExerciseRequest catalog entry payload.
type CreateExerciseRequest struct {
	Name               string   `json:"name" binding:"required"`
	Description        *string  `json:"description"`
	MuscleGroup        *string  `json:"muscle_group"`
	Equipment          *string  `json:"equipment"`
	Difficulty         *string  `json:"difficulty"`
	IsCardio           bool     `json:"is_cardio"`
	DefaultRestSeconds *int     `json:"default_rest_seconds" binding:"omitempty,gte=0"`
}

// UpdateExerciseRequest partial update, one optional per mutable column.
type UpdateExerciseRequest struct {
	Name               *string  `json:"name"`
	Description        *string  `json:"description"`
	MuscleGroup        *string  `json:"muscle_group"`
	Equipment          *string  `json:"equipment"`
	Difficulty         *string  `json:"difficulty"`
	IsCardio           *bool    `json:"is_cardio"`
	DefaultRestSeconds *int     `json:"default_rest_seconds" binding:"omitempty,gte=0"`
}

// ExerciseListResponse paginated exercise listing.
type ExerciseListResponse struct {
	Exercises []models.Exercise `json:"exercises"`
	Total     int64             `json:"total"`
}
