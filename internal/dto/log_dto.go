package dto

import (
	"time"
)

// CreateLogRequest one performed set. Volume defaults to reps times
// weight when absent.
type CreateLogRequest struct {
	ExerciseID      uint       `json:"exercise_id" binding:"required"`
	WorkoutID       *uint      `json:"workout_id"`
	Date            *time.Time `json:"date"`
	SetNumber       int        `json:"set_number" binding:"required,gt=0"`
	Reps            int        `json:"reps" binding:"required,gt=0"`
	Weight          *float64   `json:"weight" binding:"omitempty,gte=0"`
	RestSeconds     *int       `json:"rest_seconds" binding:"omitempty,gte=0"`
	DurationSeconds *int       `json:"duration_seconds" binding:"omitempty,gte=0"`
	DistanceM       *float64   `json:"distance_m" binding:"omitempty,gte=0"`
	Volume          *float64   `json:"volume" binding:"omitempty,gte=0"`
	Notes           *string    `json:"notes"`
}

// UpdateLogRequest partial update, one optional per mutable column.
type UpdateLogRequest struct {
	Reps            *int     `json:"reps" binding:"omitempty,gt=0"`
	Weight          *float64 `json:"weight" binding:"omitempty,gte=0"`
	RestSeconds     *int     `json:"rest_seconds" binding:"omitempty,gte=0"`
	DurationSeconds *int     `json:"duration_seconds" binding:"omitempty,gte=0"`
	DistanceM       *float64 `json:"distance_m" binding:"omitempty,gte=0"`
	Volume          *float64 `json:"volume" binding:"omitempty,gte=0"`
	Notes           *string  `json:"notes"`
}

// AddLogsRequest batch of performed sets recorded against a workout.
type AddLogsRequest struct {
	Logs []CreateLogRequest `json:"logs" binding:"required,dive"`
}
