package dto

import (
	"time"

	"gymtrack/internal/models"
)

// CreateWorkoutRequest workout creation payload. Date defaults to now
// when absent.
type CreateWorkoutRequest struct {
	UserID    uint       `json:"user_id" binding:"required"`
	Name      string     `json:"name" binding:"required"`
	Date      *time.Time `json:"date"`
	Notes     *string    `json:"notes"`
	DayOfWeek *int       `json:"day_of_week" binding:"omitempty,min=1,max=7"`
}

// WorkoutExercisePrescription one planned exercise inside a workout.
type WorkoutExercisePrescription struct {
	ExerciseID    uint     `json:"exercise_id" binding:"required"`
	PlannedSets   *int     `json:"planned_sets" binding:"omitempty,gt=0"`
	PlannedReps   *int     `json:"planned_reps" binding:"omitempty,gt=0"`
	PlannedWeight *float64 `json:"planned_weight" binding:"omitempty,gte=0"`
	RestSeconds   *int     `json:"rest_seconds" binding:"omitempty,gte=0"`
	Notes         *string  `json:"notes"`
}

// UpdateWorkoutRequest partial scalar update plus an optional full
// replacement of the exercise list. A non-nil empty Exercises slice
// clears every prescription.
type UpdateWorkoutRequest struct {
	Name      *string                        `json:"name"`
	Date      *time.Time                     `json:"date"`
	Notes     *string                        `json:"notes"`
	DayOfWeek *int                           `json:"day_of_week" binding:"omitempty,min=1,max=7"`
	Exercises *[]WorkoutExercisePrescription `json:"exercises" binding:"omitempty,dive"`
}

// AddExercisesRequest appends prescriptions to a workout.
type AddExercisesRequest struct {
	Exercises []WorkoutExercisePrescription `json:"exercises" binding:"required,dive"`
}

// WorkoutListResponse paginated workout listing.
type WorkoutListResponse struct {
	Workouts []models.Workout `json:"workouts"`
	Total    int64            `json:"total"`
}
