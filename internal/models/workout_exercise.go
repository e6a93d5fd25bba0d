package models

// WorkoutExercise prescribes one exercise inside a workout with its
// planned sets, reps and weight.
type WorkoutExercise struct {
	ID            uint     `gorm:"primarykey" json:"id"`
	WorkoutID     uint     `gorm:"not null;index" json:"workout_id"`
	ExerciseID    uint     `gorm:"not null;index" json:"exercise_id"`
	PlannedSets   *int     `json:"planned_sets"`
	PlannedReps   *int     `json:"planned_reps"`
	PlannedWeight *float64 `json:"planned_weight"`
	RestSeconds   *int     `json:"rest_seconds"`
	Notes         *string  `json:"notes"`

	Exercise Exercise `gorm:"foreignKey:ExerciseID" json:"exercise"`
}

// TableName sets the table name.
func (WorkoutExercise) TableName() string {
	return "workout_exercises"
}
