package models

import (
	"time"
)

// UserExerciseLog records one actually-performed set. Volume is derived
// from reps and weight when the client does not supply it.
type UserExerciseLog struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	ExerciseID      uint      `gorm:"not null;index" json:"exercise_id"`
	WorkoutID       *uint     `gorm:"index" json:"workout_id"`
	Date            time.Time `gorm:"not null;index" json:"date"`
	SetNumber       int       `gorm:"not null" json:"set_number"`
	Reps            int       `gorm:"not null" json:"reps"`
	Weight          *float64  `json:"weight"`
	RestSeconds     *int      `json:"rest_seconds"`
	DurationSeconds *int      `json:"duration_seconds"`
	DistanceM       *float64  `json:"distance_m"`
	Volume          *float64  `json:"volume"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`

	Exercise Exercise `gorm:"foreignKey:ExerciseID" json:"exercise"`
}

// TableName sets the table name.
func (UserExerciseLog) TableName() string {
	return "user_exercise_logs"
}
