package models

import (
	"time"
)

// Workout belongs to one user. DayOfWeek (1..7, ISO) marks it as the
// recurring plan for that weekday.
type Workout struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Date      time.Time `gorm:"not null" json:"date"`
	Notes     *string   `json:"notes"`
	DayOfWeek *int      `json:"day_of_week"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	WorkoutExercises []WorkoutExercise `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE" json:"workout_exercises"`
	Logs             []UserExerciseLog `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE" json:"logs,omitempty"`
}

// TableName sets the table name.
func (Workout) TableName() string {
	return "workouts"
}
