package models

import (
	"time"
)

// Gender values accepted for User.Gender.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Activity level values accepted for User.ActivityLevel.
const (
	ActivitySedentary = "sedentary"
	ActivityLight     = "light"
	ActivityModerate  = "moderate"
	ActivityActive    = "active"
	ActivityAthlete   = "athlete"
)

// Goal values accepted for User.Goal.
const (
	GoalLoseWeight     = "lose_weight"
	GoalGainMuscle     = "gain_muscle"
	GoalMaintain       = "maintain"
	GoalImproveFitness = "improve_fitness"
)

// User account with optional demographic attributes.
type User struct {
	ID                uint       `gorm:"primarykey" json:"id"`
	Username          string     `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email             string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash      string     `gorm:"size:255;not null" json:"-"`
	Gender            *string    `gorm:"size:10" json:"gender"`
	Birthdate         *time.Time `json:"birthdate"`
	HeightCm          *int       `json:"height_cm"`
	WeightKg          *float64   `json:"weight_kg"`
	BodyFatPercentage *float64   `json:"body_fat_percentage"`
	ActivityLevel     *string    `gorm:"size:20" json:"activity_level"`
	Goal              *string    `gorm:"size:20" json:"goal"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// Associations. Cascades are performed explicitly by the services
	// inside a transaction, not left to the driver.
	Workouts []Workout         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"workouts,omitempty"`
	Logs     []UserExerciseLog `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"logs,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
