package models

import (
	"time"
)

// Exercise catalog entry. Referenced by prescriptions and logs, never owned.
type Exercise struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	Name               string    `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Description        *string   `json:"description"`
	MuscleGroup        *string   `gorm:"size:255;index" json:"muscle_group"`
	Equipment          *string   `gorm:"size:255" json:"equipment"`
	Difficulty         *string   `gorm:"size:50" json:"difficulty"`
	IsCardio           bool      `gorm:"default:false" json:"is_cardio"`
	DefaultRestSeconds *int      `json:"default_rest_seconds"`
	CreatedAt          time.Time `json:"created_at"`
}

// TableName sets the table name.
func (Exercise) TableName() string {
	return "exercises"
}
