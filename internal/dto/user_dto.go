package dto

import (
	"time"

	"gymtrack/internal/models"
)

// CreateUserRequest account registration payload.
type CreateUserRequest struct {
	Username          string     `json:"username" binding:"required,username"`
	Email             string     `json:"email" binding:"required,email"`
	Password          string     `json:"password" binding:"required,min=8"`
	Gender            *string    `json:"gender" binding:"omitempty,oneof=male female"`
	Birthdate         *time.Time `json:"birthdate"`
	HeightCm          *int       `json:"height_cm" binding:"omitempty,gt=0"`
	WeightKg          *float64   `json:"weight_kg" binding:"omitempty,gt=0"`
	BodyFatPercentage *float64   `json:"body_fat_percentage" binding:"omitempty,gte=0,lte=100"`
	ActivityLevel     *string    `json:"activity_level" binding:"omitempty,oneof=sedentary light moderate active athlete"`
	Goal              *string    `json:"goal" binding:"omitempty,oneof=lose_weight gain_muscle maintain improve_fitness"`
}

// UpdateUserRequest partial update, one optional per mutable column.
type UpdateUserRequest struct {
	Username          *string    `json:"username" binding:"omitempty,username"`
	Email             *string    `json:"email" binding:"omitempty,email"`
	Gender            *string    `json:"gender" binding:"omitempty,oneof=male female"`
	Birthdate         *time.Time `json:"birthdate"`
	HeightCm          *int       `json:"height_cm" binding:"omitempty,gt=0"`
	WeightKg          *float64   `json:"weight_kg" binding:"omitempty,gt=0"`
	BodyFatPercentage *float64   `json:"body_fat_percentage" binding:"omitempty,gte=0,lte=100"`
	ActivityLevel     *string    `json:"activity_level" binding:"omitempty,oneof=sedentary light moderate active athlete"`
	Goal              *string    `json:"goal" binding:"omitempty,oneof=lose_weight gain_muscle maintain improve_fitness"`
}

// UserListResponse paginated user listing.
type UserListResponse struct {
	Users []models.User `json:"users"`
	Total int64         `json:"total"`
}
