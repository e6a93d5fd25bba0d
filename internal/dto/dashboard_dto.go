package dto

import (
	"gymtrack/internal/models"
)

// DashboardResponse derived facts for the current date: the workout
// planned for today's weekday and whether yesterday's plan went
// completely unlogged.
type DashboardResponse struct {
	TodaysWorkout    *models.Workout `json:"todays_workout"`
	YesterdaySkipped bool            `json:"yesterday_skipped"`
}
