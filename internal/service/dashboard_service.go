package service

import (
	"errors"
	"time"

	"gymtrack/internal/dto"
	"gymtrack/internal/repository"

	"gorm.io/gorm"
)

// DashboardService derives today's planned workout and whether
// yesterday's plan went completely unlogged.
type DashboardService struct {
	workoutRepo *repository.WorkoutRepository
	logRepo     *repository.LogRepository
	now         func() time.Time
}

// NewDashboardService creates a dashboard service using the wall clock.
func NewDashboardService(db *gorm.DB) *DashboardService {
	return NewDashboardServiceWithClock(db, time.Now)
}

// NewDashboardServiceWithClock creates a dashboard service with an
// injected clock.
func NewDashboardServiceWithClock(db *gorm.DB, now func() time.Time) *DashboardService {
	return &DashboardService{
		workoutRepo: repository.NewWorkoutRepository(db),
		logRepo:     repository.NewLogRepository(db),
		now:         now,
	}
}

// isoWeekday maps time.Weekday to ISO 8601 numbering, Monday=1..Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Get computes the dashboard for a user. Yesterday counts as skipped
// only when a workout was planned for that weekday and zero logs were
// recorded on that date.
func (s *DashboardService) Get(userID uint) (*dto.DashboardResponse, error) {
	now := s.now()
	resp := &dto.DashboardResponse{}

	todays, err := s.workoutRepo.GetByUserAndDay(userID, isoWeekday(now))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	resp.TodaysWorkout = todays

	yesterday := now.AddDate(0, 0, -1)
	plan, err := s.workoutRepo.GetByUserAndDay(userID, isoWeekday(yesterday))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, nil
		}
		return nil, err
	}
	if plan != nil {
		count, err := s.logRepo.CountForUserOnDate(userID, yesterday)
		if err != nil {
			return nil, err
		}
		resp.YesterdaySkipped = count == 0
	}

	return resp, nil
}
