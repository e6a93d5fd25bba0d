package repository

import (
	"time"

	"gymtrack/internal/models"

	"gorm.io/gorm"
)

// LogRepository performed-set data access layer.
type LogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a log repository.
func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Create inserts a log entry.
func (r *LogRepository) Create(log *models.UserExerciseLog) error {
	return r.db.Create(log).Error
}

// GetByID fetches a log entry by primary key.
func (r *LogRepository) GetByID(id uint) (*models.UserExerciseLog, error) {
	var log models.UserExerciseLog
	err := r.db.Preload("Exercise").First(&log, id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// List returns a page of a user's logs plus the total count, optionally
// filtered by exercise or workout.
func (r *LogRepository) List(userID uint, offset, limit int, exerciseID, workoutID *uint) ([]models.UserExerciseLog, int64, error) {
	var logs []models.UserExerciseLog
	var total int64

	query := r.db.Model(&models.UserExerciseLog{}).Where("user_id = ?", userID)
	if exerciseID != nil {
		query = query.Where("exercise_id = ?", *exerciseID)
	}
	if workoutID != nil {
		query = query.Where("workout_id = ?", *workoutID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Exercise").
		Order("date DESC, id DESC").Offset(offset).Limit(limit).Find(&logs).Error
	return logs, total, err
}

// Update persists changes to a log entry.
func (r *LogRepository) Update(log *models.UserExerciseLog) error {
	return r.db.Save(log).Error
}

// Delete removes a log entry.
func (r *LogRepository) Delete(id uint) error {
	return r.db.Delete(&models.UserExerciseLog{}, id).Error
}

// DeleteByWorkout removes every log referencing a workout.
func (r *LogRepository) DeleteByWorkout(workoutID uint) error {
	return r.db.Where("workout_id = ?", workoutID).Delete(&models.UserExerciseLog{}).Error
}

// DeleteByUser removes every log owned by a user.
func (r *LogRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.UserExerciseLog{}).Error
}

// CountForUserOnDate counts the logs a user recorded on a calendar day.
func (r *LogRepository) CountForUserOnDate(userID uint, day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	err := r.db.Model(&models.UserExerciseLog{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Count(&count).Error
	return count, err
}
