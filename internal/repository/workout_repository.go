package repository

import (
	"gymtrack/internal/models"

	"gorm.io/gorm"
)

// WorkoutRepository workout and prescription data access layer.
type WorkoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a workout repository. Pass a transaction
// handle to scope all operations to that transaction.
func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// Create inserts a workout.
func (r *WorkoutRepository) Create(workout *models.Workout) error {
	return r.db.Create(workout).Error
}

// GetByID fetches a workout with its prescriptions and their exercises.
func (r *WorkoutRepository) GetByID(id uint) (*models.Workout, error) {
	var workout models.Workout
	err := r.db.Preload("WorkoutExercises.Exercise").First(&workout, id).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// List returns a page of workouts plus the total count, optionally
// filtered by owner.
func (r *WorkoutRepository) List(offset, limit int, userID *uint) ([]models.Workout, int64, error) {
	var workouts []models.Workout
	var total int64

	query := r.db.Model(&models.Workout{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("WorkoutExercises.Exercise").
		Order("id").Offset(offset).Limit(limit).Find(&workouts).Error
	return workouts, total, err
}

// UpdateFields applies a sparse set of column updates to a workout row.
func (r *WorkoutRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Workout{}).Where("id = ?", id).Updates(fields).Error
}

// GetByUserAndDay fetches the recurring workout a user has planned for
// the given ISO weekday (1..7).
func (r *WorkoutRepository) GetByUserAndDay(userID uint, dayOfWeek int) (*models.Workout, error) {
	var workout models.Workout
	err := r.db.Preload("WorkoutExercises.Exercise").
		Where("user_id = ? AND day_of_week = ?", userID, dayOfWeek).
		First(&workout).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// ListByUser returns every workout owned by a user.
func (r *WorkoutRepository) ListByUser(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.Where("user_id = ?", userID).Find(&workouts).Error
	return workouts, err
}

// AddExercise inserts a prescription row.
func (r *WorkoutRepository) AddExercise(we *models.WorkoutExercise) error {
	return r.db.Create(we).Error
}

// ListExercises returns the prescriptions of a workout.
func (r *WorkoutRepository) ListExercises(workoutID uint) ([]models.WorkoutExercise, error) {
	var exercises []models.WorkoutExercise
	err := r.db.Preload("Exercise").
		Where("workout_id = ?", workoutID).Order("id").Find(&exercises).Error
	return exercises, err
}

// DeleteExercises removes every prescription of a workout.
func (r *WorkoutRepository) DeleteExercises(workoutID uint) error {
	return r.db.Where("workout_id = ?", workoutID).Delete(&models.WorkoutExercise{}).Error
}

// DeleteExercisesByUser removes the prescriptions of every workout a
// user owns.
func (r *WorkoutRepository) DeleteExercisesByUser(userID uint) error {
	sub := r.db.Model(&models.Workout{}).Select("id").Where("user_id = ?", userID)
	return r.db.Where("workout_id IN (?)", sub).Delete(&models.WorkoutExercise{}).Error
}

// DeleteByUser removes every workout a user owns.
func (r *WorkoutRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Workout{}).Error
}

// Delete removes a workout row. Child rows are removed by the service
// inside the same transaction.
func (r *WorkoutRepository) Delete(id uint) error {
	return r.db.Delete(&models.Workout{}, id).Error
}
