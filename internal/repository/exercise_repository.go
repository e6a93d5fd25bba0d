package repository

import (
	"gymtrack/internal/models"

	"gorm.io/gorm"
)

// ExerciseRepository exercise catalog data access layer.
type ExerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates an exercise repository.
func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// Create inserts an exercise.
func (r *ExerciseRepository) Create(exercise *models.Exercise) error {
	return r.db.Create(exercise).Error
}

// GetByID fetches an exercise by primary key.
func (r *ExerciseRepository) GetByID(id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	err := r.db.First(&exercise, id).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

// GetByName fetches an exercise by its exact name.
func (r *ExerciseRepository) GetByName(name string) (*models.Exercise, error) {
	var exercise models.Exercise
	err := r.db.Where("name = ?", name).First(&exercise).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

// ExistsByName reports whether an exercise with the given name exists.
func (r *ExerciseRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Exercise{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// Update persists changes to an exercise.
func (r *ExerciseRepository) Update(exercise *models.Exercise) error {
	return r.db.Save(exercise).Error
}

// Delete removes an exercise.
func (r *ExerciseRepository) Delete(id uint) error {
	return r.db.Delete(&models.Exercise{}, id).Error
}

// List returns a page of exercises plus the total count.
func (r *ExerciseRepository) List(offset, limit int) ([]models.Exercise, int64, error) {
	var exercises []models.Exercise
	var total int64

	if err := r.db.Model(&models.Exercise{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&exercises).Error
	return exercises, total, err
}

// ListAll returns the whole catalog, used for folded name search.
func (r *ExerciseRepository) ListAll() ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := r.db.Order("id").Find(&exercises).Error
	return exercises, err
}

// ListByMuscleGroup returns exercises matching a muscle group exactly.
func (r *ExerciseRepository) ListByMuscleGroup(group string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := r.db.Where("muscle_group = ?", group).Order("id").Find(&exercises).Error
	return exercises, err
}

// ListCardio returns all cardio exercises.
func (r *ExerciseRepository) ListCardio() ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := r.db.Where("is_cardio = ?", true).Order("id").Find(&exercises).Error
	return exercises, err
}
