package service

import (
	"errors"
	"fmt"
	"strings"

	"gymtrack/internal/dto"
	"gymtrack/internal/models"
	"gymtrack/internal/repository"
	"gymtrack/internal/utils"

	"gorm.io/gorm"
)

// ExerciseService exercise catalog management.
type ExerciseService struct {
	exerciseRepo *repository.ExerciseRepository
}

// NewExerciseService creates an exercise service.
func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{
		exerciseRepo: repository.NewExerciseRepository(db),
	}
}

// Create inserts a catalog entry after checking name uniqueness.
func (s *ExerciseService) Create(req *dto.CreateExerciseRequest) (*models.Exercise, error) {
	taken, err := s.exerciseRepo.ExistsByName(req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: exercise %q", ErrConflict, req.Name)
	}

	exercise := &models.Exercise{
		Name:               req.Name,
		Description:        req.Description,
		MuscleGroup:        req.MuscleGroup,
		Equipment:          req.Equipment,
		Difficulty:         req.Difficulty,
		IsCardio:           req.IsCardio,
		DefaultRestSeconds: req.DefaultRestSeconds,
	}
	if err := s.exerciseRepo.Create(exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

// Get fetches an exercise by id.
func (s *ExerciseService) Get(id uint) (*models.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: exercise %d", ErrNotFound, id)
		}
		return nil, err
	}
	return exercise, nil
}

// List returns a page of exercises plus the total count.
func (s *ExerciseService) List(offset, limit int) ([]models.Exercise, int64, error) {
	return s.exerciseRepo.List(offset, limit)
}

// Update applies a partial field merge to an exercise.
func (s *ExerciseService) Update(id uint, req *dto.UpdateExerciseRequest) (*models.Exercise, error) {
	exercise, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != exercise.Name {
		taken, err := s.exerciseRepo.ExistsByName(*req.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: exercise %q", ErrConflict, *req.Name)
		}
		exercise.Name = *req.Name
	}
	if req.Description != nil {
		exercise.Description = req.Description
	}
	if req.MuscleGroup != nil {
		exercise.MuscleGroup = req.MuscleGroup
	}
	if req.Equipment != nil {
		exercise.Equipment = req.Equipment
	}
	if req.Difficulty != nil {
		exercise.Difficulty = req.Difficulty
	}
	if req.IsCardio != nil {
		exercise.IsCardio = *req.IsCardio
	}
	if req.DefaultRestSeconds != nil {
		exercise.DefaultRestSeconds = req.DefaultRestSeconds
	}

	if err := s.exerciseRepo.Update(exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

// Delete removes an exercise.
func (s *ExerciseService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.exerciseRepo.Delete(id)
}

// SearchByName returns exercises whose name contains the query,
// ignoring case and diacritics. sqlite has no unaccent, so the folding
// happens here against the catalog, which stays small.
func (s *ExerciseService) SearchByName(name string) ([]models.Exercise, error) {
	all, err := s.exerciseRepo.ListAll()
	if err != nil {
		return nil, err
	}

	needle := utils.FoldSearch(name)
	matches := make([]models.Exercise, 0)
	for _, e := range all {
		if strings.Contains(utils.FoldSearch(e.Name), needle) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// ListByMuscleGroup returns exercises matching a muscle group exactly.
func (s *ExerciseService) ListByMuscleGroup(group string) ([]models.Exercise, error) {
	return s.exerciseRepo.ListByMuscleGroup(group)
}

// ListCardio returns all cardio exercises.
func (s *ExerciseService) ListCardio() ([]models.Exercise, error) {
	return s.exerciseRepo.ListCardio()
}
