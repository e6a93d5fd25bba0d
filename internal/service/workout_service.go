package service

import (
	"errors"
	"fmt"
	"time"

	"gymtrack/internal/dto"
	"gymtrack/internal/models"
	"gymtrack/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// WorkoutService owns workouts and their prescriptions, including the
// transactional exercise-list replacement and the default workout
// seeding for new accounts.
type WorkoutService struct {
	db           *gorm.DB
	workoutRepo  *repository.WorkoutRepository
	exerciseRepo *repository.ExerciseRepository
	userRepo     *repository.UserRepository
	logRepo      *repository.LogRepository
	logger       *logrus.Logger
}

// NewWorkoutService creates a workout service.
func NewWorkoutService(db *gorm.DB, logger *logrus.Logger) *WorkoutService {
	return &WorkoutService{
		db:           db,
		workoutRepo:  repository.NewWorkoutRepository(db),
		exerciseRepo: repository.NewExerciseRepository(db),
		userRepo:     repository.NewUserRepository(db),
		logRepo:      repository.NewLogRepository(db),
		logger:       logger,
	}
}

// Create validates the owner and inserts a workout. Date defaults to now.
func (s *WorkoutService) Create(req *dto.CreateWorkoutRequest) (*models.Workout, error) {
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d does not exist", ErrValidation, req.UserID)
		}
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	workout := &models.Workout{
		UserID:    req.UserID,
		Name:      req.Name,
		Date:      date,
		Notes:     req.Notes,
		DayOfWeek: req.DayOfWeek,
	}
	if err := s.workoutRepo.Create(workout); err != nil {
		return nil, err
	}

	return s.workoutRepo.GetByID(workout.ID)
}

// Get fetches a workout with its exercise list.
func (s *WorkoutService) Get(id uint) (*models.Workout, error) {
	workout, err := s.workoutRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: workout %d", ErrNotFound, id)
		}
		return nil, err
	}
	return workout, nil
}

// List returns a page of workouts plus the total count, optionally
// filtered by owner.
func (s *WorkoutService) List(offset, limit int, userID *uint) ([]models.Workout, int64, error) {
	return s.workoutRepo.List(offset, limit, userID)
}

// Update applies a sparse field update and, when req.Exercises is
// non-nil, atomically replaces the whole prescription list. An empty
// replacement list clears every prescription. Any failure inside the
// transaction rolls back all of it.
func (s *WorkoutService) Update(id uint, req *dto.UpdateWorkoutRequest) (*models.Workout, error) {
	if _, err := s.workoutRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: workout %d", ErrNotFound, id)
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		txWorkouts := repository.NewWorkoutRepository(tx)
		txExercises := repository.NewExerciseRepository(tx)

		if req.Exercises != nil {
			if err := txWorkouts.DeleteExercises(id); err != nil {
				return err
			}
			for _, p := range *req.Exercises {
				if _, err := txExercises.GetByID(p.ExerciseID); err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("%w: exercise %d does not exist", ErrValidation, p.ExerciseID)
					}
					return err
				}
				we := &models.WorkoutExercise{
					WorkoutID:     id,
					ExerciseID:    p.ExerciseID,
					PlannedSets:   p.PlannedSets,
					PlannedReps:   p.PlannedReps,
					PlannedWeight: p.PlannedWeight,
					RestSeconds:   p.RestSeconds,
					Notes:         p.Notes,
				}
				if err := txWorkouts.AddExercise(we); err != nil {
					return err
				}
			}
		}

		fields := map[string]interface{}{}
		if req.Name != nil {
			fields["name"] = *req.Name
		}
		if req.Date != nil {
			fields["date"] = *req.Date
		}
		if req.Notes != nil {
			fields["notes"] = *req.Notes
		}
		if req.DayOfWeek != nil {
			fields["day_of_week"] = *req.DayOfWeek
		}
		return txWorkouts.UpdateFields(id, fields)
	})
	if err != nil {
		return nil, err
	}

	return s.workoutRepo.GetByID(id)
}

// Delete removes a workout and, in the same transaction, every
// prescription and log row that belongs to it.
func (s *WorkoutService) Delete(id uint) error {
	if _, err := s.workoutRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: workout %d", ErrNotFound, id)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		txWorkouts := repository.NewWorkoutRepository(tx)
		txLogs := repository.NewLogRepository(tx)

		if err := txWorkouts.DeleteExercises(id); err != nil {
			return err
		}
		if err := txLogs.DeleteByWorkout(id); err != nil {
			return err
		}
		return txWorkouts.Delete(id)
	})
}

// AddExercises appends prescriptions to a workout, validating every
// referenced exercise. The batch is atomic.
func (s *WorkoutService) AddExercises(workoutID uint, prescriptions []dto.WorkoutExercisePrescription) ([]models.WorkoutExercise, error) {
	if _, err := s.workoutRepo.GetByID(workoutID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: workout %d", ErrNotFound, workoutID)
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		txWorkouts := repository.NewWorkoutRepository(tx)
		txExercises := repository.NewExerciseRepository(tx)

		for _, p := range prescriptions {
			if _, err := txExercises.GetByID(p.ExerciseID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: exercise %d does not exist", ErrValidation, p.ExerciseID)
				}
				return err
			}
			we := &models.WorkoutExercise{
				WorkoutID:     workoutID,
				ExerciseID:    p.ExerciseID,
				PlannedSets:   p.PlannedSets,
				PlannedReps:   p.PlannedReps,
				PlannedWeight: p.PlannedWeight,
				RestSeconds:   p.RestSeconds,
				Notes:         p.Notes,
			}
			if err := txWorkouts.AddExercise(we); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.workoutRepo.ListExercises(workoutID)
}

// ListExercises returns the prescriptions of a workout.
func (s *WorkoutService) ListExercises(workoutID uint) ([]models.WorkoutExercise, error) {
	if _, err := s.workoutRepo.GetByID(workoutID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: workout %d", ErrNotFound, workoutID)
		}
		return nil, err
	}
	return s.workoutRepo.ListExercises(workoutID)
}
