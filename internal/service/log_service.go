package service

import (
	"errors"
	"fmt"
	"time"

	"gymtrack/internal/dto"
	"gymtrack/internal/models"
	"gymtrack/internal/repository"

	"gorm.io/gorm"
)

// LogService performed-set recording.
type LogService struct {
	logRepo      *repository.LogRepository
	userRepo     *repository.UserRepository
	exerciseRepo *repository.ExerciseRepository
	workoutRepo  *repository.WorkoutRepository
}

// NewLogService creates a log service.
func NewLogService(db *gorm.DB) *LogService {
	return &LogService{
		logRepo:      repository.NewLogRepository(db),
		userRepo:     repository.NewUserRepository(db),
		exerciseRepo: repository.NewExerciseRepository(db),
		workoutRepo:  repository.NewWorkoutRepository(db),
	}
}

// Create validates every referenced row, derives the volume when absent
// and inserts the log entry. Date defaults to now.
func (s *LogService) Create(userID uint, req *dto.CreateLogRequest) (*models.UserExerciseLog, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d does not exist", ErrValidation, userID)
		}
		return nil, err
	}
	if _, err := s.exerciseRepo.GetByID(req.ExerciseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: exercise %d does not exist", ErrValidation, req.ExerciseID)
		}
		return nil, err
	}
	if req.WorkoutID != nil {
		if _, err := s.workoutRepo.GetByID(*req.WorkoutID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: workout %d does not exist", ErrValidation, *req.WorkoutID)
			}
			return nil, err
		}
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	volume := req.Volume
	if volume == nil {
		weight := 0.0
		if req.Weight != nil {
			weight = *req.Weight
		}
		v := float64(req.Reps) * weight
		volume = &v
	}

	log := &models.UserExerciseLog{
		UserID:          userID,
		ExerciseID:      req.ExerciseID,
		WorkoutID:       req.WorkoutID,
		Date:            date,
		SetNumber:       req.SetNumber,
		Reps:            req.Reps,
		Weight:          req.Weight,
		RestSeconds:     req.RestSeconds,
		DurationSeconds: req.DurationSeconds,
		DistanceM:       req.DistanceM,
		Volume:          volume,
		Notes:           req.Notes,
	}
	if err := s.logRepo.Create(log); err != nil {
		return nil, err
	}

	return s.logRepo.GetByID(log.ID)
}

// AddToWorkout records a batch of sets against a workout for a user.
func (s *LogService) AddToWorkout(userID, workoutID uint, entries []dto.CreateLogRequest) ([]models.UserExerciseLog, error) {
	if _, err := s.workoutRepo.GetByID(workoutID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: workout %d", ErrNotFound, workoutID)
		}
		return nil, err
	}

	added := make([]models.UserExerciseLog, 0, len(entries))
	for _, entry := range entries {
		entry.WorkoutID = &workoutID
		log, err := s.Create(userID, &entry)
		if err != nil {
			return nil, err
		}
		added = append(added, *log)
	}
	return added, nil
}

// ListForWorkout returns the logs recorded against a workout.
func (s *LogService) ListForWorkout(workoutID uint, offset, limit int) ([]models.UserExerciseLog, int64, error) {
	workout, err := s.workoutRepo.GetByID(workoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, fmt.Errorf("%w: workout %d", ErrNotFound, workoutID)
		}
		return nil, 0, err
	}
	return s.logRepo.List(workout.UserID, offset, limit, nil, &workoutID)
}

// Get fetches a log entry by id.
func (s *LogService) Get(id uint) (*models.UserExerciseLog, error) {
	log, err := s.logRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: log %d", ErrNotFound, id)
		}
		return nil, err
	}
	return log, nil
}

// Update applies a partial field merge to a log entry.
func (s *LogService) Update(id uint, req *dto.UpdateLogRequest) (*models.UserExerciseLog, error) {
	log, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Reps != nil {
		log.Reps = *req.Reps
	}
	if req.Weight != nil {
		log.Weight = req.Weight
	}
	if req.RestSeconds != nil {
		log.RestSeconds = req.RestSeconds
	}
	if req.DurationSeconds != nil {
		log.DurationSeconds = req.DurationSeconds
	}
	if req.DistanceM != nil {
		log.DistanceM = req.DistanceM
	}
	if req.Volume != nil {
		log.Volume = req.Volume
	}
	if req.Notes != nil {
		log.Notes = req.Notes
	}

	if err := s.logRepo.Update(log); err != nil {
		return nil, err
	}
	return log, nil
}

// Delete removes a log entry.
func (s *LogService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.logRepo.Delete(id)
}
