package service

import (
	"errors"
	"fmt"

	"gymtrack/internal/dto"
	"gymtrack/internal/models"
	"gymtrack/internal/repository"
	"gymtrack/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserService account management.
type UserService struct {
	db             *gorm.DB
	userRepo       *repository.UserRepository
	logRepo        *repository.LogRepository
	workoutService *WorkoutService
	logger         *logrus.Logger
}

// NewUserService creates a user service.
func NewUserService(db *gorm.DB, workoutService *WorkoutService, logger *logrus.Logger) *UserService {
	return &UserService{
		db:             db,
		userRepo:       repository.NewUserRepository(db),
		logRepo:        repository.NewLogRepository(db),
		workoutService: workoutService,
		logger:         logger,
	}
}

// Create registers an account after checking email and username
// uniqueness, then seeds the default workouts best-effort: a seeding
// failure is logged and the account stays valid.
func (s *UserService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	taken, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	taken, err = s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: username already registered", ErrConflict)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:          req.Username,
		Email:             req.Email,
		PasswordHash:      hashedPassword,
		Gender:            req.Gender,
		Birthdate:         req.Birthdate,
		HeightCm:          req.HeightCm,
		WeightKg:          req.WeightKg,
		BodyFatPercentage: req.BodyFatPercentage,
		ActivityLevel:     req.ActivityLevel,
		Goal:              req.Goal,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.workoutService.SeedDefaults(user.ID); err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).
			Warn("default workout seeding failed, account created without starter workouts")
	}

	return user, nil
}

// Get fetches a user by id.
func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}
	return user, nil
}

// List returns a page of users plus the total count.
func (s *UserService) List(offset, limit int) ([]models.User, int64, error) {
	return s.userRepo.List(offset, limit)
}

// Update applies a partial field merge to a user.
func (s *UserService) Update(id uint, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.ExistsByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		user.Email = *req.Email
	}
	if req.Username != nil && *req.Username != user.Username {
		taken, err := s.userRepo.ExistsByUsername(*req.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: username already registered", ErrConflict)
		}
		user.Username = *req.Username
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.Birthdate != nil {
		user.Birthdate = req.Birthdate
	}
	if req.HeightCm != nil {
		user.HeightCm = req.HeightCm
	}
	if req.WeightKg != nil {
		user.WeightKg = req.WeightKg
	}
	if req.BodyFatPercentage != nil {
		user.BodyFatPercentage = req.BodyFatPercentage
	}
	if req.ActivityLevel != nil {
		user.ActivityLevel = req.ActivityLevel
	}
	if req.Goal != nil {
		user.Goal = req.Goal
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account and, in the same transaction, every workout,
// prescription and log the account owns.
func (s *UserService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		txWorkouts := repository.NewWorkoutRepository(tx)
		txLogs := repository.NewLogRepository(tx)

		if err := txLogs.DeleteByUser(id); err != nil {
			return err
		}
		if err := txWorkouts.DeleteExercisesByUser(id); err != nil {
			return err
		}
		if err := txWorkouts.DeleteByUser(id); err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}

// ListLogs returns a page of a user's logs, optionally filtered by
// exercise.
func (s *UserService) ListLogs(userID uint, offset, limit int, exerciseID *uint) ([]models.UserExerciseLog, int64, error) {
	if _, err := s.Get(userID); err != nil {
		return nil, 0, err
	}
	return s.logRepo.List(userID, offset, limit, exerciseID, nil)
}
