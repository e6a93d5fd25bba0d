package service

import (
	"errors"
	"fmt"

	"gymtrack/internal/dto"
	"gymtrack/internal/repository"
	"gymtrack/internal/utils"

	"gorm.io/gorm"
)

// AuthService credential verification, token issuance and password
// changes. Unknown email and wrong password are deliberately not
// distinguished to the caller.
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates an auth service.
func NewAuthService(db *gorm.DB, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   repository.NewUserRepository(db),
		jwtManager: jwtManager,
	}
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	if err := utils.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, ErrAuthenticationFailed
	}

	token, err := s.jwtManager.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *user,
	}, nil
}

// ChangePassword re-verifies the current password, rejects a new
// password equal to the old one, then re-hashes and stores.
func (s *AuthService) ChangePassword(userID uint, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return err
	}

	if err := utils.CheckPassword(req.CurrentPassword, user.PasswordHash); err != nil {
		return fmt.Errorf("%w: current password is incorrect", ErrValidation)
	}
	if req.NewPassword == req.CurrentPassword {
		return fmt.Errorf("%w: new password must be different from current password", ErrValidation)
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = hashed
	return s.userRepo.Update(user)
}
