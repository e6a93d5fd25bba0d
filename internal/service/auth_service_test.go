package service

import (
	"testing"
	"time"

	"gymtrack/internal/dto"
	"gymtrack/internal/models"
	"gymtrack/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	jwtManager := utils.NewJWTManager("test-secret", "HS256", time.Hour)
	return NewAuthService(db, jwtManager), db
}

func createLoginUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Username:     "alice",
		Email:        email,
		PasswordHash: hash,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLoginSuccess(t *testing.T) {
	svc, db := newAuthFixture(t)
	user := createLoginUser(t, db, "alice@example.com", "supersecret")

	resp, err := svc.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestLoginWrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	svc, db := newAuthFixture(t)
	createLoginUser(t, db, "alice@example.com", "supersecret")

	_, errWrongPassword := svc.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrongpassword",
	})
	_, errUnknownEmail := svc.Login(&dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, errWrongPassword, ErrAuthenticationFailed)
	assert.ErrorIs(t, errUnknownEmail, ErrAuthenticationFailed)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestChangePassword(t *testing.T) {
	svc, db := newAuthFixture(t)
	user := createLoginUser(t, db, "alice@example.com", "supersecret")

	err := svc.ChangePassword(user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "supersecret",
		NewPassword:     "evenmoresecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = svc.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "evenmoresecret",
	})
	assert.NoError(t, err)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc, db := newAuthFixture(t)
	user := createLoginUser(t, db, "alice@example.com", "supersecret")

	err := svc.ChangePassword(user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrongpassword",
		NewPassword:     "evenmoresecret",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChangePasswordSameAsCurrentRejected(t *testing.T) {
	svc, db := newAuthFixture(t)
	user := createLoginUser(t, db, "alice@example.com", "supersecret")

	err := svc.ChangePassword(user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "supersecret",
		NewPassword:     "supersecret",
	})
	assert.ErrorIs(t, err, ErrValidation)
}
