package service

import (
	"fmt"
	"io"
	"testing"
	"time"

	"gymtrack/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database, migrated and isolated
// per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

// testLogger returns a logger that swallows output.
func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// createTestUser inserts a user row directly.
func createTestUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhashnotarealhash1234",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createTestExercise inserts an exercise row directly.
func createTestExercise(t *testing.T, db *gorm.DB, name string) *models.Exercise {
	t.Helper()

	exercise := &models.Exercise{Name: name}
	require.NoError(t, db.Create(exercise).Error)
	return exercise
}

// createTestWorkout inserts a workout row directly.
func createTestWorkout(t *testing.T, db *gorm.DB, userID uint, name string, dayOfWeek *int) *models.Workout {
	t.Helper()

	workout := &models.Workout{
		UserID:    userID,
		Name:      name,
		Date:      time.Now(),
		DayOfWeek: dayOfWeek,
	}
	require.NoError(t, db.Create(workout).Error)
	return workout
}

func intPtr(v int) *int             { return &v }
func uintPtr(v uint) *uint          { return &v }
func floatPtr(v float64) *float64   { return &v }
func strPtr(v string) *string       { return &v }
func timePtr(v time.Time) *time.Time { return &v }
