package service

import (
	"testing"

	"gymtrack/internal/dto"
	"gymtrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *WorkoutService) {
	t.Helper()
	db := setupTestDB(t)
	logger := testLogger()
	workoutService := NewWorkoutService(db, logger)
	return NewUserService(db, workoutService, logger), workoutService
}

func TestUserCreateSeedsDefaultWorkouts(t *testing.T) {
	db := setupTestDB(t)
	logger := testLogger()
	workoutService := NewWorkoutService(db, logger)
	userService := NewUserService(db, workoutService, logger)

	for _, name := range []string{
		"Bench press", "Overhead press", "Incline dumbbell press", "Triceps pushdown",
		"Deadlift", "Pull-up", "Barbell row", "Biceps curl",
		"Squat", "Leg press", "Leg curl", "Standing calf raise",
	} {
		createTestExercise(t, db, name)
	}

	user, err := userService.Create(&dto.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	workouts, total, err := workoutService.List(0, 100, &user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)

	byName := map[string]models.Workout{}
	for _, w := range workouts {
		byName[w.Name] = w
	}
	assert.Contains(t, byName, "Push day")
	assert.Contains(t, byName, "Pull day")
	assert.Contains(t, byName, "Insane leg day")
	assert.Contains(t, byName, "Full body")

	push, err := workoutService.Get(byName["Push day"].ID)
	require.NoError(t, err)
	assert.Len(t, push.WorkoutExercises, 4)

	// Plank is not in the catalog, so Full body seeds with one
	// prescription skipped.
	full, err := workoutService.Get(byName["Full body"].ID)
	require.NoError(t, err)
	assert.Len(t, full.WorkoutExercises, 3)
}

func TestUserCreateSurvivesSeedingWithEmptyCatalog(t *testing.T) {
	userService, workoutService := newUserService(t)

	user, err := userService.Create(&dto.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	// The workouts exist with zero prescriptions.
	workouts, total, err := workoutService.List(0, 100, &user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	for _, w := range workouts {
		full, err := workoutService.Get(w.ID)
		require.NoError(t, err)
		assert.Empty(t, full.WorkoutExercises)
	}
}

func TestUserCreateDuplicateEmailConflicts(t *testing.T) {
	userService, _ := newUserService(t)

	_, err := userService.Create(&dto.CreateUserRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = userService.Create(&dto.CreateUserRequest{
		Username: "carol2",
		Email:    "carol@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = userService.Create(&dto.CreateUserRequest{
		Username: "carol",
		Email:    "other@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserUpdatePartialMerge(t *testing.T) {
	userService, _ := newUserService(t)

	user, err := userService.Create(&dto.CreateUserRequest{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	updated, err := userService.Update(user.ID, &dto.UpdateUserRequest{
		WeightKg: floatPtr(82.5),
		Goal:     strPtr(models.GoalGainMuscle),
	})
	require.NoError(t, err)
	assert.Equal(t, "dave", updated.Username)
	require.NotNil(t, updated.WeightKg)
	assert.Equal(t, 82.5, *updated.WeightKg)
	require.NotNil(t, updated.Goal)
	assert.Equal(t, models.GoalGainMuscle, *updated.Goal)
}

func TestUserUpdateToTakenEmailConflicts(t *testing.T) {
	userService, _ := newUserService(t)

	_, err := userService.Create(&dto.CreateUserRequest{
		Username: "erin",
		Email:    "erin@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	frank, err := userService.Create(&dto.CreateUserRequest{
		Username: "frank",
		Email:    "frank@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = userService.Update(frank.ID, &dto.UpdateUserRequest{
		Email: strPtr("erin@example.com"),
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	logger := testLogger()
	workoutService := NewWorkoutService(db, logger)
	userService := NewUserService(db, workoutService, logger)
	logService := NewLogService(db)

	user := createTestUser(t, db, "grace", "grace@example.com")
	exercise := createTestExercise(t, db, "Squat")
	workout := createTestWorkout(t, db, user.ID, "Leg day", nil)

	_, err := workoutService.AddExercises(workout.ID, []dto.WorkoutExercisePrescription{
		{ExerciseID: exercise.ID, PlannedSets: intPtr(5)},
	})
	require.NoError(t, err)

	_, err = logService.Create(user.ID, &dto.CreateLogRequest{
		ExerciseID: exercise.ID,
		WorkoutID:  &workout.ID,
		SetNumber:  1,
		Reps:       5,
		Weight:     floatPtr(100),
	})
	require.NoError(t, err)

	require.NoError(t, userService.Delete(user.ID))

	var users, workouts, prescriptions, logs int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Workout{}).Count(&workouts).Error)
	require.NoError(t, db.Model(&models.WorkoutExercise{}).Count(&prescriptions).Error)
	require.NoError(t, db.Model(&models.UserExerciseLog{}).Count(&logs).Error)
	assert.Zero(t, users)
	assert.Zero(t, workouts)
	assert.Zero(t, prescriptions)
	assert.Zero(t, logs)

	// The exercise catalog is untouched.
	var exercises int64
	require.NoError(t, db.Model(&models.Exercise{}).Count(&exercises).Error)
	assert.EqualValues(t, 1, exercises)
}

func TestUserListPagination(t *testing.T) {
	userService, _ := newUserService(t)

	for _, name := range []string{"u1", "u2", "u3", "u4", "u5"} {
		_, err := userService.Create(&dto.CreateUserRequest{
			Username: name,
			Email:    name + "@example.com",
			Password: "supersecret",
		})
		require.NoError(t, err)
	}

	users, total, err := userService.List(0, 2)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.EqualValues(t, 5, total)

	users, total, err = userService.List(4, 2)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.EqualValues(t, 5, total)
}

func TestUserGetMissingNotFound(t *testing.T) {
	userService, _ := newUserService(t)

	_, err := userService.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}
