package service

import (
	"testing"
	"time"

	"gymtrack/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogCreateDerivesVolume(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	bench := createTestExercise(t, db, "Bench press")

	log, err := svc.Create(user.ID, &dto.CreateLogRequest{
		ExerciseID: bench.ID,
		SetNumber:  1,
		Reps:       10,
		Weight:     floatPtr(20),
	})
	require.NoError(t, err)

	require.NotNil(t, log.Volume)
	assert.Equal(t, 200.0, *log.Volume)
}

func TestLogCreateNilWeightVolumeZero(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	pullup := createTestExercise(t, db, "Pull-up")

	log, err := svc.Create(user.ID, &dto.CreateLogRequest{
		ExerciseID: pullup.ID,
		SetNumber:  1,
		Reps:       8,
	})
	require.NoError(t, err)

	require.NotNil(t, log.Volume)
	assert.Zero(t, *log.Volume)
}

func TestLogCreateExplicitVolumeKept(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	bench := createTestExercise(t, db, "Bench press")

	log, err := svc.Create(user.ID, &dto.CreateLogRequest{
		ExerciseID: bench.ID,
		SetNumber:  1,
		Reps:       10,
		Weight:     floatPtr(20),
		Volume:     floatPtr(500),
	})
	require.NoError(t, err)

	require.NotNil(t, log.Volume)
	assert.Equal(t, 500.0, *log.Volume)
}

func TestLogCreateValidatesReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	bench := createTestExercise(t, db, "Bench press")

	_, err := svc.Create(999, &dto.CreateLogRequest{
		ExerciseID: bench.ID,
		SetNumber:  1,
		Reps:       10,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(user.ID, &dto.CreateLogRequest{
		ExerciseID: 999,
		SetNumber:  1,
		Reps:       10,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(user.ID, &dto.CreateLogRequest{
		ExerciseID: bench.ID,
		WorkoutID:  uintPtr(999),
		SetNumber:  1,
		Reps:       10,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogCreateDefaultsDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	bench := createTestExercise(t, db, "Bench press")

	before := time.Now()
	log, err := svc.Create(user.ID, &dto.CreateLogRequest{
		ExerciseID: bench.ID,
		SetNumber:  1,
		Reps:       10,
	})
	require.NoError(t, err)
	assert.False(t, log.Date.Before(before.Add(-time.Second)))
}

func TestLogAddToWorkoutStampsWorkoutID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	bench := createTestExercise(t, db, "Bench press")
	workout := createTestWorkout(t, db, user.ID, "Push day", nil)

	logs, err := svc.AddToWorkout(user.ID, workout.ID, []dto.CreateLogRequest{
		{ExerciseID: bench.ID, SetNumber: 1, Reps: 8, Weight: floatPtr(60)},
		{ExerciseID: bench.ID, SetNumber: 2, Reps: 8, Weight: floatPtr(60)},
	})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, l := range logs {
		require.NotNil(t, l.WorkoutID)
		assert.Equal(t, workout.ID, *l.WorkoutID)
	}

	listed, total, err := svc.ListForWorkout(workout.ID, 0, 100)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.EqualValues(t, 2, total)
}

func TestLogAddToWorkoutMissingWorkoutNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	bench := createTestExercise(t, db, "Bench press")

	_, err := svc.AddToWorkout(user.ID, 999, []dto.CreateLogRequest{
		{ExerciseID: bench.ID, SetNumber: 1, Reps: 8},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogUpdatePartialMerge(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	bench := createTestExercise(t, db, "Bench press")

	log, err := svc.Create(user.ID, &dto.CreateLogRequest{
		ExerciseID: bench.ID,
		SetNumber:  1,
		Reps:       10,
		Weight:     floatPtr(60),
	})
	require.NoError(t, err)

	updated, err := svc.Update(log.ID, &dto.UpdateLogRequest{
		Reps:  intPtr(12),
		Notes: strPtr("felt strong"),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Reps)
	require.NotNil(t, updated.Weight)
	assert.Equal(t, 60.0, *updated.Weight)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "felt strong", *updated.Notes)
}

func TestLogDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	bench := createTestExercise(t, db, "Bench press")

	log, err := svc.Create(user.ID, &dto.CreateLogRequest{
		ExerciseID: bench.ID,
		SetNumber:  1,
		Reps:       10,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(log.ID))

	_, err = svc.Get(log.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(log.ID), ErrNotFound)
}
