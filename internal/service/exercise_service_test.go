package service

import (
	"testing"

	"gymtrack/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseCreateDuplicateNameConflicts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExerciseService(db)

	_, err := svc.Create(&dto.CreateExerciseRequest{Name: "Squat"})
	require.NoError(t, err)

	_, err = svc.Create(&dto.CreateExerciseRequest{Name: "Squat"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestExerciseSearchIgnoresCaseAndAccents(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExerciseService(db)

	createTestExercise(t, db, "Émincé press")
	createTestExercise(t, db, "Bench press")
	createTestExercise(t, db, "Squat")

	matches, err := svc.SearchByName("press")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = svc.SearchByName("EMINCE")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Émincé press", matches[0].Name)

	matches, err = svc.SearchByName("émincé")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestExerciseSearchNoMatchesEmptySlice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExerciseService(db)
	createTestExercise(t, db, "Squat")

	matches, err := svc.SearchByName("deadlift")
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestExerciseListByMuscleGroup(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExerciseService(db)

	_, err := svc.Create(&dto.CreateExerciseRequest{Name: "Squat", MuscleGroup: strPtr("legs")})
	require.NoError(t, err)
	_, err = svc.Create(&dto.CreateExerciseRequest{Name: "Leg press", MuscleGroup: strPtr("legs")})
	require.NoError(t, err)
	_, err = svc.Create(&dto.CreateExerciseRequest{Name: "Bench press", MuscleGroup: strPtr("chest")})
	require.NoError(t, err)

	legs, err := svc.ListByMuscleGroup("legs")
	require.NoError(t, err)
	assert.Len(t, legs, 2)
}

func TestExerciseListCardio(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExerciseService(db)

	_, err := svc.Create(&dto.CreateExerciseRequest{Name: "Running", IsCardio: true})
	require.NoError(t, err)
	_, err = svc.Create(&dto.CreateExerciseRequest{Name: "Squat"})
	require.NoError(t, err)

	cardio, err := svc.ListCardio()
	require.NoError(t, err)
	require.Len(t, cardio, 1)
	assert.Equal(t, "Running", cardio[0].Name)
}

func TestExerciseUpdateRenameToTakenNameConflicts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExerciseService(db)

	_, err := svc.Create(&dto.CreateExerciseRequest{Name: "Squat"})
	require.NoError(t, err)
	bench, err := svc.Create(&dto.CreateExerciseRequest{Name: "Bench press"})
	require.NoError(t, err)

	_, err = svc.Update(bench.ID, &dto.UpdateExerciseRequest{Name: strPtr("Squat")})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestExercisePagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExerciseService(db)

	for _, name := range []string{"e1", "e2", "e3", "e4", "e5"} {
		_, err := svc.Create(&dto.CreateExerciseRequest{Name: name})
		require.NoError(t, err)
	}

	exercises, total, err := svc.List(0, 2)
	require.NoError(t, err)
	assert.Len(t, exercises, 2)
	assert.EqualValues(t, 5, total)
}

func TestExerciseDeleteMissingNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExerciseService(db)

	assert.ErrorIs(t, svc.Delete(42), ErrNotFound)
}
