package service

import (
	"errors"
	"time"

	"gymtrack/internal/models"
	"gymtrack/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// seedPrescription one catalog entry of a starter workout. Exercises are
// resolved by name against the exercise table at seed time.
type seedPrescription struct {
	Exercise    string
	Sets        int
	Reps        int
	RestSeconds int
}

// seedWorkout one starter workout of the default catalog.
type seedWorkout struct {
	Name          string
	Notes         string
	Prescriptions []seedPrescription
}

// defaultWorkouts is the static starter catalog created for every new
// account.
var defaultWorkouts = []seedWorkout{
	{
		Name:  "Push day",
		Notes: "Chest, shoulders and triceps",
		Prescriptions: []seedPrescription{
			{Exercise: "Bench press", Sets: 4, Reps: 8, RestSeconds: 120},
			{Exercise: "Overhead press", Sets: 3, Reps: 10, RestSeconds: 90},
			{Exercise: "Incline dumbbell press", Sets: 3, Reps: 10, RestSeconds: 90},
			{Exercise: "Triceps pushdown", Sets: 3, Reps: 12, RestSeconds: 60},
		},
	},
	{
		Name:  "Pull day",
		Notes: "Back and biceps",
		Prescriptions: []seedPrescription{
			{Exercise: "Deadlift", Sets: 3, Reps: 5, RestSeconds: 180},
			{Exercise: "Pull-up", Sets: 4, Reps: 8, RestSeconds: 120},
			{Exercise: "Barbell row", Sets: 3, Reps: 10, RestSeconds: 90},
			{Exercise: "Biceps curl", Sets: 3, Reps: 12, RestSeconds: 60},
		},
	},
	{
		Name:  "Insane leg day",
		Notes: "You asked for it",
		Prescriptions: []seedPrescription{
			{Exercise: "Squat", Sets: 5, Reps: 5, RestSeconds: 180},
			{Exercise: "Leg press", Sets: 4, Reps: 10, RestSeconds: 120},
			{Exercise: "Leg curl", Sets: 3, Reps: 12, RestSeconds: 90},
			{Exercise: "Standing calf raise", Sets: 4, Reps: 15, RestSeconds: 60},
		},
	},
	{
		Name:  "Full body",
		Notes: "Compound movements, whole body in one session",
		Prescriptions: []seedPrescription{
			{Exercise: "Squat", Sets: 3, Reps: 8, RestSeconds: 150},
			{Exercise: "Bench press", Sets: 3, Reps: 8, RestSeconds: 120},
			{Exercise: "Barbell row", Sets: 3, Reps: 8, RestSeconds: 120},
			{Exercise: "Plank", Sets: 3, Reps: 1, RestSeconds: 60},
		},
	},
}

// SeedDefaults creates the starter workouts for a new user in a single
// transaction. Catalog exercises missing from the exercise table are
// skipped with a warning; any write failure rolls back the whole batch.
// Callers treat a returned error as non-fatal for account creation.
func (s *WorkoutService) SeedDefaults(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		txWorkouts := repository.NewWorkoutRepository(tx)
		txExercises := repository.NewExerciseRepository(tx)

		for _, sw := range defaultWorkouts {
			notes := sw.Notes
			workout := &models.Workout{
				UserID: userID,
				Name:   sw.Name,
				Date:   time.Now(),
				Notes:  &notes,
			}
			if err := txWorkouts.Create(workout); err != nil {
				return err
			}

			for _, p := range sw.Prescriptions {
				exercise, err := txExercises.GetByName(p.Exercise)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						s.logger.WithFields(logrus.Fields{
							"workout":  sw.Name,
							"exercise": p.Exercise,
							"user_id":  userID,
						}).Warn("seed exercise not in catalog, skipping prescription")
						continue
					}
					return err
				}

				sets, reps, rest := p.Sets, p.Reps, p.RestSeconds
				we := &models.WorkoutExercise{
					WorkoutID:   workout.ID,
					ExerciseID:  exercise.ID,
					PlannedSets: &sets,
					PlannedReps: &reps,
					RestSeconds: &rest,
				}
				if err := txWorkouts.AddExercise(we); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
