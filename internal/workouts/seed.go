// ABOUTME: Sample workouts seeded on first run.
// ABOUTME: Entries reference the default catalog's fixed exercise IDs.
package workouts

import (
	"time"

	"github.com/harperreed/gymtrack/internal/models"
)

// SampleWorkouts returns four sessions relative to now: today, yesterday,
// two days ago (not completed) and a week ago.
func SampleWorkouts(now time.Time) []models.Workout {
	notes := "Strong session today!"
	sets := func(rest int, pairs ...[2]float64) []models.WorkoutSet {
		out := make([]models.WorkoutSet, 0, len(pairs))
		for _, p := range pairs {
			out = append(out, models.WorkoutSet{Reps: int(p[0]), Weight: p[1], Rest: rest, Completed: true})
		}
		return out
	}
	sample := func(daysAgo, minutes int, workoutType string, completed bool, exercises ...models.WorkoutExercise) models.Workout {
		date := now.AddDate(0, 0, -daysAgo)
		return models.Workout{
			ID:        models.NewID(),
			Date:      date,
			Exercises: exercises,
			Duration:  minutes,
			StartTime: date.Add(-time.Duration(minutes) * time.Minute),
			Type:      workoutType,
			Completed: completed,
		}
	}

	push := sample(0, 75, "Push", true,
		models.WorkoutExercise{ExerciseID: "1", Sets: sets(90, [2]float64{12, 60}, [2]float64{10, 65}, [2]float64{8, 70})},
		models.WorkoutExercise{ExerciseID: "13", Sets: sets(90, [2]float64{10, 40}, [2]float64{8, 45})},
	)
	push.Notes = &notes

	return []models.Workout{
		push,
		sample(1, 60, "Pull", true,
			models.WorkoutExercise{ExerciseID: "5", Sets: sets(90, [2]float64{12, 50}, [2]float64{10, 55})},
		),
		sample(2, 90, "Legs", false,
			models.WorkoutExercise{ExerciseID: "9", Sets: sets(120, [2]float64{10, 80}, [2]float64{8, 90})},
		),
		sample(7, 120, "Full Body", true,
			models.WorkoutExercise{ExerciseID: "1", Sets: sets(60, [2]float64{15, 50})},
		),
	}
}
