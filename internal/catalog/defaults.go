// ABOUTME: Default exercise catalog seeded on first run.
// ABOUTME: IDs are fixed so sample workouts can reference them.
package catalog

import "github.com/harperreed/gymtrack/internal/models"

// DefaultExercises returns the 19 built-in strength exercises.
func DefaultExercises() []models.Exercise {
	defs := []struct {
		id, name, group string
	}{
		{"1", "Bench Press", "Chest"},
		{"2", "Incline Dumbbell Press", "Chest"},
		{"3", "Dumbbell Fly", "Chest"},
		{"4", "Cable Crossover", "Chest"},
		{"5", "Pull-Up", "Back"},
		{"6", "Barbell Row", "Back"},
		{"7", "Lat Pulldown", "Back"},
		{"8", "Deadlift", "Back"},
		{"9", "Squat", "Legs"},
		{"10", "Leg Press", "Legs"},
		{"11", "Leg Extension", "Legs"},
		{"12", "Lying Leg Curl", "Legs"},
		{"13", "Overhead Press", "Shoulders"},
		{"14", "Lateral Raise", "Shoulders"},
		{"15", "Rear Delt Fly", "Shoulders"},
		{"16", "Barbell Curl", "Biceps"},
		{"17", "Hammer Curl", "Biceps"},
		{"18", "Triceps Pushdown", "Triceps"},
		{"19", "Skull Crusher", "Triceps"},
	}

	out := make([]models.Exercise, 0, len(defs))
	for _, d := range defs {
		out = append(out, models.Exercise{
			ID:          d.id,
			Name:        d.name,
			MuscleGroup: d.group,
			Type:        models.ExerciseStrength,
		})
	}
	return out
}
