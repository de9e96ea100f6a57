// ABOUTME: Tests for Workout, WorkoutExercise and WorkoutPatch.
// ABOUTME: Validates constructors, deep copies and partial merges.
package models

import (
	"testing"
	"time"
)

func TestNewWorkout(t *testing.T) {
	w := NewWorkout("Push")

	if w.ID == "" {
		t.Error("expected ID to be set")
	}
	if w.Type != "Push" {
		t.Errorf("Type = %s, want Push", w.Type)
	}
	if w.Date.IsZero() || w.StartTime.IsZero() {
		t.Error("expected Date and StartTime to be set")
	}
	if w.Exercises == nil || len(w.Exercises) != 0 {
		t.Error("expected empty exercise list")
	}
}

func TestWorkoutBuilders(t *testing.T) {
	date := time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)
	w := NewWorkout("Legs").
		WithDate(date).
		WithDuration(45).
		WithNotes("heavy").
		WithExercise(WorkoutExercise{ExerciseID: "9", Sets: []WorkoutSet{{Reps: 5, Weight: 100}}})

	if !w.Date.Equal(date) || !w.StartTime.Equal(date) {
		t.Errorf("Date = %v, want %v", w.Date, date)
	}
	if w.Duration != 45 {
		t.Errorf("Duration = %d, want 45", w.Duration)
	}
	if w.Notes == nil || *w.Notes != "heavy" {
		t.Error("expected Notes to be heavy")
	}
	if len(w.Exercises) != 1 || w.Exercises[0].ExerciseID != "9" {
		t.Errorf("Exercises = %+v", w.Exercises)
	}
}

func TestWorkoutCloneIsDeep(t *testing.T) {
	w := NewWorkout("Pull").
		WithNotes("original").
		WithExercise(WorkoutExercise{ExerciseID: "5", Sets: []WorkoutSet{{Reps: 10, Weight: 50}}})

	c := w.Clone()
	c.Exercises[0].Sets[0].Reps = 99
	*c.Notes = "changed"

	if w.Exercises[0].Sets[0].Reps != 10 {
		t.Error("clone shares set storage with original")
	}
	if *w.Notes != "original" {
		t.Error("clone shares notes pointer with original")
	}
}

func TestWorkoutPatchApply(t *testing.T) {
	base := NewWorkout("Push").WithDuration(60).WithNotes("keep")
	base.Exercises = []WorkoutExercise{{ExerciseID: "1"}}

	tests := []struct {
		name  string
		patch WorkoutPatch
		check func(t *testing.T, w Workout)
	}{
		{
			name:  "empty patch changes nothing",
			patch: WorkoutPatch{},
			check: func(t *testing.T, w Workout) {
				if w.Duration != 60 || w.Type != "Push" || len(w.Exercises) != 1 {
					t.Errorf("unexpected change: %+v", w)
				}
			},
		},
		{
			name:  "completed and duration",
			patch: WorkoutPatch{Completed: ptr(true), Duration: ptr(75)},
			check: func(t *testing.T, w Workout) {
				if !w.Completed || w.Duration != 75 {
					t.Errorf("Completed=%v Duration=%d", w.Completed, w.Duration)
				}
				if w.Notes == nil || *w.Notes != "keep" {
					t.Error("notes should be untouched")
				}
			},
		},
		{
			name:  "empty exercises clears entries",
			patch: WorkoutPatch{Exercises: []WorkoutExercise{}},
			check: func(t *testing.T, w Workout) {
				if len(w.Exercises) != 0 {
					t.Errorf("Exercises = %+v, want empty", w.Exercises)
				}
			},
		},
		{
			name:  "type relabel",
			patch: WorkoutPatch{Type: ptr("Upper")},
			check: func(t *testing.T, w Workout) {
				if w.Type != "Upper" {
					t.Errorf("Type = %s, want Upper", w.Type)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := base.Clone()
			tt.patch.Apply(&w)
			tt.check(t, w)
			if w.ID != base.ID {
				t.Error("ID must never change")
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
