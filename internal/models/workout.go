// ABOUTME: Workout, WorkoutExercise and WorkoutSet models for training sessions.
// ABOUTME: WorkoutPatch carries partial updates applied as a shallow merge.
package models

import (
	"time"
)

// WorkoutSet is one set of an exercise inside a workout.
type WorkoutSet struct {
	Reps      int
	Weight    float64
	Rest      int // seconds
	Completed bool
}

// WorkoutExercise is an exercise performed within a workout.
type WorkoutExercise struct {
	ExerciseID     string
	Sets           []WorkoutSet
	Notes          *string
	PersonalRecord bool
}

// Workout represents a training session.
type Workout struct {
	ID        string
	Date      time.Time
	Exercises []WorkoutExercise
	Notes     *string
	Duration  int // minutes
	StartTime time.Time
	EndTime   *time.Time
	Type      string
	Completed bool
}

// NewWorkout creates a new Workout dated now with no exercises.
func NewWorkout(workoutType string) *Workout {
	now := time.Now()
	return &Workout{
		ID:        NewID(),
		Date:      now,
		Exercises: []WorkoutExercise{},
		StartTime: now,
		Type:      workoutType,
	}
}

// WithDate sets the workout date and start time.
func (w *Workout) WithDate(t time.Time) *Workout {
	w.Date = t
	w.StartTime = t
	return w
}

// WithDuration sets the duration in minutes.
func (w *Workout) WithDuration(minutes int) *Workout {
	w.Duration = minutes
	return w
}

// WithNotes sets notes on the workout.
func (w *Workout) WithNotes(notes string) *Workout {
	w.Notes = &notes
	return w
}

// WithExercise appends an exercise entry.
func (w *Workout) WithExercise(e WorkoutExercise) *Workout {
	w.Exercises = append(w.Exercises, e)
	return w
}

// Clone returns a deep copy so callers cannot alias stored slices.
func (w Workout) Clone() Workout {
	out := w
	out.Notes = clonePtr(w.Notes)
	out.EndTime = clonePtr(w.EndTime)
	if w.Exercises != nil {
		out.Exercises = make([]WorkoutExercise, len(w.Exercises))
		for i, e := range w.Exercises {
			out.Exercises[i] = e.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the entry and its sets.
func (e WorkoutExercise) Clone() WorkoutExercise {
	out := e
	out.Notes = clonePtr(e.Notes)
	if e.Sets != nil {
		out.Sets = append([]WorkoutSet(nil), e.Sets...)
	}
	return out
}

// WorkoutPatch is a partial update. Nil fields are left unchanged; a non-nil
// Exercises slice replaces the entries, an empty one clears them.
type WorkoutPatch struct {
	Date      *time.Time
	Exercises []WorkoutExercise
	Notes     *string
	Duration  *int
	StartTime *time.Time
	EndTime   *time.Time
	Type      *string
	Completed *bool
}

// Apply merges the patch into w.
func (p WorkoutPatch) Apply(w *Workout) {
	if p.Date != nil {
		w.Date = *p.Date
	}
	if p.Exercises != nil {
		w.Exercises = make([]WorkoutExercise, len(p.Exercises))
		for i, e := range p.Exercises {
			w.Exercises[i] = e.Clone()
		}
	}
	if p.Notes != nil {
		w.Notes = clonePtr(p.Notes)
	}
	if p.Duration != nil {
		w.Duration = *p.Duration
	}
	if p.StartTime != nil {
		w.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		w.EndTime = clonePtr(p.EndTime)
	}
	if p.Type != nil {
		w.Type = *p.Type
	}
	if p.Completed != nil {
		w.Completed = *p.Completed
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
