// ABOUTME: Defaults and validity checks applied before entities are stored.
// ABOUTME: Anything passing Validate can be saved and loaded back unchanged.
package models

import (
	"errors"
	"fmt"
)

// ErrInvalid marks an entity that cannot be stored.
var ErrInvalid = errors.New("invalid")

// Normalize fills in the exercise type when it is missing.
func (e *Exercise) Normalize() {
	if e.Type == "" {
		e.Type = ExerciseStrength
	}
}

// Validate checks the exercise type.
func (e Exercise) Validate() error {
	if !IsValidExerciseType(string(e.Type)) {
		return fmt.Errorf("%w exercise type %q", ErrInvalid, e.Type)
	}
	return nil
}

// Validate checks that every entry references an exercise.
func (w Workout) Validate() error {
	for i, e := range w.Exercises {
		if e.ExerciseID == "" {
			return fmt.Errorf("%w workout entry %d: missing exercise id", ErrInvalid, i)
		}
	}
	return nil
}

// Normalize fills in a missing status, category or milestone ID.
func (g *Goal) Normalize() {
	if g.Status == "" {
		g.Status = GoalActive
	}
	if g.Category == "" {
		g.Category = GoalOther
	}
	if g.Milestones == nil {
		g.Milestones = []Milestone{}
	}
	assignMilestoneIDs(g.Milestones)
}

// Validate checks the status and category enums.
func (g Goal) Validate() error {
	if !IsValidGoalStatus(string(g.Status)) {
		return fmt.Errorf("%w goal status %q", ErrInvalid, g.Status)
	}
	if !IsValidGoalCategory(string(g.Category)) {
		return fmt.Errorf("%w goal category %q", ErrInvalid, g.Category)
	}
	return nil
}

func assignMilestoneIDs(ms []Milestone) {
	for i := range ms {
		if ms[i].ID == "" {
			ms[i].ID = NewID()
		}
	}
}
