// ABOUTME: Exercise catalog model and ExerciseType enum.
// ABOUTME: Also provides the opaque identity generator shared by all entities.
package models

import (
	"github.com/google/uuid"
)

// ExerciseType classifies how an exercise is performed.
type ExerciseType string

const (
	ExerciseStrength    ExerciseType = "strength"
	ExerciseCardio      ExerciseType = "cardio"
	ExerciseFlexibility ExerciseType = "flexibility"
)

// AllExerciseTypes returns all valid exercise types.
var AllExerciseTypes = []ExerciseType{ExerciseStrength, ExerciseCardio, ExerciseFlexibility}

// IsValidExerciseType checks if a string is a valid exercise type.
func IsValidExerciseType(s string) bool {
	for _, et := range AllExerciseTypes {
		if string(et) == s {
			return true
		}
	}
	return false
}

// NewID returns a fresh opaque identity.
func NewID() string {
	return uuid.NewString()
}

// Exercise is an entry in the exercise catalog. Workouts reference it by ID only.
type Exercise struct {
	ID           string
	Name         string
	MuscleGroup  string
	Type         ExerciseType
	Instructions *string
	ImageURL     *string
}

// NewExercise creates a new Exercise with a generated ID.
func NewExercise(name, muscleGroup string, exerciseType ExerciseType) *Exercise {
	return &Exercise{
		ID:          NewID(),
		Name:        name,
		MuscleGroup: muscleGroup,
		Type:        exerciseType,
	}
}

// WithInstructions sets how-to text on the exercise.
func (e *Exercise) WithInstructions(instructions string) *Exercise {
	e.Instructions = &instructions
	return e
}

// WithImageURL sets a reference image on the exercise.
func (e *Exercise) WithImageURL(url string) *Exercise {
	e.ImageURL = &url
	return e
}

// Clone returns a copy that shares no pointers with e.
func (e Exercise) Clone() Exercise {
	out := e
	out.Instructions = clonePtr(e.Instructions)
	out.ImageURL = clonePtr(e.ImageURL)
	return out
}
