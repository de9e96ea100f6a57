// ABOUTME: Exercise catalog with default bootstrap and muscle-group grouping.
// ABOUTME: Lookup resolves the exercise IDs referenced by workout entries.
package catalog

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/harperreed/gymtrack/internal/models"
)

// Storage persists the exercise collection.
type Storage interface {
	LoadExercises() ([]models.Exercise, bool, error)
	SaveExercises(exercises []models.Exercise) error
}

// Catalog holds the exercise reference list in insertion order.
type Catalog struct {
	storage   Storage
	logger    *log.Logger
	exercises []models.Exercise
}

// New creates an empty catalog. Call Initialize before use.
func New(storage Storage, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Catalog{storage: storage, logger: logger}
}

// Initialize loads the stored catalog, seeding the defaults when none exists.
func (c *Catalog) Initialize() error {
	exercises, ok, err := c.storage.LoadExercises()
	if err != nil {
		return fmt.Errorf("load exercises: %w", err)
	}
	if ok {
		c.exercises = exercises
		return nil
	}

	c.exercises = DefaultExercises()
	c.logger.Info("seeded default exercises", "count", len(c.exercises))
	return c.persist()
}

// Exercises returns a snapshot of the catalog.
func (c *Catalog) Exercises() []models.Exercise {
	out := make([]models.Exercise, len(c.exercises))
	for i, e := range c.exercises {
		out[i] = e.Clone()
	}
	return out
}

// Add assigns a fresh ID to the exercise, appends it and persists the catalog.
// A missing type defaults to strength; an unknown one is rejected.
func (c *Catalog) Add(e models.Exercise) (models.Exercise, error) {
	e = e.Clone()
	e.Normalize()
	if err := e.Validate(); err != nil {
		return models.Exercise{}, err
	}
	e.ID = models.NewID()
	c.exercises = append(c.exercises, e)
	if err := c.persist(); err != nil {
		return e, err
	}
	return e.Clone(), nil
}

// Lookup returns the exercise with the given ID.
func (c *Catalog) Lookup(id string) (models.Exercise, bool) {
	for _, e := range c.exercises {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return models.Exercise{}, false
}

// ByMuscleGroup groups exercises by muscle group, keeping catalog order within each group.
func (c *Catalog) ByMuscleGroup() map[string][]models.Exercise {
	groups := make(map[string][]models.Exercise)
	for _, e := range c.exercises {
		groups[e.MuscleGroup] = append(groups[e.MuscleGroup], e.Clone())
	}
	return groups
}

// MuscleGroups returns group names in the order they first appear.
func (c *Catalog) MuscleGroups() []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range c.exercises {
		if !seen[e.MuscleGroup] {
			seen[e.MuscleGroup] = true
			names = append(names, e.MuscleGroup)
		}
	}
	return names
}

func (c *Catalog) persist() error {
	if err := c.storage.SaveExercises(c.exercises); err != nil {
		return fmt.Errorf("save exercises: %w", err)
	}
	return nil
}
