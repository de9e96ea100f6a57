// ABOUTME: Resolves full ids or unique id prefixes to workouts and goals.
// ABOUTME: Shared by the CLI and MCP server so users can type short ids.
package tracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/gymtrack/internal/models"
)

// ErrNoMatch is returned when no record matches an id or prefix.
var ErrNoMatch = errors.New("no match")

// ErrAmbiguous is returned when a prefix matches more than one record.
var ErrAmbiguous = errors.New("ambiguous id prefix")

// ResolveWorkout finds the workout whose id equals or starts with idOrPrefix.
func (t *Tracker) ResolveWorkout(idOrPrefix string) (models.Workout, error) {
	all := t.Workouts.Workouts()
	i, err := resolve(len(all), func(i int) string { return all[i].ID }, idOrPrefix)
	if err != nil {
		return models.Workout{}, fmt.Errorf("workout %q: %w", idOrPrefix, err)
	}
	return all[i], nil
}

// ResolveGoal finds the goal whose id equals or starts with idOrPrefix.
func (t *Tracker) ResolveGoal(idOrPrefix string) (models.Goal, error) {
	all := t.Goals.Goals()
	i, err := resolve(len(all), func(i int) string { return all[i].ID }, idOrPrefix)
	if err != nil {
		return models.Goal{}, fmt.Errorf("goal %q: %w", idOrPrefix, err)
	}
	return all[i], nil
}

// ResolveMilestone finds a milestone of g by id or unique prefix.
func ResolveMilestone(g models.Goal, idOrPrefix string) (models.Milestone, error) {
	i, err := resolve(len(g.Milestones), func(i int) string { return g.Milestones[i].ID }, idOrPrefix)
	if err != nil {
		return models.Milestone{}, fmt.Errorf("milestone %q: %w", idOrPrefix, err)
	}
	return g.Milestones[i], nil
}

// resolve prefers an exact match, then a single prefix match.
func resolve(n int, id func(int) string, idOrPrefix string) (int, error) {
	if idOrPrefix == "" {
		return -1, ErrNoMatch
	}
	found := -1
	for i := 0; i < n; i++ {
		if id(i) == idOrPrefix {
			return i, nil
		}
		if strings.HasPrefix(id(i), idOrPrefix) {
			if found >= 0 {
				return -1, ErrAmbiguous
			}
			found = i
		}
	}
	if found < 0 {
		return -1, ErrNoMatch
	}
	return found, nil
}
