// ABOUTME: Per-exercise history across workouts and one-rep-max estimates.
// ABOUTME: Uses the Epley formula: weight * (1 + reps/30).
package workouts

import (
	"sort"
	"time"

	"github.com/harperreed/gymtrack/internal/models"
)

// DefaultHistoryLimit is the number of history entries shown when no limit is given.
const DefaultHistoryLimit = 10

// HistoryEntry is a workout entry annotated with its workout's date and ID.
type HistoryEntry struct {
	models.WorkoutExercise
	Date      time.Time
	WorkoutID string
}

// ExerciseHistory returns entries for an exercise, newest workout first,
// truncated to limit. A limit of zero or less yields an empty slice.
func (s *Store) ExerciseHistory(exerciseID string, limit int) []HistoryEntry {
	if limit <= 0 {
		return []HistoryEntry{}
	}
	var entries []HistoryEntry
	for _, w := range s.workouts {
		for _, e := range w.Exercises {
			if e.ExerciseID == exerciseID {
				entries = append(entries, HistoryEntry{
					WorkoutExercise: e.Clone(),
					Date:            w.Date,
					WorkoutID:       w.ID,
				})
			}
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	if entries == nil {
		return []HistoryEntry{}
	}
	return entries
}

// PersonalBest returns the highest estimated one-rep max across every set
// logged for an exercise.
func (s *Store) PersonalBest(exerciseID string) (float64, bool) {
	best, found := 0.0, false
	for _, w := range s.workouts {
		for _, e := range w.Exercises {
			if e.ExerciseID != exerciseID {
				continue
			}
			for _, set := range e.Sets {
				if est := Calculate1RM(set.Weight, set.Reps); !found || est > best {
					best, found = est, true
				}
			}
		}
	}
	return best, found
}

// Calculate1RM estimates a one-rep max with the Epley formula. Inputs are not validated.
func Calculate1RM(weight float64, reps int) float64 {
	return weight * (1 + float64(reps)/30)
}
