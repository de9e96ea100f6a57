// ABOUTME: Derived read-only views over workouts and body metrics.
// ABOUTME: Views are recomputed on every call and never persisted.
package workouts

import (
	"time"

	"github.com/harperreed/gymtrack/internal/models"
)

// TodayWorkout returns the first workout dated on the current calendar day.
func (s *Store) TodayWorkout() (models.Workout, bool) {
	now := s.now()
	for _, w := range s.workouts {
		if sameDay(w.Date, now) {
			return w.Clone(), true
		}
	}
	return models.Workout{}, false
}

// ThisWeekWorkouts returns workouts dated within the current week, both bounds inclusive.
func (s *Store) ThisWeekWorkouts() []models.Workout {
	start, end := WeekBounds(s.now(), s.weekStart)
	out := []models.Workout{}
	for _, w := range s.workouts {
		if !w.Date.Before(start) && !w.Date.After(end) {
			out = append(out, w.Clone())
		}
	}
	return out
}

// WeeklyFrequency is this week's workout count as a percentage of seven days.
func (s *Store) WeeklyFrequency() float64 {
	return float64(len(s.ThisWeekWorkouts())) / 7 * 100
}

// TotalWorkouts returns the number of stored workouts.
func (s *Store) TotalWorkouts() int {
	return len(s.workouts)
}

// ExercisesByMuscleGroup groups the catalog by muscle group.
func (s *Store) ExercisesByMuscleGroup() map[string][]models.Exercise {
	return s.catalog.ByMuscleGroup()
}

// LatestBodyMetrics returns the metric with the greatest date. On ties the
// earliest stored record wins. Stored order is left untouched.
func (s *Store) LatestBodyMetrics() (models.BodyMetric, bool) {
	if len(s.bodyMetrics) == 0 {
		return models.BodyMetric{}, false
	}
	latest := 0
	for i, m := range s.bodyMetrics[1:] {
		if m.Date.After(s.bodyMetrics[latest].Date) {
			latest = i + 1
		}
	}
	return s.bodyMetrics[latest].Clone(), true
}

// WeekBounds returns the first and last instant of the week containing now.
func WeekBounds(now time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	offset := (int(today.Weekday()) - int(weekStart) + 7) % 7
	start := today.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// sameDay compares calendar days in the location of ref.
func sameDay(t, ref time.Time) bool {
	ty, tm, td := t.In(ref.Location()).Date()
	ry, rm, rd := ref.Date()
	return ty == ry && tm == rm && td == rd
}
