// ABOUTME: Tests for derived workout views.
// ABOUTME: Covers week windows, frequency, today and latest body metrics.
package workouts

import (
	"testing"
	"time"

	"github.com/harperreed/gymtrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekBounds(t *testing.T) {
	sunday := time.Date(2024, 3, 17, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		now       time.Time
		weekStart time.Weekday
		wantStart time.Time
	}{
		{"wednesday monday-start", wednesday, time.Monday, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{"wednesday sunday-start", wednesday, time.Sunday, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"sunday monday-start", sunday, time.Monday, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{"sunday sunday-start", sunday, time.Sunday, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekBounds(tt.now, tt.weekStart)
			assert.True(t, start.Equal(tt.wantStart), "start = %v", start)
			assert.True(t, end.Equal(tt.wantStart.AddDate(0, 0, 7).Add(-time.Nanosecond)), "end = %v", end)
		})
	}
}

func TestThisWeekWorkoutsBoundsAreInclusive(t *testing.T) {
	env := setupStore(t, false)
	start, end := WeekBounds(wednesday, time.Monday)

	for _, d := range []time.Time{start.Add(-time.Nanosecond), start, end, end.Add(time.Nanosecond)} {
		_, err := env.store.Create(*models.NewWorkout("Edge").WithDate(d))
		require.NoError(t, err)
	}

	week := env.store.ThisWeekWorkouts()
	require.Len(t, week, 2)
	assert.True(t, week[0].Date.Equal(start))
	assert.True(t, week[1].Date.Equal(end))
}

func TestThisWeekFollowsWeekStartPreference(t *testing.T) {
	sunday := time.Date(2024, 3, 17, 10, 0, 0, 0, time.UTC)

	monday := setupStore(t, true)
	monday.clock.t = sunday
	// Samples were dated relative to Wednesday; reseed relative to Sunday.
	require.NoError(t, monday.adapter.Reset("workouts"))
	require.NoError(t, monday.store.Initialize())
	assert.Len(t, monday.store.ThisWeekWorkouts(), 3)

	sundayStart := setupStore(t, true, WithWeekStart(time.Sunday))
	sundayStart.clock.t = sunday
	require.NoError(t, sundayStart.adapter.Reset("workouts"))
	require.NoError(t, sundayStart.store.Initialize())
	assert.Len(t, sundayStart.store.ThisWeekWorkouts(), 1)
}

func TestWeeklyFrequency(t *testing.T) {
	env := setupStore(t, true)

	assert.Len(t, env.store.ThisWeekWorkouts(), 3)
	assert.InDelta(t, 3.0/7*100, env.store.WeeklyFrequency(), 1e-9)
	assert.Equal(t, 4, env.store.TotalWorkouts())

	empty := setupStore(t, false)
	assert.Equal(t, 0.0, empty.store.WeeklyFrequency())
}

func TestTodayWorkoutUsesCalendarDay(t *testing.T) {
	env := setupStore(t, false)
	lateYesterday := time.Date(2024, 3, 12, 23, 59, 0, 0, time.UTC)
	_, err := env.store.Create(*models.NewWorkout("Late").WithDate(lateYesterday))
	require.NoError(t, err)

	_, ok := env.store.TodayWorkout()
	assert.False(t, ok)

	early := time.Date(2024, 3, 13, 0, 1, 0, 0, time.UTC)
	w, err := env.store.Create(*models.NewWorkout("Early").WithDate(early))
	require.NoError(t, err)

	got, ok := env.store.TodayWorkout()
	require.True(t, ok)
	assert.Equal(t, w.ID, got.ID)
}

func TestLatestBodyMetrics(t *testing.T) {
	env := setupStore(t, false)
	_, ok := env.store.LatestBodyMetrics()
	assert.False(t, ok)

	older := wednesday.AddDate(0, 0, -3)
	newest := wednesday.AddDate(0, 0, -1)
	_, err := env.store.AddBodyMetric(*models.NewBodyMetric().WithDate(older).WithWeight(83))
	require.NoError(t, err)
	first, err := env.store.AddBodyMetric(*models.NewBodyMetric().WithDate(newest).WithWeight(82))
	require.NoError(t, err)
	_, err = env.store.AddBodyMetric(*models.NewBodyMetric().WithDate(newest).WithWeight(81))
	require.NoError(t, err)
	_, err = env.store.AddBodyMetric(*models.NewBodyMetric().WithDate(older.AddDate(0, 0, -1)).WithWeight(84))
	require.NoError(t, err)

	latest, ok := env.store.LatestBodyMetrics()
	require.True(t, ok)
	assert.Equal(t, first.ID, latest.ID, "ties keep the earlier record")

	metrics := env.store.BodyMetrics()
	assert.Equal(t, 83.0, *metrics[0].Weight, "stored order is untouched")
}
