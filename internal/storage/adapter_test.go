// ABOUTME: Tests for the persistence adapter.
// ABOUTME: Covers round trips, absent namespaces and corrupt-content recovery.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/charmbracelet/log"
	"github.com/harperreed/gymtrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*Adapter, *MemoryBackend, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	backend := NewMemoryBackend()
	a := NewAdapter(backend, log.New(&buf))
	t.Cleanup(func() { _ = a.Close() })
	return a, backend, &buf
}

func fakeWorkouts(f *gofakeit.Faker, n int) []models.Workout {
	out := make([]models.Workout, 0, n)
	for i := 0; i < n; i++ {
		w := models.Workout{
			ID:        f.UUID(),
			Date:      f.Date(),
			Exercises: []models.WorkoutExercise{},
			Duration:  f.Number(0, 180),
			StartTime: f.Date(),
			Type:      f.RandomString([]string{"Push", "Pull", "Legs", "General"}),
			Completed: f.Bool(),
		}
		if f.Bool() {
			notes := f.Sentence(4)
			w.Notes = &notes
		}
		if f.Bool() {
			end := f.Date()
			w.EndTime = &end
		}
		for j := 0; j < f.Number(0, 3); j++ {
			e := models.WorkoutExercise{
				ExerciseID:     f.UUID(),
				Sets:           []models.WorkoutSet{},
				PersonalRecord: f.Bool(),
			}
			for k := 0; k < f.Number(1, 4); k++ {
				e.Sets = append(e.Sets, models.WorkoutSet{
					Reps:      f.Number(1, 20),
					Weight:    f.Float64Range(0, 200),
					Rest:      f.Number(30, 180),
					Completed: f.Bool(),
				})
			}
			w.Exercises = append(w.Exercises, e)
		}
		out = append(out, w)
	}
	return out
}

func fakeGoals(f *gofakeit.Faker, n int) []models.Goal {
	out := make([]models.Goal, 0, n)
	for i := 0; i < n; i++ {
		g := models.Goal{
			ID:           f.UUID(),
			Title:        f.Sentence(3),
			Description:  f.Sentence(8),
			Category:     models.AllGoalCategories[f.Number(0, len(models.AllGoalCategories)-1)],
			TargetValue:  f.Float64Range(1, 200),
			CurrentValue: f.Float64Range(0, 200),
			Unit:         f.RandomString([]string{"kg", "minutes", "km"}),
			Deadline:     f.Date(),
			Status:       models.AllGoalStatuses[f.Number(0, len(models.AllGoalStatuses)-1)],
			CreatedAt:    f.Date(),
			UpdatedAt:    f.Date(),
			Milestones:   []models.Milestone{},
		}
		for j := 0; j < f.Number(0, 3); j++ {
			g.Milestones = append(g.Milestones, models.Milestone{
				ID:           f.UUID(),
				Title:        f.Word(),
				TargetValue:  f.Float64Range(1, 100),
				CurrentValue: f.Float64Range(0, 100),
				Completed:    f.Bool(),
				Deadline:     f.Date(),
			})
		}
		out = append(out, g)
	}
	return out
}

func TestAdapterRoundTripWorkouts(t *testing.T) {
	a, _, _ := newTestAdapter(t)
	want := fakeWorkouts(gofakeit.New(42), 25)

	require.NoError(t, a.SaveWorkouts(want))
	got, ok, err := a.LoadWorkouts()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestAdapterRoundTripGoals(t *testing.T) {
	a, _, _ := newTestAdapter(t)
	want := fakeGoals(gofakeit.New(7), 15)

	require.NoError(t, a.SaveGoals(want))
	got, ok, err := a.LoadGoals()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestAdapterRoundTripBodyMetricsAndExercises(t *testing.T) {
	a, _, _ := newTestAdapter(t)
	date := time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC)
	metrics := []models.BodyMetric{
		*models.NewBodyMetric().WithDate(date).WithWeight(82.5).WithBodyFat(17.2),
		{ID: "m2", Date: date.Add(24 * time.Hour), Photos: []string{"front.jpg"}},
	}
	metrics[0].Measurements.Waist = ptr(84.0)
	exercises := []models.Exercise{
		*models.NewExercise("Squat", "Legs", models.ExerciseStrength).WithInstructions("sit back"),
	}

	require.NoError(t, a.SaveBodyMetrics(metrics))
	require.NoError(t, a.SaveExercises(exercises))

	gotMetrics, ok, err := a.LoadBodyMetrics()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, metrics, gotMetrics)

	gotExercises, ok, err := a.LoadExercises()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, exercises, gotExercises)
}

func TestAdapterAbsentNamespace(t *testing.T) {
	a, _, buf := newTestAdapter(t)

	got, ok, err := a.LoadGoals()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Empty(t, buf.String(), "absent namespaces are not logged")
}

func TestAdapterEmptyCollectionIsPresent(t *testing.T) {
	a, _, _ := newTestAdapter(t)
	require.NoError(t, a.SaveBodyMetrics(nil))

	got, ok, err := a.LoadBodyMetrics()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestAdapterCorruptContentIsAbsent(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"null", `null`},
		{"object instead of array", `{"id":"1"}`},
		{"missing id", `[{"date":"2024-01-01T00:00:00Z","startTime":"2024-01-01T00:00:00Z","exercises":[]}]`},
		{"bad date", `[{"id":"w1","date":"yesterday","startTime":"2024-01-01T00:00:00Z","exercises":[]}]`},
		{"missing exercise id", `[{"id":"w1","date":"2024-01-01T00:00:00Z","startTime":"2024-01-01T00:00:00Z","exercises":[{"sets":[]}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, backend, buf := newTestAdapter(t)
			require.NoError(t, backend.Set(string(NamespaceWorkouts), []byte(tt.data)))

			got, ok, err := a.LoadWorkouts()
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, got)
			assert.Contains(t, buf.String(), "discarding corrupt namespace")
		})
	}
}

func TestAdapterOutOfRangeEnumsAreCorrupt(t *testing.T) {
	const goal = `[{"id":"g1","title":"Bench","category":%q,"targetValue":100,"currentValue":70,"unit":"kg",
		"deadline":"2025-02-01T12:00:00Z","status":%q,"createdAt":"2024-12-01T12:00:00Z","updatedAt":"2024-12-01T12:00:00Z","milestones":[]}]`

	t.Run("goal status", func(t *testing.T) {
		a, backend, buf := newTestAdapter(t)
		require.NoError(t, backend.Set(string(NamespaceGoals), []byte(fmt.Sprintf(goal, "strength", "bogus"))))

		got, ok, err := a.LoadGoals()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
		assert.Contains(t, buf.String(), "discarding corrupt namespace")
	})

	t.Run("goal category", func(t *testing.T) {
		a, backend, _ := newTestAdapter(t)
		require.NoError(t, backend.Set(string(NamespaceGoals), []byte(fmt.Sprintf(goal, "cardio", "active"))))

		_, ok, err := a.LoadGoals()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("exercise type", func(t *testing.T) {
		a, backend, _ := newTestAdapter(t)
		raw := `[{"id":"1","name":"Bench Press","muscleGroup":"Chest","type":"yoga"}]`
		require.NoError(t, backend.Set(string(NamespaceExercises), []byte(raw)))

		_, ok, err := a.LoadExercises()
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestAdapterSaveRejectsRecordsLoadWouldDiscard(t *testing.T) {
	valid := fakeGoals(gofakeit.New(3), 2)
	tests := []struct {
		name   string
		mutate func(g *models.Goal)
	}{
		{"empty status", func(g *models.Goal) { g.Status = "" }},
		{"unknown category", func(g *models.Goal) { g.Category = "cardio" }},
		{"milestone without id", func(g *models.Goal) {
			g.Milestones = []models.Milestone{{Title: "halfway", Deadline: g.Deadline}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestAdapter(t)
			require.NoError(t, a.SaveGoals(valid))

			bad := make([]models.Goal, len(valid))
			for i, g := range valid {
				bad[i] = g.Clone()
			}
			tt.mutate(&bad[1])
			require.Error(t, a.SaveGoals(bad))

			got, ok, err := a.LoadGoals()
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, valid, got, "the previous value stays in place")
		})
	}

	t.Run("workout entry without exercise id", func(t *testing.T) {
		a, _, _ := newTestAdapter(t)
		w := fakeWorkouts(gofakeit.New(5), 1)
		w[0].Exercises = []models.WorkoutExercise{{Sets: []models.WorkoutSet{}}}

		require.Error(t, a.SaveWorkouts(w))
		_, ok, err := a.LoadWorkouts()
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestAdapterAcceptsJavaScriptTimestamps(t *testing.T) {
	a, backend, _ := newTestAdapter(t)
	raw := `[{"id":"g1","title":"Bench","description":"","category":"strength","targetValue":100,"currentValue":70,"unit":"kg",
		"deadline":"2025-02-01T12:00:00.000Z","status":"active","createdAt":"2024-12-01T12:00:00.000Z","updatedAt":"2024-12-01T12:00:00.000Z",
		"milestones":[{"id":"m1","title":"80kg","targetValue":80,"currentValue":0,"completed":false,"deadline":"2025-01-15T12:00:00.000Z"}]}]`
	require.NoError(t, backend.Set(string(NamespaceGoals), []byte(raw)))

	goals, ok, err := a.LoadGoals()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, goals, 1)
	assert.Equal(t, models.GoalActive, goals[0].Status)
	assert.True(t, goals[0].Deadline.Equal(time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)))
	require.Len(t, goals[0].Milestones, 1)
	assert.Equal(t, "80kg", goals[0].Milestones[0].Title)
}

type failingBackend struct {
	*MemoryBackend
	err error
}

func (f failingBackend) Get(string) ([]byte, error) { return nil, f.err }
func (f failingBackend) Set(string, []byte) error   { return f.err }

func TestAdapterBackendErrorsPropagate(t *testing.T) {
	boom := errors.New("disk on fire")
	a := NewAdapter(failingBackend{MemoryBackend: NewMemoryBackend(), err: boom}, nil)

	_, ok, err := a.LoadWorkouts()
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)

	err = a.SaveGoals([]models.Goal{})
	assert.ErrorIs(t, err, boom)
}

func TestAdapterReset(t *testing.T) {
	a, _, _ := newTestAdapter(t)
	require.NoError(t, a.SaveGoals([]models.Goal{}))
	require.NoError(t, a.Reset(NamespaceGoals))

	_, ok, err := a.LoadGoals()
	require.NoError(t, err)
	assert.False(t, ok)
}

func ptr[T any](v T) *T {
	return &v
}
