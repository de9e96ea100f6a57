// ABOUTME: Tests for the tracker composition root.
// ABOUTME: Covers the session gate, startup seeding, reset and import.
package tracker

import (
	"testing"
	"time"

	"github.com/harperreed/gymtrack/internal/models"
	"github.com/harperreed/gymtrack/internal/session"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC)

func signedIn(weekStartsOn int) *session.Session {
	return session.New(&session.User{
		ID:          "u1",
		Name:        "Sam",
		Preferences: session.Preferences{WeekStartsOn: weekStartsOn},
	})
}

func openTracker(t *testing.T, sess *session.Session) *Tracker {
	t.Helper()
	adapter := storage.NewAdapter(storage.NewMemoryBackend(), nil)
	tr, err := Open(sess, adapter, WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Close() })
	return tr
}

func TestOpenRequiresAuthentication(t *testing.T) {
	adapter := storage.NewAdapter(storage.NewMemoryBackend(), nil)

	_, err := Open(session.New(nil), adapter)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, ok, err := adapter.LoadWorkouts()
	require.NoError(t, err)
	assert.False(t, ok, "nothing is seeded before sign-in")
}

func TestOpenSeedsEveryStore(t *testing.T) {
	tr := openTracker(t, signedIn(1))

	snap := tr.Snapshot()
	assert.Len(t, snap.Exercises, 19)
	assert.Len(t, snap.Workouts, 4)
	assert.Empty(t, snap.BodyMetrics)
	assert.Len(t, snap.Goals, 3)
}

func TestOpenAppliesWeekStartPreference(t *testing.T) {
	sunday := time.Date(2024, 3, 17, 10, 0, 0, 0, time.UTC)
	for _, tt := range []struct {
		weekStartsOn int
		want         int
	}{
		{1, 3},
		{0, 1},
	} {
		adapter := storage.NewAdapter(storage.NewMemoryBackend(), nil)
		tr, err := Open(signedIn(tt.weekStartsOn), adapter, WithClock(func() time.Time { return sunday }))
		require.NoError(t, err)
		assert.Len(t, tr.Workouts.ThisWeekWorkouts(), tt.want, "weekStartsOn=%d", tt.weekStartsOn)
	}
}

func TestSummary(t *testing.T) {
	tr := openTracker(t, signedIn(1))
	_, err := tr.Workouts.AddBodyMetric(*models.NewBodyMetric().WithDate(now).WithWeight(80.5))
	require.NoError(t, err)

	s := tr.Summary()
	assert.Equal(t, 4, s.TotalWorkouts)
	assert.Equal(t, 3, s.ThisWeek)
	assert.True(t, s.CheckedInToday)
	assert.Equal(t, 3, s.ActiveGoals)
	assert.Equal(t, 0, s.CompletedGoals)
	assert.Equal(t, 57, s.GoalsProgress)
	require.NotNil(t, s.LatestWeight)
	assert.Equal(t, 80.5, *s.LatestWeight)
	assert.Nil(t, s.LatestBodyFat)
}

func TestResetReseedsNamespace(t *testing.T) {
	tr := openTracker(t, signedIn(1))
	for _, g := range tr.Goals.Goals() {
		require.NoError(t, tr.Goals.Delete(g.ID))
	}
	require.Empty(t, tr.Goals.Goals())

	require.NoError(t, tr.Reset(storage.NamespaceGoals))
	assert.Len(t, tr.Goals.Goals(), 3)
}

func TestExportImportRoundTrip(t *testing.T) {
	src := openTracker(t, signedIn(1))
	_, err := src.Workouts.QuickCheckIn()
	require.NoError(t, err)
	_, err = src.Workouts.AddBodyMetric(*models.NewBodyMetric().WithDate(now).WithBodyFat(15))
	require.NoError(t, err)

	doc := src.Export()
	assert.True(t, doc.ExportedAt.Equal(now))

	dst := openTracker(t, signedIn(1))
	require.NoError(t, dst.Import(doc))
	assert.Equal(t, src.Snapshot(), dst.Snapshot())
}
