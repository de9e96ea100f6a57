// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Runs commands against a temp config and sqlite store and inspects the stored data.
package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/config"
	"github.com/harperreed/gymtrack/internal/session"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/harperreed/gymtrack/internal/tracker"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"date and time with space", "2025-01-31 08:30", false},
		{"date and time with T", "2025-01-31T08:30", false},
		{"date only", "2025-01-31", false},
		{"RFC3339", "2025-01-31T08:30:00Z", false},
		{"RFC3339 with offset", "2025-01-31T08:30:00+05:00", false},
		{"invalid format", "31-01-2025", true},
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2025, result.Year())
		})
	}
}

func TestParseSet(t *testing.T) {
	tests := []struct {
		input      string
		wantReps   int
		wantWeight float64
		wantErr    bool
	}{
		{"10x60", 10, 60, false},
		{"8X72.5", 8, 72.5, false},
		{" 5x100 ", 5, 100, false},
		{"12", 12, 0, false},
		{"x60", 0, 0, true},
		{"10xheavy", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			set, err := parseSet(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantReps, set.Reps)
			assert.Equal(t, tt.wantWeight, set.Weight)
			assert.True(t, set.Completed)
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hello w...", truncate("hello world!", 10))
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
	assert.Equal(t, "abcdefgh", shortID("abcdefgh-1234"))
	assert.Equal(t, "19", shortID("19"))
	assert.Equal(t, "72.5", formatNumber(72.5))
	assert.Equal(t, "[#####-----]", progressBar(50, 10))
	assert.Equal(t, "[##########]", progressBar(250, 10))
	assert.Equal(t, "[----------]", progressBar(-5, 10))
}

func TestConfirm(t *testing.T) {
	assert.True(t, confirm(strings.NewReader("y\n"), "ok?"))
	assert.True(t, confirm(strings.NewReader("YES\n"), "ok?"))
	assert.False(t, confirm(strings.NewReader("\n"), "ok?"))
	assert.False(t, confirm(strings.NewReader(""), "ok?"))
}

func TestRootCmdSubcommands(t *testing.T) {
	assert.Equal(t, "gymtrack", rootCmd.Use)

	want := []string{"profile", "checkin", "workout", "exercise", "body", "goal", "stats",
		"export", "import", "migrate", "reset", "sync", "mcp"}
	have := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		assert.True(t, have[name], "missing command %s", name)
	}
}

func TestNeedsTracker(t *testing.T) {
	assert.True(t, needsTracker(workoutAddCmd))
	assert.True(t, needsTracker(statsCmd))
	assert.False(t, needsTracker(profileInitCmd))
	assert.False(t, needsTracker(syncStatusCmd))
	assert.False(t, needsTracker(migrateCmd))
	assert.False(t, needsTracker(exerciseOneRMCmd))
}

// testEnv points config and data at temp directories.
type testEnv struct {
	dataDir string
}

func setupTestCLI(t *testing.T, signedIn bool) *testEnv {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	for _, k := range []string{"GYMTRACK_BACKEND", "GYMTRACK_DATA_DIR", "GYMTRACK_LOG_LEVEL", "GYMTRACK_CHARM_HOST"} {
		t.Setenv(k, "")
	}

	env := &testEnv{dataDir: filepath.Join(tmpDir, "store")}
	cfg := &config.Config{Backend: "sqlite", DataDir: env.dataDir}
	if signedIn {
		cfg.Profile = &session.User{ID: "u1", Name: "Sam", Preferences: session.DefaultPreferences()}
	}
	require.NoError(t, cfg.Save())
	return env
}

// resetFlags restores every flag to its default between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the CLI and returns what it printed to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStdout, origColor := os.Stdout, color.Output
	os.Stdout, color.Output = w, w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	rootCmd.SetArgs(args)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	execErr := rootCmd.Execute()
	if cerr := closeTracker(); execErr == nil {
		execErr = cerr
	}

	_ = w.Close()
	os.Stdout, color.Output = origStdout, origColor
	return <-done, execErr
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err, "gymtrack %s\n%s", strings.Join(args, " "), out)
	return out
}

// state reads the sqlite store the CLI wrote.
func (e *testEnv) state(t *testing.T) storage.Collections {
	t.Helper()
	backend, err := storage.OpenSQLite(storage.DefaultDBPath(e.dataDir))
	require.NoError(t, err)
	adapter := storage.NewAdapter(backend, nil)
	defer adapter.Close()

	var c storage.Collections
	c.Exercises, _, err = adapter.LoadExercises()
	require.NoError(t, err)
	c.Workouts, _, err = adapter.LoadWorkouts()
	require.NoError(t, err)
	c.BodyMetrics, _, err = adapter.LoadBodyMetrics()
	require.NoError(t, err)
	c.Goals, _, err = adapter.LoadGoals()
	require.NoError(t, err)
	return c
}

func TestCommandsRequireProfile(t *testing.T) {
	setupTestCLI(t, false)

	_, err := run(t, "stats")
	assert.ErrorIs(t, err, tracker.ErrNotAuthenticated)

	out := mustRun(t, "profile", "show")
	assert.Contains(t, out, "Not signed in")
}

func TestProfileInitShowClear(t *testing.T) {
	setupTestCLI(t, false)

	mustRun(t, "profile", "init", "--name", "Alex", "--week-start", "sunday", "--rest", "120")

	loaded, err := config.LoadFile()
	require.NoError(t, err)
	require.NotNil(t, loaded.Profile)
	assert.Equal(t, "Alex", loaded.Profile.Name)
	assert.Equal(t, 0, loaded.Profile.Preferences.WeekStartsOn)
	assert.Equal(t, 120, loaded.Profile.Preferences.DefaultRestTime)
	assert.Equal(t, "sqlite", loaded.Backend, "profile init keeps other settings")

	out := mustRun(t, "profile", "show")
	assert.Contains(t, out, "Alex")
	assert.Contains(t, out, "Sunday")

	_, err = run(t, "profile", "init", "--name", "Alex", "--week-start", "friday")
	assert.Error(t, err)

	mustRun(t, "profile", "clear")
	loaded, err = config.LoadFile()
	require.NoError(t, err)
	assert.Nil(t, loaded.Profile)
}

func TestFirstRunSeedsAndCheckin(t *testing.T) {
	env := setupTestCLI(t, true)

	out := mustRun(t, "checkin")
	assert.Contains(t, out, "Already checked in today")

	mustRun(t, "checkin")
	s := env.state(t)
	assert.Len(t, s.Exercises, 19)
	assert.Len(t, s.Workouts, 4, "check-in reuses today's seeded workout")
	assert.Empty(t, s.BodyMetrics)
	assert.Len(t, s.Goals, 3)
}

func TestWorkoutLifecycle(t *testing.T) {
	env := setupTestCLI(t, true)

	out := mustRun(t, "workout", "add", "Arms", "--date", "2024-03-10", "--notes", "pump")
	assert.Contains(t, out, "Added Arms workout")

	var id string
	for _, w := range env.state(t).Workouts {
		if w.Type == "Arms" {
			id = w.ID
		}
	}
	require.NotEmpty(t, id)

	mustRun(t, "workout", "log", id[:8], "16", "--set", "12x15", "--set", "10x17.5")
	mustRun(t, "workout", "done", id[:8], "--duration", "40")

	var logged bool
	for _, w := range env.state(t).Workouts {
		if w.ID != id {
			continue
		}
		logged = true
		require.Len(t, w.Exercises, 1)
		assert.Equal(t, "16", w.Exercises[0].ExerciseID)
		require.Len(t, w.Exercises[0].Sets, 2)
		assert.Equal(t, 17.5, w.Exercises[0].Sets[1].Weight)
		assert.Equal(t, 90, w.Exercises[0].Sets[0].Rest)
		assert.True(t, w.Completed)
		assert.Equal(t, 40, w.Duration)
		assert.NotNil(t, w.EndTime)
	}
	assert.True(t, logged)

	out = mustRun(t, "workout", "show", id)
	assert.Contains(t, out, "12x15, 10x17.5")

	out = mustRun(t, "workout", "list", "--type", "Arms")
	assert.Contains(t, out, id[:8])

	_, err := run(t, "workout", "log", id, "999", "--set", "5x5")
	assert.ErrorContains(t, err, "unknown exercise")

	mustRun(t, "workout", "delete", id)
	assert.Len(t, env.state(t).Workouts, 4)
}

func TestExerciseCommands(t *testing.T) {
	env := setupTestCLI(t, true)

	out := mustRun(t, "exercise", "list", "--muscle", "Chest")
	assert.Contains(t, out, "Bench Press")
	assert.NotContains(t, out, "Squat")

	mustRun(t, "exercise", "add", "Hip Thrust", "--muscle", "Legs")
	assert.Len(t, env.state(t).Exercises, 20)

	_, err := run(t, "exercise", "add", "Plank", "--muscle", "Core", "--type", "isometric")
	assert.Error(t, err)

	out = mustRun(t, "exercise", "history", "1")
	assert.Contains(t, out, "12x60, 10x65, 8x70")
	assert.Contains(t, out, "Personal best e1RM: 88.7")

	out = mustRun(t, "exercise", "1rm", "100", "10")
	assert.Contains(t, out, "133.3")
}

func TestBodyCommands(t *testing.T) {
	env := setupTestCLI(t, true)

	out := mustRun(t, "body", "latest")
	assert.Contains(t, out, "No body metrics recorded")

	mustRun(t, "body", "add", "--weight", "84", "--date", "2024-01-01")
	mustRun(t, "body", "add", "--weight", "82.5", "--waist", "86")

	s := env.state(t)
	require.Len(t, s.BodyMetrics, 2)
	assert.Nil(t, s.BodyMetrics[1].BodyFat, "unset flags stay empty")
	require.NotNil(t, s.BodyMetrics[1].Measurements.Waist)

	out = mustRun(t, "body", "latest")
	assert.Contains(t, out, "weight 82.5")
	assert.Contains(t, out, "waist 86")
}

func TestGoalCommands(t *testing.T) {
	env := setupTestCLI(t, true)

	mustRun(t, "goal", "add", "Squat 140", "--category", "strength", "--target", "140", "--current", "120", "--unit", "kg")

	var id string
	for _, g := range env.state(t).Goals {
		if g.Title == "Squat 140" {
			id = g.ID
		}
	}
	require.NotEmpty(t, id)

	out := mustRun(t, "goal", "progress", id[:8], "140")
	assert.Contains(t, out, "Goal completed")

	mustRun(t, "goal", "progress", id[:8], "100")
	out = mustRun(t, "goal", "show", id)
	assert.Contains(t, out, "completed")

	mustRun(t, "goal", "milestone", "add", id, "Squat 130", "--target", "130")
	var msID string
	for _, g := range env.state(t).Goals {
		if g.ID == id {
			require.Len(t, g.Milestones, 1)
			msID = g.Milestones[0].ID
		}
	}
	mustRun(t, "goal", "milestone", "done", id, msID[:8])
	mustRun(t, "goal", "update", id, "--title", "Squat 150", "--target", "150")

	for _, g := range env.state(t).Goals {
		if g.ID == id {
			assert.Equal(t, "Squat 150", g.Title)
			assert.Equal(t, 150.0, g.TargetValue)
			assert.Equal(t, "kg", g.Unit, "unset flags are not patched")
			assert.True(t, g.Milestones[0].Completed)
		}
	}

	out = mustRun(t, "goal", "list", "--status", "completed")
	assert.Contains(t, out, "Squat 150")
	assert.NotContains(t, out, "Run 10km")

	_, err := run(t, "goal", "add", "Bad", "--category", "speed")
	assert.Error(t, err)

	mustRun(t, "goal", "delete", id)
	assert.Len(t, env.state(t).Goals, 3)
}

func TestStats(t *testing.T) {
	setupTestCLI(t, true)

	out := mustRun(t, "stats")
	assert.Contains(t, out, "Total:            4")
	assert.Contains(t, out, "Trained today")
	assert.Contains(t, out, "No body metrics recorded")
}

func TestExportImportRoundTrip(t *testing.T) {
	env := setupTestCLI(t, true)
	dir := t.TempDir()
	backup := filepath.Join(dir, "backup.json")

	mustRun(t, "body", "add", "--weight", "80")
	mustRun(t, "export", "json", "-o", backup)
	mustRun(t, "export", "xlsx", "-o", filepath.Join(dir, "training.xlsx"))
	before := env.state(t)

	mustRun(t, "workout", "add", "Extra")
	mustRun(t, "reset", "body-metrics", "--yes")
	assert.Empty(t, env.state(t).BodyMetrics)

	mustRun(t, "import", backup, "--yes")
	after := env.state(t)
	assert.Len(t, after.Workouts, len(before.Workouts))
	assert.Len(t, after.BodyMetrics, 1)
	assert.Len(t, after.Goals, len(before.Goals))

	out := mustRun(t, "export", "yaml")
	assert.Contains(t, out, "version:")

	_, err := run(t, "export", "xlsx")
	assert.ErrorContains(t, err, "--output")
}

func TestResetReseeds(t *testing.T) {
	env := setupTestCLI(t, true)

	mustRun(t, "workout", "add", "Extra")
	assert.Len(t, env.state(t).Workouts, 5)

	mustRun(t, "reset", "workouts", "--yes")
	assert.Len(t, env.state(t).Workouts, 4)

	_, err := run(t, "reset", "metrics", "--yes")
	assert.ErrorContains(t, err, "unknown namespace")
}

func TestMigrateToBadger(t *testing.T) {
	env := setupTestCLI(t, true)
	mustRun(t, "checkin")

	out := mustRun(t, "migrate", "--to", "badger")
	assert.Contains(t, out, "Migrated sqlite -> badger")

	b, err := storage.OpenBadger(filepath.Join(env.dataDir, "badger"))
	require.NoError(t, err)
	workouts, ok, err := storage.NewAdapter(b, nil).LoadWorkouts()
	require.NoError(t, err)
	require.NoError(t, b.Close())
	assert.True(t, ok)
	assert.Len(t, workouts, 4)

	_, err = run(t, "migrate", "--to", "badger")
	assert.ErrorContains(t, err, "not empty")

	_, err = run(t, "migrate", "--to", "sqlite")
	assert.ErrorContains(t, err, "same")

	mustRun(t, "migrate", "--to", "badger", "--force", "--set-default")
	loaded, err := config.LoadFile()
	require.NoError(t, err)
	assert.Equal(t, "badger", loaded.Backend)

	out = mustRun(t, "stats")
	assert.Contains(t, out, "Total:            4")
}
