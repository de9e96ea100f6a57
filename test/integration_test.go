// ABOUTME: Integration tests for gymtrack CLI.
// ABOUTME: Builds the binary and runs a full workflow against a temp data dir.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "gymtrack")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/gymtrack")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	// Isolate config and data
	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
		"GYMTRACK_BACKEND=sqlite",
		"GYMTRACK_DATA_DIR=",
	)

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Without a profile, data commands refuse to run
	output, err := run("stats")
	if err == nil {
		t.Fatalf("Expected stats to fail without a profile, got: %s", output)
	}
	if !strings.Contains(output, "profile init") {
		t.Errorf("Expected sign-in hint in output, got: %s", output)
	}

	output, err = run("profile", "init", "--name", "Sam")
	if err != nil {
		t.Fatalf("Failed to init profile: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Signed in as Sam") {
		t.Errorf("Expected 'Signed in as Sam' in output, got: %s", output)
	}

	// First run seeds a workout for today
	output, err = run("checkin")
	if err != nil {
		t.Fatalf("Failed to check in: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Already checked in today") {
		t.Errorf("Expected 'Already checked in today' in output, got: %s", output)
	}

	output, err = run("workout", "add", "Arms", "--duration", "45")
	if err != nil {
		t.Fatalf("Failed to add workout: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added Arms workout") {
		t.Errorf("Expected 'Added Arms workout' in output, got: %s", output)
	}
	id := regexp.MustCompile(`ID: (\S+)`).FindStringSubmatch(output)
	if id == nil {
		t.Fatalf("No workout id in output: %s", output)
	}

	output, err = run("workout", "log", id[1], "16", "--set", "12x15", "--set", "10x17.5")
	if err != nil {
		t.Fatalf("Failed to log exercise: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged Barbell Curl") {
		t.Errorf("Expected 'Logged Barbell Curl' in output, got: %s", output)
	}

	output, err = run("workout", "list", "--type", "Arms")
	if err != nil {
		t.Fatalf("Failed to list workouts: %v\n%s", err, output)
	}
	if !strings.Contains(output, id[1]) {
		t.Errorf("Expected %s in workout list, got: %s", id[1], output)
	}

	output, err = run("body", "add", "--weight", "82.5")
	if err != nil {
		t.Fatalf("Failed to add body metrics: %v\n%s", err, output)
	}

	output, err = run("goal", "add", "Squat 140", "--category", "strength", "--target", "140", "--unit", "kg")
	if err != nil {
		t.Fatalf("Failed to add goal: %v\n%s", err, output)
	}

	output, err = run("stats")
	if err != nil {
		t.Fatalf("Failed to show stats: %v\n%s", err, output)
	}
	for _, want := range []string{"Total:            5", "Weight:   82.5", "Active:    4"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in stats output, got: %s", want, output)
		}
	}
}
