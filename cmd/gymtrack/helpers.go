// ABOUTME: Shared formatting and parsing helpers for CLI commands.
// ABOUTME: Covers timestamps, short ids, set notation and confirmation prompts.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/models"
)

var faint = color.New(color.Faint)

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

// parseSet parses "REPSxWEIGHT" such as "10x60" or "8x72.5". A bare
// "REPS" means bodyweight.
func parseSet(s string) (models.WorkoutSet, error) {
	repsStr, weightStr, found := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	reps, err := strconv.Atoi(repsStr)
	if err != nil {
		return models.WorkoutSet{}, fmt.Errorf("invalid set %q: use REPSxWEIGHT, e.g. 10x60", s)
	}
	set := models.WorkoutSet{Reps: reps, Completed: true}
	if found {
		set.Weight, err = strconv.ParseFloat(weightStr, 64)
		if err != nil {
			return models.WorkoutSet{}, fmt.Errorf("invalid set %q: use REPSxWEIGHT, e.g. 10x60", s)
		}
	}
	return set, nil
}

func formatSets(sets []models.WorkoutSet) string {
	parts := make([]string, len(sets))
	for i, set := range sets {
		parts[i] = fmt.Sprintf("%dx%s", set.Reps, formatNumber(set.Weight))
	}
	return strings.Join(parts, ", ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// confirm reads a y/N answer from r.
func confirm(r io.Reader, prompt string) bool {
	fmt.Print(prompt + " [y/N]: ")
	line, _ := bufio.NewReader(r).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
