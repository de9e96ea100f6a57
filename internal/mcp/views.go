// ABOUTME: JSON views of domain records returned by MCP tools and resources.
// ABOUTME: Dates are rendered as RFC 3339 strings and exercise names are resolved.
package mcp

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/gymtrack/internal/goals"
	"github.com/harperreed/gymtrack/internal/models"
	"github.com/harperreed/gymtrack/internal/workouts"
)

type setView struct {
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Rest      int     `json:"rest_seconds"`
	Completed bool    `json:"completed"`
}

type workoutExerciseView struct {
	ExerciseID     string    `json:"exercise_id"`
	Name           string    `json:"name"`
	Sets           []setView `json:"sets"`
	Notes          string    `json:"notes,omitempty"`
	PersonalRecord bool      `json:"personal_record,omitempty"`
}

type workoutView struct {
	ID        string                `json:"id"`
	Type      string                `json:"type"`
	Date      string                `json:"date"`
	Duration  int                   `json:"duration_minutes"`
	Completed bool                  `json:"completed"`
	EndTime   string                `json:"end_time,omitempty"`
	Notes     string                `json:"notes,omitempty"`
	Exercises []workoutExerciseView `json:"exercises"`
}

type exerciseView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MuscleGroup  string `json:"muscle_group"`
	Type         string `json:"type"`
	Instructions string `json:"instructions,omitempty"`
}

type bodyMetricView struct {
	ID           string             `json:"id"`
	Date         string             `json:"date"`
	Weight       *float64           `json:"weight,omitempty"`
	BodyFat      *float64           `json:"body_fat,omitempty"`
	Measurements map[string]float64 `json:"measurements,omitempty"`
}

type milestoneView struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	TargetValue  float64 `json:"target_value"`
	CurrentValue float64 `json:"current_value"`
	Completed    bool    `json:"completed"`
	Deadline     string  `json:"deadline"`
}

type goalView struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category"`
	Status       string          `json:"status"`
	TargetValue  float64         `json:"target_value"`
	CurrentValue float64         `json:"current_value"`
	Unit         string          `json:"unit"`
	Progress     float64         `json:"progress_percent"`
	Deadline     string          `json:"deadline"`
	Notes        string          `json:"notes,omitempty"`
	Milestones   []milestoneView `json:"milestones"`
	UpdatedAt    string          `json:"updated_at"`
}

func formatTime(t time.Time) string {
	return t.Local().Format(time.RFC3339)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *Server) exerciseName(id string) string {
	if e, ok := s.tracker.Catalog.Lookup(id); ok {
		return e.Name
	}
	return fmt.Sprintf("exercise %s", id)
}

func setViews(sets []models.WorkoutSet) []setView {
	out := make([]setView, len(sets))
	for i, set := range sets {
		out[i] = setView{Reps: set.Reps, Weight: set.Weight, Rest: set.Rest, Completed: set.Completed}
	}
	return out
}

func (s *Server) workoutView(w models.Workout) workoutView {
	v := workoutView{
		ID:        w.ID,
		Type:      w.Type,
		Date:      formatTime(w.Date),
		Duration:  w.Duration,
		Completed: w.Completed,
		Notes:     deref(w.Notes),
		Exercises: make([]workoutExerciseView, len(w.Exercises)),
	}
	if w.EndTime != nil {
		v.EndTime = formatTime(*w.EndTime)
	}
	for i, e := range w.Exercises {
		v.Exercises[i] = workoutExerciseView{
			ExerciseID:     e.ExerciseID,
			Name:           s.exerciseName(e.ExerciseID),
			Sets:           setViews(e.Sets),
			Notes:          deref(e.Notes),
			PersonalRecord: e.PersonalRecord,
		}
	}
	return v
}

func (s *Server) workoutViews(list []models.Workout) []workoutView {
	out := make([]workoutView, len(list))
	for i, w := range list {
		out[i] = s.workoutView(w)
	}
	return out
}

func newExerciseView(e models.Exercise) exerciseView {
	return exerciseView{
		ID:           e.ID,
		Name:         e.Name,
		MuscleGroup:  e.MuscleGroup,
		Type:         string(e.Type),
		Instructions: deref(e.Instructions),
	}
}

func newBodyMetricView(m models.BodyMetric) bodyMetricView {
	v := bodyMetricView{
		ID:      m.ID,
		Date:    formatTime(m.Date),
		Weight:  m.Weight,
		BodyFat: m.BodyFat,
	}
	sizes := map[string]*float64{
		"chest": m.Measurements.Chest,
		"waist": m.Measurements.Waist,
		"hips":  m.Measurements.Hips,
		"bicep": m.Measurements.Bicep,
		"thigh": m.Measurements.Thigh,
	}
	for name, p := range sizes {
		if p == nil {
			continue
		}
		if v.Measurements == nil {
			v.Measurements = map[string]float64{}
		}
		v.Measurements[name] = *p
	}
	return v
}

func newMilestoneView(m models.Milestone) milestoneView {
	return milestoneView{
		ID:           m.ID,
		Title:        m.Title,
		TargetValue:  m.TargetValue,
		CurrentValue: m.CurrentValue,
		Completed:    m.Completed,
		Deadline:     formatTime(m.Deadline),
	}
}

func newGoalView(g models.Goal) goalView {
	v := goalView{
		ID:           g.ID,
		Title:        g.Title,
		Description:  g.Description,
		Category:     string(g.Category),
		Status:       string(g.Status),
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		Progress:     goals.Progress(g),
		Deadline:     formatTime(g.Deadline),
		Notes:        deref(g.Notes),
		Milestones:   make([]milestoneView, len(g.Milestones)),
		UpdatedAt:    formatTime(g.UpdatedAt),
	}
	for i, m := range g.Milestones {
		v.Milestones[i] = newMilestoneView(m)
	}
	return v
}

func goalViews(list []models.Goal) []goalView {
	out := make([]goalView, len(list))
	for i, g := range list {
		out[i] = newGoalView(g)
	}
	return out
}

// parseDate accepts RFC 3339, "2006-01-02 15:04" or "2006-01-02" in local time.
// An empty string yields fallback.
func parseDate(s string, fallback time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD, YYYY-MM-DD HH:MM or RFC 3339", s)
}

type historyEntryView struct {
	WorkoutID      string    `json:"workout_id"`
	Date           string    `json:"date"`
	Sets           []setView `json:"sets"`
	BestOneRM      float64   `json:"best_estimated_1rm"`
	Notes          string    `json:"notes,omitempty"`
	PersonalRecord bool      `json:"personal_record,omitempty"`
}

func newHistoryEntryView(h workouts.HistoryEntry) historyEntryView {
	v := historyEntryView{
		WorkoutID:      h.WorkoutID,
		Date:           formatTime(h.Date),
		Sets:           setViews(h.Sets),
		Notes:          deref(h.Notes),
		PersonalRecord: h.PersonalRecord,
	}
	for _, set := range h.Sets {
		if est := workouts.Calculate1RM(set.Weight, set.Reps); est > v.BestOneRM {
			v.BestOneRM = est
		}
	}
	return v
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
