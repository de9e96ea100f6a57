// ABOUTME: MCP tool implementations for workouts, exercises and body metrics.
// ABOUTME: Provides check-in, workout CRUD, set logging, history and 1RM estimates.
package mcp

import (
	"context"
	"fmt"
	"sort"

	"github.com/harperreed/gymtrack/internal/models"
	"github.com/harperreed/gymtrack/internal/workouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "quick_check_in",
		Description: "Record that the user trained today; returns today's workout if one exists",
	}, s.handleQuickCheckIn)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_workout",
		Description: "Create a new workout session",
	}, s.handleCreateWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workouts newest first, optionally filtered by type",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout with its exercises and sets",
	}, s.handleGetWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "this_week",
		Description: "Workouts in the current week and the weekly frequency",
	}, s.handleThisWeek)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_exercise",
		Description: "Append an exercise with its sets to a workout",
	}, s.handleLogExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_workout",
		Description: "Mark a workout completed, optionally recording its duration",
	}, s.handleCompleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout by ID or ID prefix",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "exercise_history",
		Description: "Recent sets logged for an exercise and its personal best estimated 1RM",
	}, s.handleExerciseHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "one_rep_max",
		Description: "Estimate a one-rep max from weight and reps (Epley formula)",
	}, s.handleOneRepMax)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List catalog exercises, optionally filtered by muscle group",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add a custom exercise to the catalog",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_body_metric",
		Description: "Record body weight, body fat and circumference measurements",
	}, s.handleAddBodyMetric)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "latest_body_metrics",
		Description: "Get the most recent body metric record",
	}, s.handleLatestBodyMetrics)

	s.registerGoalTools()
}

// Tool input/output types

type emptyInput struct{}

type simpleOutput struct {
	Message string `json:"message"`
}

type workoutOutput struct {
	Workout workoutView `json:"workout"`
	Message string      `json:"message"`
}

type workoutListOutput struct {
	Workouts []workoutView `json:"workouts"`
	Count    int           `json:"count"`
}

type createWorkoutInput struct {
	Type            string `json:"type" jsonschema:"Workout type (Push, Pull, Legs, Full Body, etc.)"`
	Date            string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD or RFC 3339), defaults to now"`
	DurationMinutes int    `json:"duration_minutes,omitempty" jsonschema:"Duration in minutes"`
	Notes           string `json:"notes,omitempty" jsonschema:"Workout notes"`
}

type listWorkoutsInput struct {
	Type  string `json:"type,omitempty" jsonschema:"Filter by workout type"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type workoutIDInput struct {
	ID string `json:"id" jsonschema:"Workout ID or prefix"`
}

type thisWeekOutput struct {
	WeekStart       string        `json:"week_start"`
	WeekEnd         string        `json:"week_end"`
	Workouts        []workoutView `json:"workouts"`
	Count           int           `json:"count"`
	WeeklyFrequency float64       `json:"weekly_frequency"`
}

type setInput struct {
	Reps   int     `json:"reps" jsonschema:"Repetitions"`
	Weight float64 `json:"weight" jsonschema:"Weight lifted"`
	Rest   int     `json:"rest_seconds,omitempty" jsonschema:"Rest after the set in seconds, defaults to the profile rest time"`
}

type logExerciseInput struct {
	WorkoutID      string     `json:"workout_id" jsonschema:"Workout ID or prefix"`
	ExerciseID     string     `json:"exercise_id" jsonschema:"Catalog exercise ID"`
	Sets           []setInput `json:"sets" jsonschema:"Sets performed"`
	Notes          string     `json:"notes,omitempty" jsonschema:"Notes for this exercise"`
	PersonalRecord bool       `json:"personal_record,omitempty" jsonschema:"Whether this was a personal record"`
}

type completeWorkoutInput struct {
	ID              string `json:"id" jsonschema:"Workout ID or prefix"`
	DurationMinutes int    `json:"duration_minutes,omitempty" jsonschema:"Duration in minutes"`
}

type exerciseHistoryInput struct {
	ExerciseID string `json:"exercise_id" jsonschema:"Catalog exercise ID"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Max entries (default 10)"`
}

type exerciseHistoryOutput struct {
	ExerciseID   string             `json:"exercise_id"`
	Name         string             `json:"name"`
	Entries      []historyEntryView `json:"entries"`
	PersonalBest float64            `json:"personal_best_1rm,omitempty"`
}

type oneRepMaxInput struct {
	Weight float64 `json:"weight" jsonschema:"Weight lifted"`
	Reps   int     `json:"reps" jsonschema:"Repetitions performed"`
}

type oneRepMaxOutput struct {
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Estimate float64 `json:"estimated_1rm"`
}

type listExercisesInput struct {
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (e.g. Chest, Legs)"`
}

type exerciseListOutput struct {
	Exercises    []exerciseView `json:"exercises"`
	MuscleGroups []string       `json:"muscle_groups"`
}

type addExerciseInput struct {
	Name         string `json:"name" jsonschema:"Exercise name"`
	MuscleGroup  string `json:"muscle_group" jsonschema:"Primary muscle group"`
	Type         string `json:"type,omitempty" jsonschema:"strength, cardio or flexibility (default strength)"`
	Instructions string `json:"instructions,omitempty" jsonschema:"How to perform the exercise"`
}

type exerciseOutput struct {
	Exercise exerciseView `json:"exercise"`
	Message  string       `json:"message"`
}

type addBodyMetricInput struct {
	Date    string   `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD or RFC 3339), defaults to now"`
	Weight  *float64 `json:"weight,omitempty" jsonschema:"Body weight"`
	BodyFat *float64 `json:"body_fat,omitempty" jsonschema:"Body fat percentage"`
	Chest   *float64 `json:"chest,omitempty" jsonschema:"Chest circumference"`
	Waist   *float64 `json:"waist,omitempty" jsonschema:"Waist circumference"`
	Hips    *float64 `json:"hips,omitempty" jsonschema:"Hip circumference"`
	Bicep   *float64 `json:"bicep,omitempty" jsonschema:"Bicep circumference"`
	Thigh   *float64 `json:"thigh,omitempty" jsonschema:"Thigh circumference"`
}

type bodyMetricOutput struct {
	Found   bool            `json:"found"`
	Metric  *bodyMetricView `json:"metric,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Tool handlers

func (s *Server) handleQuickCheckIn(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, workoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.tracker.Workouts.QuickCheckIn()
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to check in: %w", err)
	}
	return nil, workoutOutput{
		Workout: s.workoutView(w),
		Message: fmt.Sprintf("Checked in for today (ID: %s)", shortID(w.ID)),
	}, nil
}

func (s *Server) handleCreateWorkout(ctx context.Context, req *mcp.CallToolRequest, input createWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Type == "" {
		return nil, workoutOutput{}, fmt.Errorf("type is required")
	}
	date, err := parseDate(input.Date, s.tracker.Now())
	if err != nil {
		return nil, workoutOutput{}, err
	}

	w := models.NewWorkout(input.Type).WithDate(date)
	if input.DurationMinutes > 0 {
		w.WithDuration(input.DurationMinutes)
	}
	if input.Notes != "" {
		w.WithNotes(input.Notes)
	}

	created, err := s.tracker.Workouts.Create(*w)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to create workout: %w", err)
	}
	return nil, workoutOutput{
		Workout: s.workoutView(created),
		Message: fmt.Sprintf("Added %s workout (ID: %s)", created.Type, shortID(created.ID)),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, workoutListOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Limit <= 0 {
		input.Limit = 20
	}

	var list []models.Workout
	for _, w := range s.tracker.Workouts.Workouts() {
		if input.Type == "" || w.Type == input.Type {
			list = append(list, w)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.After(list[j].Date)
	})
	if len(list) > input.Limit {
		list = list[:input.Limit]
	}

	return nil, workoutListOutput{
		Workouts: s.workoutViews(list),
		Count:    len(list),
	}, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input workoutIDInput) (*mcp.CallToolResult, workoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.tracker.ResolveWorkout(input.ID)
	if err != nil {
		return nil, workoutOutput{}, err
	}
	return nil, workoutOutput{Workout: s.workoutView(w)}, nil
}

func (s *Server) handleThisWeek(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, thisWeekOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, end := workouts.WeekBounds(s.tracker.Now(), s.tracker.Session().Preferences().WeekStart())
	list := s.tracker.Workouts.ThisWeekWorkouts()
	return nil, thisWeekOutput{
		WeekStart:       formatTime(start),
		WeekEnd:         formatTime(end),
		Workouts:        s.workoutViews(list),
		Count:           len(list),
		WeeklyFrequency: s.tracker.Workouts.WeeklyFrequency(),
	}, nil
}

func (s *Server) handleLogExercise(ctx context.Context, req *mcp.CallToolRequest, input logExerciseInput) (*mcp.CallToolResult, workoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.tracker.ResolveWorkout(input.WorkoutID)
	if err != nil {
		return nil, workoutOutput{}, err
	}
	if _, ok := s.tracker.Catalog.Lookup(input.ExerciseID); !ok {
		return nil, workoutOutput{}, fmt.Errorf("unknown exercise: %s", input.ExerciseID)
	}
	if len(input.Sets) == 0 {
		return nil, workoutOutput{}, fmt.Errorf("at least one set is required")
	}

	rest := s.tracker.Session().Preferences().RestSeconds()
	entry := models.WorkoutExercise{
		ExerciseID:     input.ExerciseID,
		Sets:           make([]models.WorkoutSet, len(input.Sets)),
		PersonalRecord: input.PersonalRecord,
	}
	for i, set := range input.Sets {
		entry.Sets[i] = models.WorkoutSet{Reps: set.Reps, Weight: set.Weight, Rest: rest, Completed: true}
		if set.Rest > 0 {
			entry.Sets[i].Rest = set.Rest
		}
	}
	if input.Notes != "" {
		entry.Notes = &input.Notes
	}

	exercises := append(append([]models.WorkoutExercise(nil), w.Exercises...), entry)
	if err := s.tracker.Workouts.Update(w.ID, models.WorkoutPatch{Exercises: exercises}); err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to log exercise: %w", err)
	}

	updated, _ := s.tracker.Workouts.Get(w.ID)
	return nil, workoutOutput{
		Workout: s.workoutView(updated),
		Message: fmt.Sprintf("Logged %d sets of %s", len(entry.Sets), s.exerciseName(entry.ExerciseID)),
	}, nil
}

func (s *Server) handleCompleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input completeWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.tracker.ResolveWorkout(input.ID)
	if err != nil {
		return nil, workoutOutput{}, err
	}

	done := true
	end := s.tracker.Now()
	patch := models.WorkoutPatch{Completed: &done, EndTime: &end}
	if input.DurationMinutes > 0 {
		patch.Duration = &input.DurationMinutes
	}
	if err := s.tracker.Workouts.Update(w.ID, patch); err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to complete workout: %w", err)
	}

	updated, _ := s.tracker.Workouts.Get(w.ID)
	return nil, workoutOutput{
		Workout: s.workoutView(updated),
		Message: fmt.Sprintf("Completed %s workout", updated.Type),
	}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input workoutIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.tracker.ResolveWorkout(input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.tracker.Workouts.Delete(w.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted workout: %s", shortID(w.ID)),
	}, nil
}

func (s *Server) handleExerciseHistory(ctx context.Context, req *mcp.CallToolRequest, input exerciseHistoryInput) (*mcp.CallToolResult, exerciseHistoryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Limit <= 0 {
		input.Limit = workouts.DefaultHistoryLimit
	}
	history := s.tracker.Workouts.ExerciseHistory(input.ExerciseID, input.Limit)

	out := exerciseHistoryOutput{
		ExerciseID: input.ExerciseID,
		Name:       s.exerciseName(input.ExerciseID),
		Entries:    make([]historyEntryView, len(history)),
	}
	for i, h := range history {
		out.Entries[i] = newHistoryEntryView(h)
	}
	if best, ok := s.tracker.Workouts.PersonalBest(input.ExerciseID); ok {
		out.PersonalBest = best
	}
	return nil, out, nil
}

func (s *Server) handleOneRepMax(ctx context.Context, req *mcp.CallToolRequest, input oneRepMaxInput) (*mcp.CallToolResult, oneRepMaxOutput, error) {
	return nil, oneRepMaxOutput{
		Weight:   input.Weight,
		Reps:     input.Reps,
		Estimate: workouts.Calculate1RM(input.Weight, input.Reps),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, exerciseListOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := exerciseListOutput{
		Exercises:    []exerciseView{},
		MuscleGroups: s.tracker.Catalog.MuscleGroups(),
	}
	for _, e := range s.tracker.Catalog.Exercises() {
		if input.MuscleGroup == "" || e.MuscleGroup == input.MuscleGroup {
			out.Exercises = append(out.Exercises, newExerciseView(e))
		}
	}
	return nil, out, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Name == "" || input.MuscleGroup == "" {
		return nil, exerciseOutput{}, fmt.Errorf("name and muscle_group are required")
	}
	if input.Type == "" {
		input.Type = string(models.ExerciseStrength)
	}
	if !models.IsValidExerciseType(input.Type) {
		return nil, exerciseOutput{}, fmt.Errorf("unknown exercise type: %s", input.Type)
	}

	e := models.NewExercise(input.Name, input.MuscleGroup, models.ExerciseType(input.Type))
	if input.Instructions != "" {
		e.WithInstructions(input.Instructions)
	}
	added, err := s.tracker.Workouts.AddExercise(*e)
	if err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to add exercise: %w", err)
	}
	return nil, exerciseOutput{
		Exercise: newExerciseView(added),
		Message:  fmt.Sprintf("Added exercise %s (ID: %s)", added.Name, added.ID),
	}, nil
}

func (s *Server) handleAddBodyMetric(ctx context.Context, req *mcp.CallToolRequest, input addBodyMetricInput) (*mcp.CallToolResult, bodyMetricOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date, err := parseDate(input.Date, s.tracker.Now())
	if err != nil {
		return nil, bodyMetricOutput{}, err
	}

	m := models.NewBodyMetric().WithDate(date)
	m.Weight = input.Weight
	m.BodyFat = input.BodyFat
	m.Measurements = models.Measurements{
		Chest: input.Chest,
		Waist: input.Waist,
		Hips:  input.Hips,
		Bicep: input.Bicep,
		Thigh: input.Thigh,
	}

	added, err := s.tracker.Workouts.AddBodyMetric(*m)
	if err != nil {
		return nil, bodyMetricOutput{}, fmt.Errorf("failed to add body metric: %w", err)
	}
	v := newBodyMetricView(added)
	return nil, bodyMetricOutput{
		Found:   true,
		Metric:  &v,
		Message: fmt.Sprintf("Recorded body metrics (ID: %s)", shortID(added.ID)),
	}, nil
}

func (s *Server) handleLatestBodyMetrics(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, bodyMetricOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.tracker.Workouts.LatestBodyMetrics()
	if !ok {
		return nil, bodyMetricOutput{Message: "No body metrics recorded."}, nil
	}
	v := newBodyMetricView(m)
	return nil, bodyMetricOutput{Found: true, Metric: &v}, nil
}
