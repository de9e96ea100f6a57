// ABOUTME: MCP tool implementations for goals and milestones.
// ABOUTME: Progress updates auto-complete active goals that reach their target.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/gymtrack/internal/models"
	"github.com/harperreed/gymtrack/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerGoalTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List goals with progress, optionally filtered by status or category",
	}, s.handleListGoals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_goal",
		Description: "Create a new fitness goal",
	}, s.handleAddGoal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_goal_progress",
		Description: "Set a goal's current value; active goals reaching their target are completed",
	}, s.handleUpdateGoalProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_goal",
		Description: "Change a goal's title, target, deadline, status or notes",
	}, s.handleUpdateGoal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_goal",
		Description: "Delete a goal and its milestones",
	}, s.handleDeleteGoal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_milestone",
		Description: "Add a milestone to a goal",
	}, s.handleAddMilestone)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_milestone",
		Description: "Update a milestone's value, target, deadline or completion",
	}, s.handleUpdateMilestone)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_milestone",
		Description: "Remove a milestone from a goal",
	}, s.handleDeleteMilestone)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "goals_summary",
		Description: "Active and completed counts, overall progress and goals per category",
	}, s.handleGoalsSummary)
}

type listGoalsInput struct {
	Status   string `json:"status,omitempty" jsonschema:"Filter by status (active, completed, paused, cancelled)"`
	Category string `json:"category,omitempty" jsonschema:"Filter by category (strength, weight, endurance, flexibility, muscle, other)"`
}

type goalListOutput struct {
	Goals []goalView `json:"goals"`
	Count int        `json:"count"`
}

type goalOutput struct {
	Goal    goalView `json:"goal"`
	Message string   `json:"message,omitempty"`
}

type addGoalInput struct {
	Title        string  `json:"title" jsonschema:"Goal title"`
	Category     string  `json:"category" jsonschema:"strength, weight, endurance, flexibility, muscle or other"`
	TargetValue  float64 `json:"target_value" jsonschema:"Target value"`
	CurrentValue float64 `json:"current_value,omitempty" jsonschema:"Starting value"`
	Unit         string  `json:"unit" jsonschema:"Unit of the values (kg, minutes, reps, etc.)"`
	Deadline     string  `json:"deadline" jsonschema:"Deadline (YYYY-MM-DD or RFC 3339)"`
	Description  string  `json:"description,omitempty" jsonschema:"Longer description"`
	Notes        string  `json:"notes,omitempty" jsonschema:"Notes"`
}

type goalProgressInput struct {
	ID    string  `json:"id" jsonschema:"Goal ID or prefix"`
	Value float64 `json:"value" jsonschema:"New current value"`
}

type updateGoalInput struct {
	ID          string   `json:"id" jsonschema:"Goal ID or prefix"`
	Title       *string  `json:"title,omitempty" jsonschema:"New title"`
	Description *string  `json:"description,omitempty" jsonschema:"New description"`
	Category    *string  `json:"category,omitempty" jsonschema:"New category"`
	TargetValue *float64 `json:"target_value,omitempty" jsonschema:"New target value"`
	Unit        *string  `json:"unit,omitempty" jsonschema:"New unit"`
	Deadline    *string  `json:"deadline,omitempty" jsonschema:"New deadline (YYYY-MM-DD or RFC 3339)"`
	Status      *string  `json:"status,omitempty" jsonschema:"New status (active, completed, paused, cancelled)"`
	Notes       *string  `json:"notes,omitempty" jsonschema:"New notes"`
}

type goalIDInput struct {
	ID string `json:"id" jsonschema:"Goal ID or prefix"`
}

type addMilestoneInput struct {
	GoalID      string  `json:"goal_id" jsonschema:"Goal ID or prefix"`
	Title       string  `json:"title" jsonschema:"Milestone title"`
	TargetValue float64 `json:"target_value" jsonschema:"Milestone target value"`
	Deadline    string  `json:"deadline" jsonschema:"Deadline (YYYY-MM-DD or RFC 3339)"`
}

type updateMilestoneInput struct {
	GoalID       string   `json:"goal_id" jsonschema:"Goal ID or prefix"`
	MilestoneID  string   `json:"milestone_id" jsonschema:"Milestone ID or prefix"`
	Title        *string  `json:"title,omitempty" jsonschema:"New title"`
	TargetValue  *float64 `json:"target_value,omitempty" jsonschema:"New target value"`
	CurrentValue *float64 `json:"current_value,omitempty" jsonschema:"New current value"`
	Completed    *bool    `json:"completed,omitempty" jsonschema:"Whether the milestone is reached"`
	Deadline     *string  `json:"deadline,omitempty" jsonschema:"New deadline (YYYY-MM-DD or RFC 3339)"`
}

type milestoneIDInput struct {
	GoalID      string `json:"goal_id" jsonschema:"Goal ID or prefix"`
	MilestoneID string `json:"milestone_id" jsonschema:"Milestone ID or prefix"`
}

type goalsSummaryOutput struct {
	Active     int            `json:"active"`
	Completed  int            `json:"completed"`
	Progress   int            `json:"progress_percent"`
	ByCategory map[string]int `json:"by_category"`
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input listGoalsInput) (*mcp.CallToolResult, goalListOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []models.Goal
	for _, g := range s.tracker.Goals.Goals() {
		if input.Status != "" && string(g.Status) != input.Status {
			continue
		}
		if input.Category != "" && string(g.Category) != input.Category {
			continue
		}
		list = append(list, g)
	}
	return nil, goalListOutput{Goals: goalViews(list), Count: len(list)}, nil
}

func (s *Server) handleAddGoal(ctx context.Context, req *mcp.CallToolRequest, input addGoalInput) (*mcp.CallToolResult, goalOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Title == "" {
		return nil, goalOutput{}, fmt.Errorf("title is required")
	}
	if !models.IsValidGoalCategory(input.Category) {
		return nil, goalOutput{}, fmt.Errorf("unknown goal category: %s", input.Category)
	}
	deadline, err := parseDate(input.Deadline, s.tracker.Now().AddDate(0, 1, 0))
	if err != nil {
		return nil, goalOutput{}, err
	}

	g := models.NewGoal(input.Title, models.GoalCategory(input.Category), input.TargetValue, input.Unit, deadline).
		WithCurrentValue(input.CurrentValue)
	if input.Description != "" {
		g.WithDescription(input.Description)
	}
	if input.Notes != "" {
		g.WithNotes(input.Notes)
	}

	added, err := s.tracker.Goals.Add(*g)
	if err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to add goal: %w", err)
	}
	return nil, goalOutput{
		Goal:    newGoalView(added),
		Message: fmt.Sprintf("Added goal %q (ID: %s)", added.Title, shortID(added.ID)),
	}, nil
}

func (s *Server) handleUpdateGoalProgress(ctx context.Context, req *mcp.CallToolRequest, input goalProgressInput) (*mcp.CallToolResult, goalOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.tracker.ResolveGoal(input.ID)
	if err != nil {
		return nil, goalOutput{}, err
	}
	if err := s.tracker.Goals.UpdateProgress(g.ID, input.Value); err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to update progress: %w", err)
	}

	updated, _ := s.tracker.Goals.Get(g.ID)
	msg := fmt.Sprintf("%s: %.1f/%.1f %s", updated.Title, updated.CurrentValue, updated.TargetValue, updated.Unit)
	if g.Status != models.GoalCompleted && updated.Status == models.GoalCompleted {
		msg += " (goal completed!)"
	}
	return nil, goalOutput{Goal: newGoalView(updated), Message: msg}, nil
}

func (s *Server) handleUpdateGoal(ctx context.Context, req *mcp.CallToolRequest, input updateGoalInput) (*mcp.CallToolResult, goalOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.tracker.ResolveGoal(input.ID)
	if err != nil {
		return nil, goalOutput{}, err
	}

	patch := models.GoalPatch{
		Title:       input.Title,
		Description: input.Description,
		TargetValue: input.TargetValue,
		Unit:        input.Unit,
		Notes:       input.Notes,
	}
	if input.Category != nil {
		if !models.IsValidGoalCategory(*input.Category) {
			return nil, goalOutput{}, fmt.Errorf("unknown goal category: %s", *input.Category)
		}
		c := models.GoalCategory(*input.Category)
		patch.Category = &c
	}
	if input.Status != nil {
		if !models.IsValidGoalStatus(*input.Status) {
			return nil, goalOutput{}, fmt.Errorf("unknown goal status: %s", *input.Status)
		}
		st := models.GoalStatus(*input.Status)
		patch.Status = &st
	}
	if input.Deadline != nil {
		d, err := parseDate(*input.Deadline, g.Deadline)
		if err != nil {
			return nil, goalOutput{}, err
		}
		patch.Deadline = &d
	}

	if err := s.tracker.Goals.Update(g.ID, patch); err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to update goal: %w", err)
	}
	updated, _ := s.tracker.Goals.Get(g.ID)
	return nil, goalOutput{Goal: newGoalView(updated), Message: "Goal updated"}, nil
}

func (s *Server) handleDeleteGoal(ctx context.Context, req *mcp.CallToolRequest, input goalIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.tracker.ResolveGoal(input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.tracker.Goals.Delete(g.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted goal %q", g.Title)}, nil
}

func (s *Server) handleAddMilestone(ctx context.Context, req *mcp.CallToolRequest, input addMilestoneInput) (*mcp.CallToolResult, goalOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.tracker.ResolveGoal(input.GoalID)
	if err != nil {
		return nil, goalOutput{}, err
	}
	if input.Title == "" {
		return nil, goalOutput{}, fmt.Errorf("title is required")
	}
	deadline, err := parseDate(input.Deadline, g.Deadline)
	if err != nil {
		return nil, goalOutput{}, err
	}

	m, _, err := s.tracker.Goals.AddMilestone(g.ID, *models.NewMilestone(input.Title, input.TargetValue, deadline))
	if err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to add milestone: %w", err)
	}
	updated, _ := s.tracker.Goals.Get(g.ID)
	return nil, goalOutput{
		Goal:    newGoalView(updated),
		Message: fmt.Sprintf("Added milestone %q (ID: %s)", m.Title, shortID(m.ID)),
	}, nil
}

func (s *Server) handleUpdateMilestone(ctx context.Context, req *mcp.CallToolRequest, input updateMilestoneInput) (*mcp.CallToolResult, goalOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.tracker.ResolveGoal(input.GoalID)
	if err != nil {
		return nil, goalOutput{}, err
	}
	m, err := tracker.ResolveMilestone(g, input.MilestoneID)
	if err != nil {
		return nil, goalOutput{}, err
	}

	patch := models.MilestonePatch{
		Title:        input.Title,
		TargetValue:  input.TargetValue,
		CurrentValue: input.CurrentValue,
		Completed:    input.Completed,
	}
	if input.Deadline != nil {
		d, err := parseDate(*input.Deadline, m.Deadline)
		if err != nil {
			return nil, goalOutput{}, err
		}
		patch.Deadline = &d
	}

	if err := s.tracker.Goals.UpdateMilestone(g.ID, m.ID, patch); err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to update milestone: %w", err)
	}
	updated, _ := s.tracker.Goals.Get(g.ID)
	return nil, goalOutput{Goal: newGoalView(updated), Message: "Milestone updated"}, nil
}

func (s *Server) handleDeleteMilestone(ctx context.Context, req *mcp.CallToolRequest, input milestoneIDInput) (*mcp.CallToolResult, goalOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.tracker.ResolveGoal(input.GoalID)
	if err != nil {
		return nil, goalOutput{}, err
	}
	m, err := tracker.ResolveMilestone(g, input.MilestoneID)
	if err != nil {
		return nil, goalOutput{}, err
	}
	if err := s.tracker.Goals.DeleteMilestone(g.ID, m.ID); err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to delete milestone: %w", err)
	}
	updated, _ := s.tracker.Goals.Get(g.ID)
	return nil, goalOutput{
		Goal:    newGoalView(updated),
		Message: fmt.Sprintf("Deleted milestone %q", m.Title),
	}, nil
}

func (s *Server) handleGoalsSummary(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, goalsSummaryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := goalsSummaryOutput{
		Active:     len(s.tracker.Goals.ActiveGoals()),
		Completed:  len(s.tracker.Goals.CompletedGoals()),
		Progress:   s.tracker.Goals.GoalsProgress(),
		ByCategory: map[string]int{},
	}
	for c, list := range s.tracker.Goals.GoalsByCategory() {
		out.ByCategory[string(c)] = len(list)
	}
	return nil, out, nil
}
