// ABOUTME: MCP resource implementations for gymtrack.
// ABOUTME: Provides gymtrack://summary and gymtrack://today resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	summaryURI = "gymtrack://summary"
	todayURI   = "gymtrack://today"
)

func (s *Server) registerResources() {
	// gymtrack://summary - dashboard across workouts, body metrics and goals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Training Summary Dashboard",
		Description: "Workout counts, weekly frequency, latest body metrics, goal progress and recent workouts",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// gymtrack://today - today's workout and active goals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Training",
		Description: "Today's workout, if any, and the active goals",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

type summaryResource struct {
	GeneratedAt     string             `json:"generated_at"`
	TotalWorkouts   int                `json:"total_workouts"`
	ThisWeek        int                `json:"this_week"`
	WeeklyFrequency float64            `json:"weekly_frequency"`
	CheckedInToday  bool               `json:"checked_in_today"`
	LatestBody      *bodyMetricView    `json:"latest_body_metrics,omitempty"`
	Goals           goalsSummaryOutput `json:"goals"`
	RecentWorkouts  []workoutView      `json:"recent_workouts"`
}

type todayResource struct {
	Date        string       `json:"date"`
	CheckedIn   bool         `json:"checked_in"`
	Workout     *workoutView `json:"workout,omitempty"`
	ActiveGoals []goalView   `json:"active_goals"`
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := s.tracker.Summary()
	result := summaryResource{
		GeneratedAt:     formatTime(s.tracker.Now()),
		TotalWorkouts:   sum.TotalWorkouts,
		ThisWeek:        sum.ThisWeek,
		WeeklyFrequency: sum.WeeklyFrequency,
		CheckedInToday:  sum.CheckedInToday,
		Goals: goalsSummaryOutput{
			Active:     sum.ActiveGoals,
			Completed:  sum.CompletedGoals,
			Progress:   sum.GoalsProgress,
			ByCategory: map[string]int{},
		},
	}
	for c, list := range s.tracker.Goals.GoalsByCategory() {
		result.Goals.ByCategory[string(c)] = len(list)
	}
	if m, ok := s.tracker.Workouts.LatestBodyMetrics(); ok {
		v := newBodyMetricView(m)
		result.LatestBody = &v
	}

	recent := s.tracker.Workouts.Workouts()
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	result.RecentWorkouts = s.workoutViews(recent)

	return jsonResource(summaryURI, result)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := todayResource{
		Date:        s.tracker.Now().Local().Format("2006-01-02"),
		ActiveGoals: goalViews(s.tracker.Goals.ActiveGoals()),
	}
	if w, ok := s.tracker.Workouts.TodayWorkout(); ok {
		v := s.workoutView(w)
		result.CheckedIn = true
		result.Workout = &v
	}

	return jsonResource(todayURI, result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
