// ABOUTME: Goal and Milestone models with category and status enums.
// ABOUTME: GoalPatch and MilestonePatch carry partial updates.
package models

import (
	"time"
)

// GoalCategory groups goals by the kind of result being tracked.
type GoalCategory string

const (
	GoalStrength    GoalCategory = "strength"
	GoalWeight      GoalCategory = "weight"
	GoalEndurance   GoalCategory = "endurance"
	GoalFlexibility GoalCategory = "flexibility"
	GoalMuscle      GoalCategory = "muscle"
	GoalOther       GoalCategory = "other"
)

// AllGoalCategories returns all valid goal categories.
var AllGoalCategories = []GoalCategory{
	GoalStrength, GoalWeight, GoalEndurance, GoalFlexibility, GoalMuscle, GoalOther,
}

// IsValidGoalCategory checks if a string is a valid goal category.
func IsValidGoalCategory(s string) bool {
	for _, c := range AllGoalCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
	GoalCancelled GoalStatus = "cancelled"
)

// AllGoalStatuses returns all valid goal statuses.
var AllGoalStatuses = []GoalStatus{GoalActive, GoalCompleted, GoalPaused, GoalCancelled}

// IsValidGoalStatus checks if a string is a valid goal status.
func IsValidGoalStatus(s string) bool {
	for _, st := range AllGoalStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

// Milestone is an intermediate target owned by a goal.
type Milestone struct {
	ID           string
	Title        string
	TargetValue  float64
	CurrentValue float64
	Completed    bool
	Deadline     time.Time
}

// NewMilestone creates a new uncompleted Milestone.
func NewMilestone(title string, target float64, deadline time.Time) *Milestone {
	return &Milestone{
		ID:          NewID(),
		Title:       title,
		TargetValue: target,
		Deadline:    deadline,
	}
}

// Goal is a measurable target with optional milestones.
type Goal struct {
	ID           string
	Title        string
	Description  string
	Category     GoalCategory
	TargetValue  float64
	CurrentValue float64
	Unit         string
	Deadline     time.Time
	Status       GoalStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Milestones   []Milestone
	Notes        *string
}

// NewGoal creates a new active Goal.
func NewGoal(title string, category GoalCategory, target float64, unit string, deadline time.Time) *Goal {
	now := time.Now()
	return &Goal{
		ID:          NewID(),
		Title:       title,
		Category:    category,
		TargetValue: target,
		Unit:        unit,
		Deadline:    deadline,
		Status:      GoalActive,
		CreatedAt:   now,
		UpdatedAt:   now,
		Milestones:  []Milestone{},
	}
}

// WithDescription sets the goal description.
func (g *Goal) WithDescription(desc string) *Goal {
	g.Description = desc
	return g
}

// WithCurrentValue sets the starting value.
func (g *Goal) WithCurrentValue(v float64) *Goal {
	g.CurrentValue = v
	return g
}

// WithNotes sets notes on the goal.
func (g *Goal) WithNotes(notes string) *Goal {
	g.Notes = &notes
	return g
}

// WithMilestone appends a milestone.
func (g *Goal) WithMilestone(m Milestone) *Goal {
	g.Milestones = append(g.Milestones, m)
	return g
}

// Clone returns a deep copy.
func (g Goal) Clone() Goal {
	out := g
	out.Notes = clonePtr(g.Notes)
	if g.Milestones != nil {
		out.Milestones = append([]Milestone(nil), g.Milestones...)
	}
	return out
}

// GoalPatch is a partial goal update. Nil fields are left unchanged.
type GoalPatch struct {
	Title        *string
	Description  *string
	Category     *GoalCategory
	TargetValue  *float64
	CurrentValue *float64
	Unit         *string
	Deadline     *time.Time
	Status       *GoalStatus
	Milestones   []Milestone
	Notes        *string
}

// Apply merges the patch into g. Timestamps are the caller's concern.
func (p GoalPatch) Apply(g *Goal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.TargetValue != nil {
		g.TargetValue = *p.TargetValue
	}
	if p.CurrentValue != nil {
		g.CurrentValue = *p.CurrentValue
	}
	if p.Unit != nil {
		g.Unit = *p.Unit
	}
	if p.Deadline != nil {
		g.Deadline = *p.Deadline
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
	if p.Milestones != nil {
		g.Milestones = append([]Milestone{}, p.Milestones...)
		assignMilestoneIDs(g.Milestones)
	}
	if p.Notes != nil {
		g.Notes = clonePtr(p.Notes)
	}
}

// MilestonePatch is a partial milestone update.
type MilestonePatch struct {
	Title        *string
	TargetValue  *float64
	CurrentValue *float64
	Completed    *bool
	Deadline     *time.Time
}

// Apply merges the patch into m.
func (p MilestonePatch) Apply(m *Milestone) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.TargetValue != nil {
		m.TargetValue = *p.TargetValue
	}
	if p.CurrentValue != nil {
		m.CurrentValue = *p.CurrentValue
	}
	if p.Completed != nil {
		m.Completed = *p.Completed
	}
	if p.Deadline != nil {
		m.Deadline = *p.Deadline
	}
}
