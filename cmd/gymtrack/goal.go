// ABOUTME: CLI commands for goals and their milestones.
// ABOUTME: Supports add, list, show, progress, update, delete, and milestone subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/goals"
	"github.com/harperreed/gymtrack/internal/models"
	"github.com/harperreed/gymtrack/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	goalCategory    string
	goalTarget      float64
	goalCurrent     float64
	goalUnit        string
	goalDeadline    string
	goalDescription string
	goalNotes       string
	goalTitle       string
	goalStatus      string

	goalListStatus   string
	goalListCategory string

	goalUpdateCategory string

	milestoneTarget   float64
	milestoneCurrent  float64
	milestoneTitle    string
	milestoneDeadline string
)

var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"g"},
	Short:   "Manage fitness goals",
	Long: `Track measurable goals with optional milestones.

CATEGORIES: strength, weight, endurance, flexibility, muscle, other
STATUSES:   active, completed, paused, cancelled

Recording progress that reaches the target completes an active goal.
Completion is never undone by later progress updates.

EXAMPLES:

  gymtrack goal add "Squat 140" --category strength --target 140 --current 120 --unit kg
  gymtrack goal progress abc123 130
  gymtrack goal milestone add abc123 "Squat 130" --target 130`,
}

var goalAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidGoalCategory(goalCategory) {
			return fmt.Errorf("unknown goal category: %s", goalCategory)
		}
		deadline := app.Now().AddDate(0, 1, 0)
		if goalDeadline != "" {
			t, err := parseTime(goalDeadline)
			if err != nil {
				return fmt.Errorf("invalid deadline: %s", goalDeadline)
			}
			deadline = t
		}

		g := models.NewGoal(args[0], models.GoalCategory(goalCategory), goalTarget, goalUnit, deadline).
			WithCurrentValue(goalCurrent)
		if goalDescription != "" {
			g.WithDescription(goalDescription)
		}
		if goalNotes != "" {
			g.WithNotes(goalNotes)
		}

		added, err := app.Goals.Add(*g)
		if err != nil {
			return fmt.Errorf("failed to add goal: %w", err)
		}

		color.Green("✓ Added goal %q", added.Title)
		fmt.Printf("  ID: %s\n", shortID(added.ID))
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals with progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		found := false
		for _, g := range app.Goals.Goals() {
			if goalListStatus != "" && string(g.Status) != goalListStatus {
				continue
			}
			if goalListCategory != "" && string(g.Category) != goalListCategory {
				continue
			}
			found = true
			p := goals.Progress(g)
			fmt.Printf("%s %s %s %s %s\n",
				faint.Sprint(shortID(g.ID)),
				padRight(truncate(g.Title, 28), 28),
				progressBar(p, 10),
				padRight(fmt.Sprintf("%.0f%%", p), 4),
				statusLabel(g.Status))
		}
		if !found {
			fmt.Println("No goals found.")
			return nil
		}
		fmt.Printf("\nOverall progress: %d%%\n", app.Goals.GoalsProgress())
		return nil
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a goal with its milestones",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := app.ResolveGoal(args[0])
		if err != nil {
			return err
		}
		printGoal(g)
		return nil
	},
}

var goalProgressCmd = &cobra.Command{
	Use:   "progress <id> <value>",
	Short: "Record the current value of a goal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := app.ResolveGoal(args[0])
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}
		if err := app.Goals.UpdateProgress(g.ID, value); err != nil {
			return fmt.Errorf("failed to update progress: %w", err)
		}

		updated, _ := app.Goals.Get(g.ID)
		fmt.Printf("%s %s/%s %s %s\n",
			updated.Title,
			formatNumber(updated.CurrentValue),
			formatNumber(updated.TargetValue),
			updated.Unit,
			progressBar(goals.Progress(updated), 20))
		if g.Status != models.GoalCompleted && updated.Status == models.GoalCompleted {
			color.Green("✓ Goal completed!")
		}
		return nil
	},
}

var goalUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a goal's fields",
	Long: `Change a goal's fields. Only the flags you pass are changed.

Examples:
  gymtrack goal update abc123 --target 150 --deadline 2024-09-01
  gymtrack goal update abc123 --status paused`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := app.ResolveGoal(args[0])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		var patch models.GoalPatch
		if flags.Changed("title") {
			patch.Title = &goalTitle
		}
		if flags.Changed("description") {
			patch.Description = &goalDescription
		}
		if flags.Changed("category") {
			if !models.IsValidGoalCategory(goalUpdateCategory) {
				return fmt.Errorf("unknown goal category: %s", goalUpdateCategory)
			}
			c := models.GoalCategory(goalUpdateCategory)
			patch.Category = &c
		}
		if flags.Changed("target") {
			patch.TargetValue = &goalTarget
		}
		if flags.Changed("unit") {
			patch.Unit = &goalUnit
		}
		if flags.Changed("deadline") {
			t, err := parseTime(goalDeadline)
			if err != nil {
				return fmt.Errorf("invalid deadline: %s", goalDeadline)
			}
			patch.Deadline = &t
		}
		if flags.Changed("status") {
			if !models.IsValidGoalStatus(goalStatus) {
				return fmt.Errorf("unknown goal status: %s", goalStatus)
			}
			st := models.GoalStatus(goalStatus)
			patch.Status = &st
		}
		if flags.Changed("notes") {
			patch.Notes = &goalNotes
		}

		if err := app.Goals.Update(g.ID, patch); err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}
		color.Green("✓ Updated goal %q", g.Title)
		return nil
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a goal and its milestones",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := app.ResolveGoal(args[0])
		if err != nil {
			return err
		}
		if err := app.Goals.Delete(g.ID); err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}
		color.Yellow("✗ Deleted goal %q", g.Title)
		return nil
	},
}

var milestoneCmd = &cobra.Command{
	Use:     "milestone",
	Aliases: []string{"ms"},
	Short:   "Manage goal milestones",
}

var milestoneAddCmd = &cobra.Command{
	Use:   "add <goal-id> <title>",
	Short: "Add a milestone to a goal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := app.ResolveGoal(args[0])
		if err != nil {
			return err
		}
		deadline := g.Deadline
		if milestoneDeadline != "" {
			deadline, err = parseTime(milestoneDeadline)
			if err != nil {
				return fmt.Errorf("invalid deadline: %s", milestoneDeadline)
			}
		}

		m := models.NewMilestone(args[1], milestoneTarget, deadline)
		m.CurrentValue = milestoneCurrent
		added, _, err := app.Goals.AddMilestone(g.ID, *m)
		if err != nil {
			return fmt.Errorf("failed to add milestone: %w", err)
		}
		color.Green("✓ Added milestone %q to %q", added.Title, g.Title)
		fmt.Printf("  ID: %s\n", shortID(added.ID))
		return nil
	},
}

var milestoneUpdateCmd = &cobra.Command{
	Use:   "update <goal-id> <milestone-id>",
	Short: "Change a milestone's fields",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, m, err := resolveMilestone(args[0], args[1])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		var patch models.MilestonePatch
		if flags.Changed("title") {
			patch.Title = &milestoneTitle
		}
		if flags.Changed("target") {
			patch.TargetValue = &milestoneTarget
		}
		if flags.Changed("current") {
			patch.CurrentValue = &milestoneCurrent
		}
		if flags.Changed("deadline") {
			t, err := parseTime(milestoneDeadline)
			if err != nil {
				return fmt.Errorf("invalid deadline: %s", milestoneDeadline)
			}
			patch.Deadline = &t
		}

		if err := app.Goals.UpdateMilestone(g.ID, m.ID, patch); err != nil {
			return fmt.Errorf("failed to update milestone: %w", err)
		}
		color.Green("✓ Updated milestone %q", m.Title)
		return nil
	},
}

var milestoneDoneCmd = &cobra.Command{
	Use:   "done <goal-id> <milestone-id>",
	Short: "Mark a milestone reached",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, m, err := resolveMilestone(args[0], args[1])
		if err != nil {
			return err
		}
		done := true
		if err := app.Goals.UpdateMilestone(g.ID, m.ID, models.MilestonePatch{Completed: &done}); err != nil {
			return fmt.Errorf("failed to update milestone: %w", err)
		}
		color.Green("✓ Milestone %q reached", m.Title)
		return nil
	},
}

var milestoneDeleteCmd = &cobra.Command{
	Use:     "delete <goal-id> <milestone-id>",
	Aliases: []string{"del", "rm"},
	Short:   "Remove a milestone",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, m, err := resolveMilestone(args[0], args[1])
		if err != nil {
			return err
		}
		if err := app.Goals.DeleteMilestone(g.ID, m.ID); err != nil {
			return fmt.Errorf("failed to delete milestone: %w", err)
		}
		color.Yellow("✗ Deleted milestone %q", m.Title)
		return nil
	},
}

func resolveMilestone(goalID, milestoneID string) (models.Goal, models.Milestone, error) {
	g, err := app.ResolveGoal(goalID)
	if err != nil {
		return models.Goal{}, models.Milestone{}, err
	}
	m, err := tracker.ResolveMilestone(g, milestoneID)
	if err != nil {
		return models.Goal{}, models.Milestone{}, err
	}
	return g, m, nil
}

func statusLabel(s models.GoalStatus) string {
	switch s {
	case models.GoalCompleted:
		return color.GreenString(string(s))
	case models.GoalPaused:
		return color.YellowString(string(s))
	case models.GoalCancelled:
		return faint.Sprint(string(s))
	default:
		return string(s)
	}
}

func printGoal(g models.Goal) {
	color.New(color.Bold).Println(g.Title)
	fmt.Printf("  ID:       %s\n", g.ID)
	if g.Description != "" {
		fmt.Printf("  About:    %s\n", g.Description)
	}
	fmt.Printf("  Category: %s\n", g.Category)
	fmt.Printf("  Status:   %s\n", statusLabel(g.Status))
	fmt.Printf("  Progress: %s/%s %s %s %.0f%%\n",
		formatNumber(g.CurrentValue), formatNumber(g.TargetValue), g.Unit,
		progressBar(goals.Progress(g), 20), goals.Progress(g))
	fmt.Printf("  Deadline: %s\n", g.Deadline.Local().Format("2006-01-02"))
	if g.Notes != nil && *g.Notes != "" {
		fmt.Printf("  Notes:    %s\n", *g.Notes)
	}
	if len(g.Milestones) == 0 {
		return
	}
	fmt.Println("\n  Milestones:")
	for _, m := range g.Milestones {
		check := "○"
		if m.Completed {
			check = color.GreenString("✓")
		}
		fmt.Printf("    %s %s %s %s/%s %s\n",
			check,
			faint.Sprint(shortID(m.ID)),
			padRight(m.Title, 20),
			formatNumber(m.CurrentValue),
			formatNumber(m.TargetValue),
			faint.Sprint(m.Deadline.Local().Format("2006-01-02")))
	}
}

func init() {
	goalAddCmd.Flags().StringVarP(&goalCategory, "category", "c", string(models.GoalOther), "goal category")
	goalAddCmd.Flags().Float64Var(&goalTarget, "target", 0, "target value")
	goalAddCmd.Flags().Float64Var(&goalCurrent, "current", 0, "starting value")
	goalAddCmd.Flags().StringVarP(&goalUnit, "unit", "u", "", "unit of the values (kg, minutes, reps)")
	goalAddCmd.Flags().StringVar(&goalDeadline, "deadline", "", "deadline (YYYY-MM-DD), default one month from now")
	goalAddCmd.Flags().StringVar(&goalDescription, "description", "", "longer description")
	goalAddCmd.Flags().StringVar(&goalNotes, "notes", "", "notes")

	goalListCmd.Flags().StringVarP(&goalListStatus, "status", "s", "", "filter by status")
	goalListCmd.Flags().StringVarP(&goalListCategory, "category", "c", "", "filter by category")

	goalUpdateCmd.Flags().StringVar(&goalTitle, "title", "", "new title")
	goalUpdateCmd.Flags().StringVar(&goalDescription, "description", "", "new description")
	goalUpdateCmd.Flags().StringVarP(&goalUpdateCategory, "category", "c", "", "new category")
	goalUpdateCmd.Flags().Float64Var(&goalTarget, "target", 0, "new target value")
	goalUpdateCmd.Flags().StringVarP(&goalUnit, "unit", "u", "", "new unit")
	goalUpdateCmd.Flags().StringVar(&goalDeadline, "deadline", "", "new deadline (YYYY-MM-DD)")
	goalUpdateCmd.Flags().StringVarP(&goalStatus, "status", "s", "", "new status")
	goalUpdateCmd.Flags().StringVar(&goalNotes, "notes", "", "new notes")

	milestoneAddCmd.Flags().Float64Var(&milestoneTarget, "target", 0, "milestone target value")
	milestoneAddCmd.Flags().Float64Var(&milestoneCurrent, "current", 0, "starting value")
	milestoneAddCmd.Flags().StringVar(&milestoneDeadline, "deadline", "", "deadline (YYYY-MM-DD), default the goal deadline")

	milestoneUpdateCmd.Flags().StringVar(&milestoneTitle, "title", "", "new title")
	milestoneUpdateCmd.Flags().Float64Var(&milestoneTarget, "target", 0, "new target value")
	milestoneUpdateCmd.Flags().Float64Var(&milestoneCurrent, "current", 0, "new current value")
	milestoneUpdateCmd.Flags().StringVar(&milestoneDeadline, "deadline", "", "new deadline (YYYY-MM-DD)")

	milestoneCmd.AddCommand(milestoneAddCmd)
	milestoneCmd.AddCommand(milestoneUpdateCmd)
	milestoneCmd.AddCommand(milestoneDoneCmd)
	milestoneCmd.AddCommand(milestoneDeleteCmd)

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalShowCmd)
	goalCmd.AddCommand(goalProgressCmd)
	goalCmd.AddCommand(goalUpdateCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	goalCmd.AddCommand(milestoneCmd)
	rootCmd.AddCommand(goalCmd)
}
