// ABOUTME: CLI commands for the exercise catalog and per-exercise analytics.
// ABOUTME: Supports list, add, history, 1rm, and best subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/models"
	"github.com/harperreed/gymtrack/internal/workouts"
	"github.com/spf13/cobra"
)

var (
	exerciseMuscle       string
	exerciseType         string
	exerciseInstructions string
	historyLimit         int
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Browse the exercise catalog and exercise history",
	Long: `Browse the exercise catalog, add custom exercises and review history.

One-rep maxes are estimated with the Epley formula: weight * (1 + reps/30).`,
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises grouped by muscle group",
	RunE: func(cmd *cobra.Command, args []string) error {
		groups := app.Workouts.ExercisesByMuscleGroup()
		bold := color.New(color.Bold)

		found := false
		for _, group := range app.Catalog.MuscleGroups() {
			if exerciseMuscle != "" && group != exerciseMuscle {
				continue
			}
			found = true
			bold.Println(group)
			for _, e := range groups[group] {
				fmt.Printf("  %s %s %s\n",
					faint.Sprint(padRight(e.ID, 8)),
					padRight(e.Name, 24),
					faint.Sprint(e.Type))
			}
		}
		if !found {
			fmt.Println("No exercises found.")
		}
		return nil
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom exercise",
	Long: `Add a custom exercise to the catalog.

Examples:
  gymtrack exercise add "Hip Thrust" --muscle Legs
  gymtrack exercise add "Rowing" --muscle Back --type cardio`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exerciseMuscle == "" {
			return fmt.Errorf("--muscle is required")
		}
		if !models.IsValidExerciseType(exerciseType) {
			return fmt.Errorf("unknown exercise type: %s (use strength, cardio or flexibility)", exerciseType)
		}

		e := models.NewExercise(args[0], exerciseMuscle, models.ExerciseType(exerciseType))
		if exerciseInstructions != "" {
			e.WithInstructions(exerciseInstructions)
		}
		added, err := app.Workouts.AddExercise(*e)
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added %s", added.Name)
		fmt.Printf("  ID: %s\n", added.ID)
		return nil
	},
}

var exerciseHistoryCmd = &cobra.Command{
	Use:   "history <exercise-id>",
	Short: "Show recent sets for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, ok := app.Catalog.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown exercise: %s", args[0])
		}

		entries := app.Workouts.ExerciseHistory(e.ID, historyLimit)
		if len(entries) == 0 {
			fmt.Printf("No history for %s.\n", e.Name)
			return nil
		}

		color.New(color.Bold).Println(e.Name)
		for _, h := range entries {
			best := 0.0
			for _, set := range h.Sets {
				if est := workouts.Calculate1RM(set.Weight, set.Reps); est > best {
					best = est
				}
			}
			fmt.Printf("  %s %s %s\n",
				faint.Sprint(formatDate(h.Date)),
				padRight(formatSets(h.Sets), 32),
				faint.Sprintf("e1RM %.1f", best))
		}
		if pb, ok := app.Workouts.PersonalBest(e.ID); ok {
			fmt.Printf("\nPersonal best e1RM: %.1f\n", pb)
		}
		return nil
	},
}

var exerciseOneRMCmd = &cobra.Command{
	Use:   "1rm <weight> <reps>",
	Short: "Estimate a one-rep max",
	Args:  cobra.ExactArgs(2),
	Annotations: map[string]string{
		skipTracker: "true",
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[0])
		}
		reps, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid reps: %s", args[1])
		}
		fmt.Printf("Estimated 1RM: %.1f\n", workouts.Calculate1RM(weight, reps))
		return nil
	},
}

var exerciseBestCmd = &cobra.Command{
	Use:   "best <exercise-id>",
	Short: "Show the personal best estimated 1RM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, ok := app.Catalog.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown exercise: %s", args[0])
		}
		pb, ok := app.Workouts.PersonalBest(e.ID)
		if !ok {
			fmt.Printf("No sets logged for %s.\n", e.Name)
			return nil
		}
		fmt.Printf("%s: %.1f\n", e.Name, pb)
		return nil
	},
}

func init() {
	exerciseListCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "filter by muscle group")

	exerciseAddCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "primary muscle group (required)")
	exerciseAddCmd.Flags().StringVarP(&exerciseType, "type", "t", string(models.ExerciseStrength), "strength, cardio or flexibility")
	exerciseAddCmd.Flags().StringVar(&exerciseInstructions, "instructions", "", "how to perform the exercise")

	exerciseHistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", workouts.DefaultHistoryLimit, "max number of entries")

	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseHistoryCmd)
	exerciseCmd.AddCommand(exerciseOneRMCmd)
	exerciseCmd.AddCommand(exerciseBestCmd)
	rootCmd.AddCommand(exerciseCmd)
}
