// ABOUTME: CLI commands for managing workouts.
// ABOUTME: Supports add, list, show, log, done, delete, and week subcommands.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/models"
	"github.com/harperreed/gymtrack/internal/workouts"
	"github.com/spf13/cobra"
)

var (
	workoutDate     string
	workoutDuration int
	workoutNotes    string
	workoutType     string
	workoutLimit    int

	logSets  []string
	logRest  int
	logNotes string
	logPR    bool
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Track workout sessions made of exercises and sets.

WORKFLOW:

  1. Create a workout:     gymtrack workout add Push
  2. Log exercises to it:  gymtrack workout log abc123 1 --set 10x60 --set 8x70
  3. Finish it:            gymtrack workout done abc123 --duration 60
  4. View the details:     gymtrack workout show abc123

Exercise ids come from 'gymtrack exercise list'. Workout ids can be given
as any unique prefix.`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Add a new workout",
	Long: `Add a new workout session.

Examples:
  gymtrack workout add Push
  gymtrack workout add Legs --date 2024-03-10 --duration 75 --notes "Heavy day"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := models.NewWorkout(args[0]).WithDate(app.Now())
		if workoutDate != "" {
			t, err := parseTime(workoutDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s", workoutDate)
			}
			w.WithDate(t)
		}
		if workoutDuration > 0 {
			w.WithDuration(workoutDuration)
		}
		if workoutNotes != "" {
			w.WithNotes(workoutNotes)
		}

		created, err := app.Workouts.Create(*w)
		if err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		color.Green("✓ Added %s workout", created.Type)
		fmt.Printf("  ID: %s\n", shortID(created.ID))
		if created.Duration > 0 {
			fmt.Printf("  Duration: %d min\n", created.Duration)
		}
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		var list []models.Workout
		for _, w := range app.Workouts.Workouts() {
			if workoutType == "" || w.Type == workoutType {
				list = append(list, w)
			}
		}
		if len(list) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Date.After(list[j].Date)
		})
		if workoutLimit > 0 && len(list) > workoutLimit {
			list = list[:workoutLimit]
		}
		printWorkoutLines(list)
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout with its exercises and sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := app.ResolveWorkout(args[0])
		if err != nil {
			return err
		}
		printWorkout(w)
		return nil
	},
}

var workoutLogCmd = &cobra.Command{
	Use:   "log <workout-id> <exercise-id>",
	Short: "Log an exercise with its sets to a workout",
	Long: `Append an exercise to a workout.

Each --set is REPSxWEIGHT; a bare REPS means bodyweight. Rest defaults to
the profile rest time.

Examples:
  gymtrack workout log abc123 1 --set 12x60 --set 10x65 --set 8x70
  gymtrack workout log abc123 5 --set 10 --set 8 --rest 120 --pr`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := app.ResolveWorkout(args[0])
		if err != nil {
			return err
		}
		exercise, ok := app.Catalog.Lookup(args[1])
		if !ok {
			return fmt.Errorf("unknown exercise: %s (see 'gymtrack exercise list')", args[1])
		}
		if len(logSets) == 0 {
			return fmt.Errorf("at least one --set is required")
		}

		rest := app.Session().Preferences().RestSeconds()
		if logRest > 0 {
			rest = logRest
		}
		entry := models.WorkoutExercise{ExerciseID: exercise.ID, PersonalRecord: logPR}
		for _, s := range logSets {
			set, err := parseSet(s)
			if err != nil {
				return err
			}
			set.Rest = rest
			entry.Sets = append(entry.Sets, set)
		}
		if logNotes != "" {
			entry.Notes = &logNotes
		}

		exercises := append(append([]models.WorkoutExercise(nil), w.Exercises...), entry)
		if err := app.Workouts.Update(w.ID, models.WorkoutPatch{Exercises: exercises}); err != nil {
			return fmt.Errorf("failed to log exercise: %w", err)
		}

		color.Green("✓ Logged %s", exercise.Name)
		fmt.Printf("  %s\n", formatSets(entry.Sets))
		return nil
	},
}

var workoutDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a workout completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := app.ResolveWorkout(args[0])
		if err != nil {
			return err
		}

		done := true
		end := app.Now()
		patch := models.WorkoutPatch{Completed: &done, EndTime: &end}
		if workoutDuration > 0 {
			patch.Duration = &workoutDuration
		}
		if err := app.Workouts.Update(w.ID, patch); err != nil {
			return fmt.Errorf("failed to complete workout: %w", err)
		}

		color.Green("✓ Completed %s workout", w.Type)
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := app.ResolveWorkout(args[0])
		if err != nil {
			return err
		}
		if err := app.Workouts.Delete(w.ID); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Yellow("✗ Deleted %s workout", w.Type)
		fmt.Printf("  %s %s\n", faint.Sprint(shortID(w.ID)), formatDate(w.Date))
		return nil
	},
}

var workoutWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "List this week's workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end := workouts.WeekBounds(app.Now(), app.Session().Preferences().WeekStart())
		list := app.Workouts.ThisWeekWorkouts()

		fmt.Printf("Week of %s to %s\n", start.Format("Mon Jan 2"), end.Format("Mon Jan 2"))
		if len(list) == 0 {
			fmt.Println("No workouts this week.")
			return nil
		}
		printWorkoutLines(list)
		fmt.Printf("\n%d workouts, %.2f per day\n", len(list), app.Workouts.WeeklyFrequency())
		return nil
	},
}

func printWorkoutLines(list []models.Workout) {
	for _, w := range list {
		status := " "
		if w.Completed {
			status = color.GreenString("✓")
		}
		fmt.Printf("%s %s %s %s %s\n",
			faint.Sprint(shortID(w.ID)),
			faint.Sprint(formatDate(w.Date)),
			status,
			padRight(w.Type, 12),
			faint.Sprintf("%d exercises, %d min", len(w.Exercises), w.Duration))
	}
}

func printWorkout(w models.Workout) {
	color.New(color.Bold).Printf("%s workout\n", w.Type)
	fmt.Printf("  ID:       %s\n", w.ID)
	fmt.Printf("  Date:     %s\n", formatDate(w.Date))
	fmt.Printf("  Duration: %d min\n", w.Duration)
	if w.Completed {
		fmt.Printf("  Status:   %s\n", color.GreenString("completed"))
	} else {
		fmt.Printf("  Status:   in progress\n")
	}
	if w.Notes != nil && *w.Notes != "" {
		fmt.Printf("  Notes:    %s\n", *w.Notes)
	}
	if len(w.Exercises) == 0 {
		return
	}
	fmt.Println()
	for _, e := range w.Exercises {
		name := e.ExerciseID
		if ex, ok := app.Catalog.Lookup(e.ExerciseID); ok {
			name = ex.Name
		}
		pr := ""
		if e.PersonalRecord {
			pr = color.YellowString(" PR")
		}
		fmt.Printf("  %s%s\n", padRight(name, 24), pr)
		fmt.Printf("    %s\n", formatSets(e.Sets))
		if e.Notes != nil && *e.Notes != "" {
			fmt.Printf("    %s\n", faint.Sprint(truncate(*e.Notes, 60)))
		}
	}
}

func init() {
	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "workout date (YYYY-MM-DD [HH:MM])")
	workoutAddCmd.Flags().IntVarP(&workoutDuration, "duration", "d", 0, "duration in minutes")
	workoutAddCmd.Flags().StringVar(&workoutNotes, "notes", "", "workout notes")

	workoutListCmd.Flags().StringVarP(&workoutType, "type", "t", "", "filter by workout type")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max number of results")

	workoutLogCmd.Flags().StringArrayVarP(&logSets, "set", "s", nil, "set as REPSxWEIGHT (repeatable)")
	workoutLogCmd.Flags().IntVar(&logRest, "rest", 0, "rest between sets in seconds (default from profile)")
	workoutLogCmd.Flags().StringVar(&logNotes, "notes", "", "notes for this exercise")
	workoutLogCmd.Flags().BoolVar(&logPR, "pr", false, "mark as a personal record")

	workoutDoneCmd.Flags().IntVarP(&workoutDuration, "duration", "d", 0, "duration in minutes")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutLogCmd)
	workoutCmd.AddCommand(workoutDoneCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	workoutCmd.AddCommand(workoutWeekCmd)
	rootCmd.AddCommand(workoutCmd)
}
