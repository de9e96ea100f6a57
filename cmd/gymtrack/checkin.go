// ABOUTME: CLI command for the one-tap daily check-in.
// ABOUTME: Reuses today's workout or creates an empty General one.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checkinCmd = &cobra.Command{
	Use:     "checkin",
	Aliases: []string{"ci"},
	Short:   "Check in for today",
	Long: `Record that you trained today.

If a workout already exists for today it is shown instead; running checkin
twice on the same day never creates a second workout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, existed := app.Workouts.TodayWorkout()

		w, err := app.Workouts.QuickCheckIn()
		if err != nil {
			return fmt.Errorf("failed to check in: %w", err)
		}

		if existed {
			color.Cyan("Already checked in today")
		} else {
			color.Green("✓ Checked in")
		}
		fmt.Printf("  %s %s workout\n", faint.Sprint(shortID(w.ID)), w.Type)
		fmt.Printf("  This week: %d workouts\n", len(app.Workouts.ThisWeekWorkouts()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkinCmd)
}
