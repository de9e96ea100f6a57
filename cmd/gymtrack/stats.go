// ABOUTME: CLI command for the training dashboard.
// ABOUTME: Shows workout counts, weekly frequency, latest body metrics and goal progress.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"summary"},
	Short:   "Show the training dashboard",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sum := app.Summary()
		bold := color.New(color.Bold)

		bold.Println("Workouts")
		fmt.Printf("  Total:            %d\n", sum.TotalWorkouts)
		fmt.Printf("  This week:        %d", sum.ThisWeek)
		if user, ok := app.Session().User(); ok && user.WeeklyWorkouts > 0 {
			fmt.Printf(" / %d", user.WeeklyWorkouts)
		}
		fmt.Println()
		fmt.Printf("  Weekly frequency: %.2f per day\n", sum.WeeklyFrequency)
		if sum.CheckedInToday {
			color.Green("  ✓ Trained today")
		} else {
			fmt.Println(faint.Sprint("  Not checked in today"))
		}

		fmt.Println()
		bold.Println("Body")
		if sum.LatestWeight == nil && sum.LatestBodyFat == nil {
			fmt.Println(faint.Sprint("  No body metrics recorded"))
		}
		if sum.LatestWeight != nil {
			fmt.Printf("  Weight:   %s\n", formatNumber(*sum.LatestWeight))
		}
		if sum.LatestBodyFat != nil {
			fmt.Printf("  Body fat: %s%%\n", formatNumber(*sum.LatestBodyFat))
		}

		fmt.Println()
		bold.Println("Goals")
		fmt.Printf("  Active:    %d\n", sum.ActiveGoals)
		fmt.Printf("  Completed: %d\n", sum.CompletedGoals)
		fmt.Printf("  Progress:  %s %d%%\n", progressBar(float64(sum.GoalsProgress), 20), sum.GoalsProgress)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
