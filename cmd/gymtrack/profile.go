// ABOUTME: CLI commands for the local user profile.
// ABOUTME: A saved profile signs the user in; clearing it signs them out.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/config"
	"github.com/harperreed/gymtrack/internal/models"
	"github.com/harperreed/gymtrack/internal/session"
	"github.com/spf13/cobra"
)

var (
	profileName         string
	profileEmail        string
	profileWeekStart    string
	profileUnits        string
	profileRest         int
	profileWeeklyTarget int
)

var profileCmd = &cobra.Command{
	Use:         "profile",
	Short:       "Manage the local user profile",
	Annotations: map[string]string{skipTracker: "true"},
	Long: `Manage the local user profile.

Gymtrack only reads or writes training data while a profile exists. The
profile also holds preferences:

  week start     sunday or monday (used by 'workout week' and stats)
  units          metric or imperial (display only)
  rest           default rest between sets in seconds

EXAMPLES:

  gymtrack profile init --name "Sam" --week-start sunday
  gymtrack profile show
  gymtrack profile clear`,
}

var profileInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or replace the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(profileName) == "" {
			return fmt.Errorf("--name is required")
		}

		prefs := session.DefaultPreferences()
		switch strings.ToLower(profileWeekStart) {
		case "", "monday":
			prefs.WeekStartsOn = 1
		case "sunday":
			prefs.WeekStartsOn = 0
		default:
			return fmt.Errorf("invalid week start %q: use sunday or monday", profileWeekStart)
		}
		switch profileUnits {
		case "", "metric", "imperial":
			if profileUnits != "" {
				prefs.Units = profileUnits
			}
		default:
			return fmt.Errorf("invalid units %q: use metric or imperial", profileUnits)
		}
		if profileRest > 0 {
			prefs.DefaultRestTime = profileRest
		}

		fileCfg, err := config.LoadFile()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg.Profile = &session.User{
			ID:             models.NewID(),
			Name:           profileName,
			Email:          profileEmail,
			Preferences:    prefs,
			WeeklyWorkouts: profileWeeklyTarget,
			CreatedAt:      time.Now(),
		}
		if err := fileCfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Signed in as %s", profileName)
		fmt.Printf("  Config: %s\n", config.GetConfigPath())
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile and preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, ok := cfg.Session().User()
		if !ok {
			color.Yellow("Not signed in")
			fmt.Println("\nRun 'gymtrack profile init --name <name>' to create a profile.")
			return nil
		}

		weekStart := "Monday"
		if user.Preferences.WeekStart() == time.Sunday {
			weekStart = "Sunday"
		}

		fmt.Printf("Name:        %s\n", user.Name)
		if user.Email != "" {
			fmt.Printf("Email:       %s\n", user.Email)
		}
		fmt.Printf("Week starts: %s\n", weekStart)
		fmt.Printf("Units:       %s\n", user.Preferences.Units)
		fmt.Printf("Rest:        %ds\n", user.Preferences.RestSeconds())
		if user.WeeklyWorkouts > 0 {
			fmt.Printf("Target:      %d workouts/week\n", user.WeeklyWorkouts)
		}
		fmt.Printf("Backend:     %s (%s)\n", cfg.GetBackend(), cfg.GetDataDir())
		return nil
	},
}

var profileClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Sign out by removing the profile",
	Long: `Remove the profile from the config file.

Training data is kept; it becomes available again after 'gymtrack profile init'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fileCfg, err := config.LoadFile()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg.Profile = nil
		if err := fileCfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Yellow("✗ Signed out")
		return nil
	},
}

func init() {
	profileInitCmd.Flags().StringVar(&profileName, "name", "", "display name (required)")
	profileInitCmd.Flags().StringVar(&profileEmail, "email", "", "email address")
	profileInitCmd.Flags().StringVar(&profileWeekStart, "week-start", "monday", "first day of the week: sunday or monday")
	profileInitCmd.Flags().StringVar(&profileUnits, "units", "metric", "metric or imperial")
	profileInitCmd.Flags().IntVar(&profileRest, "rest", 90, "default rest between sets in seconds")
	profileInitCmd.Flags().IntVar(&profileWeeklyTarget, "weekly-target", 0, "target workouts per week")

	profileCmd.AddCommand(profileInitCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileClearCmd)
	rootCmd.AddCommand(profileCmd)
}
