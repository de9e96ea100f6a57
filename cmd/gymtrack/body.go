// ABOUTME: CLI commands for body metrics.
// ABOUTME: Supports add, latest, and list subcommands.
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	bodyDate   string
	bodyWeight float64
	bodyFat    float64
	bodyChest  float64
	bodyWaist  float64
	bodyHips   float64
	bodyBicep  float64
	bodyThigh  float64
	bodyLimit  int
)

var bodyCmd = &cobra.Command{
	Use:     "body",
	Aliases: []string{"b"},
	Short:   "Track body weight, body fat and measurements",
	Long: `Track body weight, body fat and circumference measurements.

Every field is optional; only the flags you pass are recorded.

EXAMPLES:

  gymtrack body add --weight 82.5
  gymtrack body add --body-fat 18 --waist 86 --date 2024-03-01
  gymtrack body latest`,
}

var bodyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record body metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		optional := func(name string, v float64) *float64 {
			if !flags.Changed(name) {
				return nil
			}
			return &v
		}

		m := models.NewBodyMetric().WithDate(app.Now())
		if bodyDate != "" {
			t, err := parseTime(bodyDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s", bodyDate)
			}
			m.WithDate(t)
		}
		m.Weight = optional("weight", bodyWeight)
		m.BodyFat = optional("body-fat", bodyFat)
		m.Measurements = models.Measurements{
			Chest: optional("chest", bodyChest),
			Waist: optional("waist", bodyWaist),
			Hips:  optional("hips", bodyHips),
			Bicep: optional("bicep", bodyBicep),
			Thigh: optional("thigh", bodyThigh),
		}

		added, err := app.Workouts.AddBodyMetric(*m)
		if err != nil {
			return fmt.Errorf("failed to add body metrics: %w", err)
		}

		color.Green("✓ Recorded body metrics")
		fmt.Printf("  %s %s\n", faint.Sprint(shortID(added.ID)), describeBodyMetric(added))
		return nil
	},
}

var bodyLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent body metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, ok := app.Workouts.LatestBodyMetrics()
		if !ok {
			fmt.Println("No body metrics recorded.")
			return nil
		}
		fmt.Printf("%s %s\n", faint.Sprint(formatDate(m.Date)), describeBodyMetric(m))
		return nil
	},
}

var bodyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List body metrics, newest first",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list := app.Workouts.BodyMetrics()
		if len(list) == 0 {
			fmt.Println("No body metrics recorded.")
			return nil
		}
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Date.After(list[j].Date)
		})
		if bodyLimit > 0 && len(list) > bodyLimit {
			list = list[:bodyLimit]
		}
		for _, m := range list {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(shortID(m.ID)),
				faint.Sprint(formatDate(m.Date)),
				describeBodyMetric(m))
		}
		return nil
	},
}

func describeBodyMetric(m models.BodyMetric) string {
	var parts []string
	add := func(label string, v *float64, suffix string) {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%s %s%s", label, formatNumber(*v), suffix))
		}
	}
	add("weight", m.Weight, "")
	add("body fat", m.BodyFat, "%")
	add("chest", m.Measurements.Chest, "")
	add("waist", m.Measurements.Waist, "")
	add("hips", m.Measurements.Hips, "")
	add("bicep", m.Measurements.Bicep, "")
	add("thigh", m.Measurements.Thigh, "")
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, ", ")
}

func init() {
	bodyAddCmd.Flags().StringVar(&bodyDate, "date", "", "measurement date (YYYY-MM-DD [HH:MM])")
	bodyAddCmd.Flags().Float64Var(&bodyWeight, "weight", 0, "body weight")
	bodyAddCmd.Flags().Float64Var(&bodyFat, "body-fat", 0, "body fat percentage")
	bodyAddCmd.Flags().Float64Var(&bodyChest, "chest", 0, "chest circumference")
	bodyAddCmd.Flags().Float64Var(&bodyWaist, "waist", 0, "waist circumference")
	bodyAddCmd.Flags().Float64Var(&bodyHips, "hips", 0, "hip circumference")
	bodyAddCmd.Flags().Float64Var(&bodyBicep, "bicep", 0, "bicep circumference")
	bodyAddCmd.Flags().Float64Var(&bodyThigh, "thigh", 0, "thigh circumference")

	bodyListCmd.Flags().IntVarP(&bodyLimit, "limit", "n", 20, "max number of results")

	bodyCmd.AddCommand(bodyAddCmd)
	bodyCmd.AddCommand(bodyLatestCmd)
	bodyCmd.AddCommand(bodyListCmd)
	rootCmd.AddCommand(bodyCmd)
}
