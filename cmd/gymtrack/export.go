// ABOUTME: CLI commands for exporting and importing gymtrack data.
// ABOUTME: Supports JSON, YAML, and XLSX export and JSON import.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	importYes    bool
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export all data",
	Long: `Export exercises, workouts, body metrics and goals.

FORMATS:

  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export (human-readable)
  xlsx   Excel workbook with one sheet per collection (requires --output)

EXAMPLES:

  gymtrack export json                   # Export all data as JSON
  gymtrack export json -o backup.json    # Save to file
  gymtrack export xlsx -o training.xlsx  # Spreadsheet for charts`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "xlsx"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]
		doc := app.Export()

		var data []byte
		var err error
		switch format {
		case "json":
			data, err = doc.ToJSON()
		case "yaml":
			data, err = doc.ToYAML()
		case "xlsx":
			if exportOutput == "" {
				return fmt.Errorf("xlsx export requires --output")
			}
			data, err = doc.ToXLSX()
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or xlsx)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
			fmt.Printf("  %d workouts, %d body metrics, %d goals, %d exercises\n",
				len(doc.Workouts), len(doc.BodyMetrics), len(doc.Goals), len(doc.Exercises))
		} else {
			fmt.Println(string(data))
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON export",
	Long: `Replace all data with the contents of a JSON export.

Every record is validated before anything is written. Existing exercises,
workouts, body metrics and goals are replaced, not merged.

EXAMPLES:

  gymtrack import backup.json
  gymtrack import backup.json --yes   # Skip confirmation`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		doc, err := storage.ParseExportJSON(data)
		if err != nil {
			return fmt.Errorf("invalid export file: %w", err)
		}

		if !importYes && !confirm(os.Stdin, "This replaces all existing data. Continue?") {
			fmt.Println("Canceled.")
			return nil
		}

		if err := app.Import(doc); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		fmt.Printf("  %d workouts, %d body metrics, %d goals, %d exercises\n",
			len(doc.Workouts), len(doc.BodyMetrics), len(doc.Goals), len(doc.Exercises))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "skip confirmation")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
