// ABOUTME: CLI command for deleting one stored namespace.
// ABOUTME: Seeded namespaces come back with their starter data.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset <namespace>",
	Short: "Delete one collection of stored data",
	Long: `Delete one stored collection.

NAMESPACES:

  exercises      the catalog (reseeded with the default exercises)
  workouts       all workouts (reseeded with sample workouts)
  body-metrics   all body metrics (left empty)
  goals          all goals (reseeded with sample goals)

Use this to recover from corrupt data or to start a collection fresh.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: namespaceNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !storage.IsValidNamespace(args[0]) {
			return fmt.Errorf("unknown namespace: %s (use %s)", args[0], strings.Join(namespaceNames(), ", "))
		}
		ns := storage.Namespace(args[0])

		if !resetYes && !confirm(os.Stdin, fmt.Sprintf("This deletes all %s. Continue?", ns)) {
			fmt.Println("Canceled.")
			return nil
		}

		if err := app.Reset(ns); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		color.Yellow("✗ Reset %s", ns)
		return nil
	},
}

func namespaceNames() []string {
	names := make([]string, len(storage.AllNamespaces))
	for i, ns := range storage.AllNamespaces {
		names[i] = string(ns)
	}
	return names
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(resetCmd)
}
